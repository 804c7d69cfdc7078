package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/shhac/coursecards/internal/catalog"
	"github.com/shhac/coursecards/internal/logging"
	"github.com/shhac/coursecards/internal/model"
)

// AppName names the log directory and file.
const AppName = "coursecards"

// App wires configuration, logging, the course catalog and the screen state.
type App struct {
	fyneApp    fyne.App
	config     *Config
	logger     *slog.Logger
	closeLog   func() error
	catalog    *catalog.Catalog
	catalogErr error
	listState  *model.ListState
}

// New creates an App. A catalog file that cannot be loaded is not fatal: the
// built-in courses are used and the error is kept for the UI to report.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.Open(AppName, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing course cards",
		slog.Bool("debug", cfg.Debug),
		slog.String("catalog_path", cfg.CatalogPath),
		slog.String("log_path", logger.Path()),
	)

	a := newApp(fyneApp, cfg, logger.Logger)
	a.closeLog = logger.Close
	return a, nil
}

func newApp(fyneApp fyne.App, cfg *Config, logger *slog.Logger) *App {
	cat, catErr := loadCatalog(cfg.CatalogPath, logger)

	logger.Info("course catalog ready", slog.Int("courses", cat.Len()))

	return &App{
		fyneApp:    fyneApp,
		config:     cfg,
		logger:     logger,
		catalog:    cat,
		catalogErr: catErr,
		listState:  model.NewListState(cat.Len()),
	}
}

func loadCatalog(path string, logger *slog.Logger) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Sample(), nil
	}

	cat, err := catalog.LoadFile(path, logger)
	if err != nil {
		logger.Error("failed to load course catalog, using built-in courses",
			slog.String("path", path),
			slog.Any("error", err))
		return catalog.Sample(), err
	}
	return cat, nil
}

// Run shows window and runs the Fyne event loop until it closes.
func (a *App) Run(window fyne.Window) {
	a.logger.Info("starting application")
	window.ShowAndRun()
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Catalog returns the courses to display.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// CatalogError returns the error from loading the configured catalog, if any.
func (a *App) CatalogError() error {
	return a.catalogErr
}

// ListState returns the per-card expanded state of the screen.
func (a *App) ListState() *model.ListState {
	return a.listState
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
