package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/coursecards/internal/catalog"
	"github.com/shhac/coursecards/internal/model"
	uierrors "github.com/shhac/coursecards/internal/ui/errors"
	"github.com/shhac/coursecards/internal/ui/list"
)

// AppController defines the app-level data the window needs.
type AppController interface {
	Logger() *slog.Logger
	Catalog() *catalog.Catalog
	ListState() *model.ListState
	CatalogError() error
}

// MainWindow is the single course list screen.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger
	app    AppController

	courseList *list.CourseList
	status     *widget.Label
}

// NewMainWindow creates the window and lays out the course list.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Courses")

	w := &MainWindow{
		window: window,
		logger: app.Logger(),
		app:    app,
		status: widget.NewLabel(""),
	}
	w.status.Importance = widget.LowImportance

	w.courseList = list.NewCourseList(app.Catalog(), app.ListState(), w.logger)
	app.ListState().AddListener(func(int, model.CardState) {
		w.updateStatus()
	})

	w.SetContent()
	w.setupMainMenu()
	w.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(420, 760))

	if err := app.CatalogError(); err != nil {
		uierrors.ShowCatalogError(err, window)
	}

	return w
}

// SetContent lays out the window: course list filling the window with a
// one-line summary beneath it.
func (w *MainWindow) SetContent() {
	w.updateStatus()
	w.window.SetContent(container.NewBorder(nil, w.status, nil, nil, w.courseList))
}

// Reload rebuilds the card widgets, keeping every card's expanded state.
func (w *MainWindow) Reload() {
	w.logger.Debug("rebuilding course list")
	w.courseList.Rebuild()
	w.updateStatus()
}

// CollapseAll closes every card.
func (w *MainWindow) CollapseAll() {
	w.courseList.CollapseAll()
	w.courseList.ScrollToTop()
}

// CourseList returns the list view.
func (w *MainWindow) CourseList() *list.CourseList {
	return w.courseList
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

func (w *MainWindow) updateStatus() {
	w.status.SetText(summary(w.app.Catalog().Len(), w.app.ListState().ExpandedCount()))
}

func (w *MainWindow) setupMainMenu() {
	view := fyne.NewMenu("View",
		fyne.NewMenuItem("Collapse All", w.CollapseAll),
		fyne.NewMenuItem("Reload", w.Reload),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(view, help))
}
