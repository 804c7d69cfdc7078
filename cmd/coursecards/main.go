package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	cardsApp "github.com/shhac/coursecards/internal/app"
	"github.com/shhac/coursecards/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger until the file logger is up
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting course cards")

	cfg := cardsApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.coursecards.app")

	cardsApp, err := cardsApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cardsApp.Close()

	mainWindow := ui.NewMainWindow(cardsApp.FyneApp(), cardsApp)

	cardsApp.Run(mainWindow.Window())

	cardsApp.Logger().Info("application shutdown complete")
	return nil
}
