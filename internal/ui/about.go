package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/coursecards/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about the application and its shortcuts.
func ShowAboutDialog(parent fyne.Window) {
	shortcuts := container.NewGridWithColumns(2)
	for _, s := range shortcutHelp {
		shortcuts.Add(widget.NewLabel(s.action))
		shortcuts.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	content := container.NewVBox(
		widget.NewLabelWithStyle("Course Cards", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Tap a course to show its description and prerequisites."),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		shortcuts,
	)
	dialog.ShowCustom("About Course Cards", "Close", content, parent)
}
