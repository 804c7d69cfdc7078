package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var shortcutHelp = []struct{ action, key string }{
	{"Collapse All", "Ctrl ⇧ C"},
	{"Reload List", "Ctrl R"},
	{"Scroll to Top", "Home"},
}

// setupKeyboardShortcuts configures the window's keyboard shortcuts.
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Ctrl+Shift+C: collapse every card
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: collapse all")
		w.CollapseAll()
	})

	// Ctrl+R: rebuild the list from the current state
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: reload")
		w.Reload()
	})

	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyHome {
			w.courseList.ScrollToTop()
		}
	})
}
