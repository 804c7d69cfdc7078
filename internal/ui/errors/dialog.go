package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/coursecards/internal/errors"
)

// ShowCatalogError explains a catalog loading failure, with recovery
// suggestions and the technical details collapsed.
func ShowCatalogError(err error, window fyne.Window) {
	uiErr := apperrors.ClassifyCatalogError(err)
	if uiErr == nil {
		return
	}

	dialog.ShowCustom(uiErr.Title, "Close", Content(uiErr), window)
}

// Content builds the dialog body for uiErr.
func Content(uiErr *apperrors.UIError) *fyne.Container {
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		))
	}

	return content
}
