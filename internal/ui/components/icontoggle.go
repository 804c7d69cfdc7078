package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Compile-time interface check.
var _ fyne.Tappable = (*IconToggle)(nil)

// IconToggle is an icon-only control whose glyph and label are set by its owner.
// The label is the control's accessible text; it is not drawn.
type IconToggle struct {
	widget.BaseWidget

	icon  *widget.Icon
	label string

	OnTapped func()
}

// NewIconToggle creates a toggle showing res, labelled label.
func NewIconToggle(res fyne.Resource, label string, tapped func()) *IconToggle {
	t := &IconToggle{
		icon:     widget.NewIcon(res),
		label:    label,
		OnTapped: tapped,
	}
	t.ExtendBaseWidget(t)
	return t
}

// SetState swaps the glyph and label.
func (t *IconToggle) SetState(res fyne.Resource, label string) {
	t.label = label
	t.icon.SetResource(res)
}

// Label returns the accessible label.
func (t *IconToggle) Label() string {
	return t.label
}

// Resource returns the glyph currently shown.
func (t *IconToggle) Resource() fyne.Resource {
	return t.icon.Resource
}

// Tapped implements fyne.Tappable.
func (t *IconToggle) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (t *IconToggle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(t.icon))
}
