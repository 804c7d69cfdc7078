package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestIconToggle_TapInvokesCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	taps := 0
	toggle := NewIconToggle(theme.MenuDropDownIcon(), "Show more", func() { taps++ })

	test.Tap(toggle)
	test.Tap(toggle)
	assert.Equal(t, 2, taps)
}

func TestIconToggle_NilCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggle := NewIconToggle(theme.MenuDropDownIcon(), "Show more", nil)
	assert.NotPanics(t, func() { test.Tap(toggle) })
}

func TestIconToggle_SetState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggle := NewIconToggle(theme.MenuDropDownIcon(), "Show more", nil)
	assert.Equal(t, "Show more", toggle.Label())
	assert.Equal(t, theme.MenuDropDownIcon().Name(), toggle.Resource().Name())

	toggle.SetState(theme.MenuDropUpIcon(), "Show less")
	assert.Equal(t, "Show less", toggle.Label())
	assert.Equal(t, theme.MenuDropUpIcon().Name(), toggle.Resource().Name())
}

func TestSmoothResize_FollowsContentWhenIdle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	content := container.NewVBox(widget.NewLabel("one"))
	s := NewSmoothResize(content)

	assert.False(t, s.Animating())
	assert.Equal(t, content.MinSize(), s.MinSize())
}

func TestSmoothResize_TransitionWithoutSizeChange(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	label := widget.NewLabel("one")
	s := NewSmoothResize(container.NewVBox(label))

	s.Transition(func() { label.SetText("two") })
	assert.False(t, s.Animating(), "same height needs no animation")
}

func TestSmoothResize_TransitionRunsChange(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	extra := widget.NewLabel("extra")
	extra.Hide()
	content := container.NewVBox(widget.NewLabel("one"), extra)
	s := NewSmoothResize(content)

	s.Transition(func() { extra.Show() })
	assert.True(t, extra.Visible())
	assert.LessOrEqual(t, s.MinSize().Height, content.MinSize().Height)
}

func centerOf(obj fyne.CanvasObject) fyne.Position {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(obj)
	return pos.AddXY(obj.Size().Width/2, obj.Size().Height/2)
}

func TestIconToggle_ClickWhileHovered(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	taps := 0
	toggle := NewIconToggle(theme.MenuDropDownIcon(), "Show more", func() { taps++ })
	w := test.NewWindow(container.NewCenter(toggle))
	defer w.Close()
	w.Resize(fyne.NewSize(200, 200))

	at := centerOf(toggle)
	test.MoveMouse(w.Canvas(), at)
	assert.Nil(t, w.Canvas().Overlays().Top(), "hovering must not open an overlay")

	test.TapCanvas(w.Canvas(), at)
	assert.Equal(t, 1, taps)
}

func TestSmoothResize_PassesScrollToParent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	column := container.NewVBox()
	for i := 0; i < 20; i++ {
		column.Add(NewSmoothResize(container.NewVBox(widget.NewLabel("row"))))
	}
	scroll := container.NewVScroll(column)
	w := test.NewWindow(scroll)
	defer w.Close()
	w.Resize(fyne.NewSize(200, 150))

	test.Scroll(w.Canvas(), centerOf(column.Objects[0]), 0, -40)
	assert.Greater(t, scroll.Offset.Y, float32(0))
}
