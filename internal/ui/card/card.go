// Package card renders a single course as an expandable card.
package card

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/coursecards/internal/domain"
	"github.com/shhac/coursecards/internal/model"
	"github.com/shhac/coursecards/internal/ui/components"
)

// Compile-time interface check.
var _ fyne.Tappable = (*CourseCard)(nil)

const cardCornerRadius = 8

// CourseCard shows one course: title, code and credits, plus description and
// prerequisites when expanded. Taps on the body or the trailing icon are
// turned into model events and sent to OnEvent; the resulting state comes back
// through SetState.
type CourseCard struct {
	widget.BaseWidget

	course domain.Course
	state  model.CardState
	view   View

	// OnEvent receives user input. When nil the card reduces its own state.
	OnEvent func(model.Event)

	background    *canvas.Rectangle
	title         *widget.Label
	code          *widget.Label
	credits       *widget.Label
	description   *widget.Label
	prerequisites *widget.Label
	details       *fyne.Container
	resize        *components.SmoothResize
	toggle        *components.IconToggle
}

// NewCourseCard creates a card for course in the given state.
func NewCourseCard(course domain.Course, state model.CardState) *CourseCard {
	c := &CourseCard{course: course}

	c.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	c.background.CornerRadius = cardCornerRadius
	c.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	c.background.StrokeWidth = 1

	c.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	c.title.SizeName = theme.SizeNameSubHeadingText
	c.code = widget.NewLabel("")
	c.credits = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{})
	c.description = widget.NewLabel("")
	c.description.Wrapping = fyne.TextWrapWord
	c.prerequisites = widget.NewLabel("")
	c.prerequisites.Wrapping = fyne.TextWrapWord

	c.details = container.NewVBox(c.description, c.prerequisites)
	c.toggle = components.NewIconToggle(theme.MenuDropDownIcon(), LabelShowMore, func() {
		c.emit(model.EventIconToggle)
	})

	body := container.NewVBox(
		c.title,
		container.NewBorder(nil, nil, c.code, c.credits),
		c.details,
		container.NewHBox(layout.NewSpacer(), c.toggle),
	)
	c.resize = components.NewSmoothResize(body)

	c.ExtendBaseWidget(c)
	c.apply(state)
	return c
}

// Course returns the course shown by this card.
func (c *CourseCard) Course() domain.Course {
	return c.course
}

// State returns the current card state.
func (c *CourseCard) State() model.CardState {
	return c.state
}

// View returns what the card currently displays.
func (c *CourseCard) View() View {
	return c.view
}

// Toggle returns the trailing icon control.
func (c *CourseCard) Toggle() *components.IconToggle {
	return c.toggle
}

// Tapped implements fyne.Tappable for taps anywhere on the card body.
func (c *CourseCard) Tapped(_ *fyne.PointEvent) {
	c.emit(model.EventTap)
}

// SetState re-renders the card for s, easing the height change.
func (c *CourseCard) SetState(s model.CardState) {
	if s == c.state {
		return
	}
	c.resize.Transition(func() {
		c.apply(s)
	})
}

func (c *CourseCard) emit(ev model.Event) {
	if c.OnEvent != nil {
		c.OnEvent(ev)
		return
	}
	c.SetState(model.Reduce(c.state, ev))
}

// apply pushes Render's output into the child widgets.
func (c *CourseCard) apply(s model.CardState) {
	c.state = s
	c.view = Render(c.course, s.Expanded)

	c.title.SetText(c.view.Title)
	c.code.SetText(c.view.Code)
	c.credits.SetText(c.view.Credits)
	c.description.SetText(c.view.Description)
	c.prerequisites.SetText(c.view.Prerequisites)
	if c.view.ShowDetails {
		c.details.Show()
	} else {
		c.details.Hide()
	}
	c.toggle.SetState(iconResource(c.view.Icon), c.view.IconLabel)
}

func iconResource(k IconKind) fyne.Resource {
	if k == IconCollapse {
		return theme.MenuDropUpIcon()
	}
	return theme.MenuDropDownIcon()
}

// CreateRenderer implements fyne.Widget.
func (c *CourseCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(c.background, container.NewPadded(c.resize))
	return &cardRenderer{card: c, content: content}
}

type cardRenderer struct {
	card    *CourseCard
	content *fyne.Container
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.content.MinSize()
}

func (r *cardRenderer) Refresh() {
	r.card.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.card.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.content.Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *cardRenderer) Destroy() {}
