// Package list renders a catalog as a vertically scrolling column of course cards.
package list

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/coursecards/internal/catalog"
	"github.com/shhac/coursecards/internal/model"
	"github.com/shhac/coursecards/internal/ui/card"
)

// CourseList shows one card per catalog course, in catalog order.
type CourseList struct {
	widget.BaseWidget

	catalog *catalog.Catalog
	state   *model.ListState
	logger  *slog.Logger

	cards  []*card.CourseCard
	column *fyne.Container
	scroll *container.Scroll
}

// NewCourseList creates the list view. state must track cat.Len() cards;
// pass nil to start every card collapsed.
func NewCourseList(cat *catalog.Catalog, state *model.ListState, logger *slog.Logger) *CourseList {
	if state == nil {
		state = model.NewListState(cat.Len())
	}

	l := &CourseList{
		catalog: cat,
		state:   state,
		logger:  logger,
		column:  container.NewVBox(),
	}
	l.scroll = container.NewVScroll(container.NewPadded(l.column))

	state.AddListener(func(i int, s model.CardState) {
		if i < len(l.cards) {
			l.cards[i].SetState(s)
		}
	})

	l.ExtendBaseWidget(l)
	l.Rebuild()
	return l
}

// Rebuild recreates the card widgets from the catalog and the shared state.
// Expanded cards stay expanded.
func (l *CourseList) Rebuild() {
	l.cards = make([]*card.CourseCard, l.catalog.Len())
	objects := make([]fyne.CanvasObject, l.catalog.Len())

	for i := range l.cards {
		c := card.NewCourseCard(l.catalog.At(i), l.state.Card(i))
		c.OnEvent = func(ev model.Event) {
			s := l.state.Dispatch(i, ev)
			l.logger.Debug("course card toggled",
				slog.String("code", l.catalog.At(i).Code),
				slog.String("event", ev.String()),
				slog.Bool("expanded", s.Expanded))
		}
		l.cards[i] = c
		objects[i] = c
	}

	l.column.Objects = objects
	l.column.Refresh()
}

// Cards returns the rendered cards in display order.
func (l *CourseList) Cards() []*card.CourseCard {
	out := make([]*card.CourseCard, len(l.cards))
	copy(out, l.cards)
	return out
}

// State returns the per-card state backing this list.
func (l *CourseList) State() *model.ListState {
	return l.state
}

// CollapseAll returns every card to collapsed.
func (l *CourseList) CollapseAll() {
	l.state.CollapseAll()
}

// ScrollToTop resets the scroll offset.
func (l *CourseList) ScrollToTop() {
	l.scroll.ScrollToTop()
}

// CreateRenderer implements fyne.Widget.
func (l *CourseList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.scroll)
}
