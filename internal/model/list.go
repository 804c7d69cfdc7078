package model

// ListState holds one CardState per card, indexed by position in the list.
// It belongs to the screen rather than to the card widgets, so a rebuilt
// widget tree picks up the same expanded flags.
//
// All access happens on the UI goroutine.
type ListState struct {
	cards     []CardState
	listeners []func(index int, state CardState)
}

// NewListState creates collapsed state for n cards.
func NewListState(n int) *ListState {
	if n < 0 {
		n = 0
	}
	return &ListState{cards: make([]CardState, n)}
}

// Len returns the number of cards tracked.
func (l *ListState) Len() int {
	return len(l.cards)
}

// Card returns the state of card i; out-of-range indexes report collapsed.
func (l *ListState) Card(i int) CardState {
	if i < 0 || i >= len(l.cards) {
		return CardState{}
	}
	return l.cards[i]
}

// AddListener registers fn to run after any card's state changes.
// Listeners run in registration order.
func (l *ListState) AddListener(fn func(index int, state CardState)) {
	l.listeners = append(l.listeners, fn)
}

// Dispatch applies ev to card i and returns its new state.
// Out-of-range indexes are ignored. Listeners only fire on real changes.
func (l *ListState) Dispatch(i int, ev Event) CardState {
	if i < 0 || i >= len(l.cards) {
		return CardState{}
	}

	prev := l.cards[i]
	next := Reduce(prev, ev)
	l.cards[i] = next

	if next != prev {
		for _, fn := range l.listeners {
			fn(i, next)
		}
	}
	return next
}

// CollapseAll returns every card to its initial state.
func (l *ListState) CollapseAll() {
	for i := range l.cards {
		l.Dispatch(i, EventCollapse)
	}
}

// ExpandedCount returns how many cards are currently expanded.
func (l *ListState) ExpandedCount() int {
	n := 0
	for _, c := range l.cards {
		if c.Expanded {
			n++
		}
	}
	return n
}
