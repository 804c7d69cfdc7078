package model

// CardState is the display state of one course card. The zero value is collapsed.
type CardState struct {
	Expanded bool
}

// Event is a user input delivered to a card.
type Event int

const (
	// EventTap is a tap or click anywhere on the card body.
	EventTap Event = iota + 1
	// EventIconToggle is activation of the trailing expand/collapse icon.
	EventIconToggle
	// EventCollapse forces the card closed.
	EventCollapse
)

func (e Event) String() string {
	switch e {
	case EventTap:
		return "tap"
	case EventIconToggle:
		return "icon_toggle"
	case EventCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Reduce returns the state that follows s after ev.
// Unknown events leave the state unchanged.
func Reduce(s CardState, ev Event) CardState {
	switch ev {
	case EventTap, EventIconToggle:
		return CardState{Expanded: !s.Expanded}
	case EventCollapse:
		return CardState{}
	default:
		return s
	}
}
