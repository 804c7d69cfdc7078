package card

import "github.com/shhac/coursecards/internal/domain"

// IconKind selects the trailing indicator glyph.
type IconKind int

const (
	IconExpand IconKind = iota
	IconCollapse
)

// Accessible labels of the trailing icon.
const (
	LabelShowMore = "Show more"
	LabelShowLess = "Show less"
)

// View is everything a card displays for one (course, expanded) pair.
type View struct {
	Title   string
	Code    string
	Credits string

	// Description and Prerequisites are empty unless ShowDetails is set.
	ShowDetails   bool
	Description   string
	Prerequisites string

	Icon      IconKind
	IconLabel string
}

// Render computes the card view. It has no side effects.
func Render(c domain.Course, expanded bool) View {
	v := View{
		Title:     c.Title,
		Code:      c.CodeLabel(),
		Credits:   c.CreditsLabel(),
		Icon:      IconExpand,
		IconLabel: LabelShowMore,
	}
	if expanded {
		v.ShowDetails = true
		v.Description = c.DescriptionLabel()
		v.Prerequisites = c.PrerequisitesLabel()
		v.Icon = IconCollapse
		v.IconLabel = LabelShowLess
	}
	return v
}
