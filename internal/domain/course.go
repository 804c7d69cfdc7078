package domain

import "strconv"

// NoPrerequisites is the literal prerequisites value meaning the course has none.
const NoPrerequisites = "None"

// Course describes one academic course shown as a card.
type Course struct {
	Title         string
	Code          string
	CreditHours   int
	Description   string
	Prerequisites string // free text, NoPrerequisites when there is none
}

// CodeLabel returns the "Code: ..." line shown on every card.
func (c Course) CodeLabel() string {
	return "Code: " + c.Code
}

// CreditsLabel returns the "Credits: ..." line shown on every card.
func (c Course) CreditsLabel() string {
	return "Credits: " + strconv.Itoa(c.CreditHours)
}

// DescriptionLabel returns the description line of an expanded card.
func (c Course) DescriptionLabel() string {
	return "Description: " + c.Description
}

// PrerequisitesLabel returns the prerequisites line of an expanded card.
func (c Course) PrerequisitesLabel() string {
	return "Prerequisites: " + c.Prerequisites
}
