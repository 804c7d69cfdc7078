// Package catalog provides the ordered, read-only list of courses the screen renders.
package catalog

import "github.com/shhac/coursecards/internal/domain"

// Catalog is an immutable ordered sequence of courses.
type Catalog struct {
	courses []domain.Course
}

// New creates a catalog holding a copy of courses.
// A nil or empty slice yields an empty catalog.
func New(courses []domain.Course) *Catalog {
	c := make([]domain.Course, len(courses))
	copy(c, courses)
	return &Catalog{courses: c}
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// At returns the course at index i. It panics if i is out of range.
func (c *Catalog) At(i int) domain.Course {
	return c.courses[i]
}

// All returns a copy of the courses in order.
func (c *Catalog) All() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Sample returns the built-in catalog of six courses.
func Sample() *Catalog {
	return New(sampleCourses)
}

var sampleCourses = []domain.Course{
	{Title: "Civics", Code: "Cv1011", CreditHours: 3, Description: "Learn Civics and ethical education.", Prerequisites: "None"},
	{Title: "physics", Code: "PS1001", CreditHours: 5, Description: "Explore the world of physics.", Prerequisites: "Mh6010"},
	{Title: "Math", Code: "Mh6011", CreditHours: 4, Description: "Learn basics of mathematics", Prerequisites: "None"},
	{Title: "Psychology", Code: "Psy1011", CreditHours: 4, Description: "Learn psychology in depth", Prerequisites: "ss101"},
	{Title: "Logic", Code: "log1011", CreditHours: 5, Description: "Be reasonable by learning reasoning and logic ", Prerequisites: "None"},
	{Title: "English I", Code: "Eng1001", CreditHours: 3, Description: " Upgrade you english grammar and learn to speak it. ", Prerequisites: "SS301"},
}
