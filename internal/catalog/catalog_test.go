package catalog

import (
	"testing"

	"github.com/shhac/coursecards/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_OrderAndContent(t *testing.T) {
	cat := Sample()
	require.Equal(t, 6, cat.Len())

	titles := make([]string, 0, cat.Len())
	for _, c := range cat.All() {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Civics", "physics", "Math", "Psychology", "Logic", "English I"}, titles)

	math := cat.At(2)
	assert.Equal(t, "Mh6011", math.Code)
	assert.Equal(t, 4, math.CreditHours)
	assert.Equal(t, "Learn basics of mathematics", math.Description)
	assert.Equal(t, "None", math.Prerequisites)
}

func TestSample_ValidCourses(t *testing.T) {
	for _, c := range Sample().All() {
		assert.NoError(t, Validate(c), c.Title)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	courses := []domain.Course{{Title: "Math", Code: "Mh6011", CreditHours: 4}}
	cat := New(courses)

	courses[0].Title = "Changed"
	assert.Equal(t, "Math", cat.At(0).Title)

	all := cat.All()
	all[0].Title = "Changed again"
	assert.Equal(t, "Math", cat.At(0).Title)
}

func TestNew_Empty(t *testing.T) {
	cat := New(nil)
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.All())
}

func TestSample_IndependentInstances(t *testing.T) {
	a := Sample()
	b := Sample()
	all := a.All()
	all[0].Title = "Mutated"
	assert.Equal(t, "Civics", b.At(0).Title)
}
