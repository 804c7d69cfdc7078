package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shhac/coursecards/internal/domain"
	apperrors "github.com/shhac/coursecards/internal/errors"
	"github.com/shhac/coursecards/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
- title: Math
  code: Mh6011
  credit_hours: 4
  description: Learn basics of mathematics
  prerequisites: None
- title: physics
  code: PS1001
  credit_hours: 5
  description: Explore the world of physics.
  prerequisites: Mh6010
- title: Logic
  code: log1011
  credit_hours: 5
  description: Be reasonable
`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(validYAML))
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	assert.Equal(t, domain.Course{
		Title:         "Math",
		Code:          "Mh6011",
		CreditHours:   4,
		Description:   "Learn basics of mathematics",
		Prerequisites: "None",
	}, cat.At(0))
	assert.Equal(t, "Mh6010", cat.At(1).Prerequisites)
	assert.Equal(t, domain.NoPrerequisites, cat.At(2).Prerequisites, "missing prerequisites defaults to None")
}

func TestParse_Empty(t *testing.T) {
	cat, err := Parse([]byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing title", "- code: A1\n  credit_hours: 3\n", "title"},
		{"missing code", "- title: Art\n  credit_hours: 3\n", "code"},
		{"zero credits", "- title: Art\n  code: A1\n", "credit_hours"},
		{"negative credits", "- title: Art\n  code: A1\n  credit_hours: -2\n", "credit_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCourse)

			var valErr apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("title: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCourse)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0644))

	cat, err := LoadFile(path, logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), logging.NewNopLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotFound)
}
