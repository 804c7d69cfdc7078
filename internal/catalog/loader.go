package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shhac/coursecards/internal/domain"
	apperrors "github.com/shhac/coursecards/internal/errors"
	"gopkg.in/yaml.v3"
)

// courseRecord is the on-disk YAML shape of one course.
type courseRecord struct {
	Title         string `yaml:"title"`
	Code          string `yaml:"code"`
	CreditHours   int    `yaml:"credit_hours"`
	Description   string `yaml:"description"`
	Prerequisites string `yaml:"prerequisites"`
}

// LoadFile reads a YAML list of courses from path.
//
//   - title: Math
//     code: Mh6011
//     credit_hours: 4
//     description: Learn basics of mathematics
//     prerequisites: None
//
// A missing prerequisites field means domain.NoPrerequisites. Every course
// is validated; the first invalid one fails the whole load.
func LoadFile(path string, logger *slog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	logger.Debug("loaded course catalog",
		slog.String("path", path),
		slog.Int("courses", cat.Len()))

	return cat, nil
}

// Parse decodes a YAML list of courses.
func Parse(data []byte) (*Catalog, error) {
	var records []courseRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(records))
	for i, r := range records {
		c := r.toCourse()
		if err := Validate(c); err != nil {
			return nil, fmt.Errorf("course %d: %w", i+1, err)
		}
		courses = append(courses, c)
	}

	return New(courses), nil
}

func (r courseRecord) toCourse() domain.Course {
	prereq := r.Prerequisites
	if strings.TrimSpace(prereq) == "" {
		prereq = domain.NoPrerequisites
	}
	return domain.Course{
		Title:         r.Title,
		Code:          r.Code,
		CreditHours:   r.CreditHours,
		Description:   r.Description,
		Prerequisites: prereq,
	}
}

// Validate checks that a course can be rendered as a card.
func Validate(c domain.Course) error {
	if strings.TrimSpace(c.Title) == "" {
		return apperrors.ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(c.Code) == "" {
		return apperrors.ValidationError{Field: "code", Message: "is required"}
	}
	if c.CreditHours <= 0 {
		return apperrors.ValidationError{
			Field:   "credit_hours",
			Message: fmt.Sprintf("must be positive, got %d", c.CreditHours),
		}
	}
	return nil
}
