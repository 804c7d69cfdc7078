package errors

import "errors"

// Sentinel errors for catalog loading.
var (
	ErrCatalogNotFound = errors.New("catalog file not found")
	ErrInvalidCourse   = errors.New("invalid course")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidCourse for any validation failure.
func (e ValidationError) Unwrap() error {
	return ErrInvalidCourse
}
