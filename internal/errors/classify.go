package errors

import (
	"errors"
	"io/fs"
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyCatalogError converts a catalog loading error into a UIError.
func ClassifyCatalogError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	var valErr ValidationError
	switch {
	case errors.Is(err, ErrCatalogNotFound), errors.Is(err, fs.ErrNotExist):
		return &UIError{
			Err:     err,
			Title:   "Catalog Not Found",
			Message: "The configured course catalog file does not exist. Showing the built-in courses instead.",
			Recovery: []string{
				"Check the COURSECARDS_CATALOG path",
				"Unset COURSECARDS_CATALOG to use the built-in courses",
			},
			Details: err.Error(),
		}
	case errors.As(err, &valErr):
		return &UIError{
			Err:     err,
			Title:   "Invalid Course",
			Message: "A course in the catalog file is incomplete. Showing the built-in courses instead.",
			Recovery: []string{
				"Give every course a title and a code",
				"Use a positive number for credit_hours",
			},
			Details: err.Error(),
		}
	default:
		return &UIError{
			Err:      err,
			Title:    "Catalog Unreadable",
			Message:  "The course catalog file could not be read. Showing the built-in courses instead.",
			Recovery: []string{"Check that the file is a YAML list of courses"},
			Details:  err.Error(),
		}
	}
}
