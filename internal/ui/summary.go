package ui

import "fmt"

// summary is the status line under the list, e.g. "6 courses, 1 expanded".
func summary(total, expanded int) string {
	noun := "courses"
	if total == 1 {
		noun = "course"
	}
	if total == 0 {
		return "No courses"
	}
	if expanded == 0 {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d %s, %d expanded", total, noun, expanded)
}
