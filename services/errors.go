package services

import (
	"fmt"
	"strings"
)

// ValidationError reports bad input before any storage call is made.
// Fields carries every offending field name so callers see all failures
// at once; Received, when set, lists the field names actually supplied.
type ValidationError struct {
	Message  string
	Fields   []string
	Received []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a single-key lookup that matched nothing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}
