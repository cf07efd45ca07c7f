package student

import (
	"errors"
	"fmt"
)

// Validation failures returned by New. Match them with errors.Is.
var (
	ErrInvalidName = errors.New("invalid name")
	ErrInvalidAge  = errors.New("invalid age")
	ErrInvalidGPA  = errors.New("invalid gpa")
)

// ValidationError describes the first attribute that failed validation.
type ValidationError struct {
	Field string // attribute name, e.g. "age"
	Value any    // rejected value
	Kind  error  // one of the Err* sentinels above
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrInvalidName:
		return fmt.Sprintf("student: %s: %s cannot be empty", e.Kind, e.Field)
	case ErrInvalidAge:
		return fmt.Sprintf("student: %s %v: must be between %d and %d", e.Kind, e.Value, MinAge, MaxAge)
	case ErrInvalidGPA:
		return fmt.Sprintf("student: %s %v: must be between %.1f and %.1f", e.Kind, e.Value, MinGPA, MaxGPA)
	default:
		return fmt.Sprintf("student: invalid %s %v", e.Field, e.Value)
	}
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidAge) works.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
