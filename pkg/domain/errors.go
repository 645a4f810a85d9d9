package domain

import (
	"errors"
	"fmt"
)

// ValidationError describes a workout or catalog that cannot be played.
type ValidationError struct {
	WorkoutID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.WorkoutID == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("workout %q: %s %s", e.WorkoutID, e.Field, e.Reason)
}

// IsValidation returns true if err (or any wrapped error) is a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
