package domain

import (
	"fmt"
	"strings"
)

// Workout is one entry of the catalog. Duration and Calories are nominal
// figures for display; the session timer never reads them.
type Workout struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Duration  int      `json:"duration" yaml:"duration"` // minutes
	Calories  int      `json:"calories" yaml:"calories"`
	Exercises []string `json:"exercises" yaml:"exercises"`
	Icon      string   `json:"icon,omitempty" yaml:"icon"`
	Gradient  string   `json:"gradient,omitempty" yaml:"gradient"`
}

// Validate reports whether w can be played by a session.
func (w Workout) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return &ValidationError{WorkoutID: w.ID, Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(w.Name) == "" {
		return &ValidationError{WorkoutID: w.ID, Field: "name", Reason: "is required"}
	}
	if len(w.Exercises) == 0 {
		return &ValidationError{WorkoutID: w.ID, Field: "exercises", Reason: "must not be empty"}
	}
	for i, ex := range w.Exercises {
		if strings.TrimSpace(ex) == "" {
			return &ValidationError{WorkoutID: w.ID, Field: fmt.Sprintf("exercises[%d]", i), Reason: "is blank"}
		}
	}
	if w.Duration < 0 {
		return &ValidationError{WorkoutID: w.ID, Field: "duration", Reason: "must not be negative"}
	}
	if w.Calories < 0 {
		return &ValidationError{WorkoutID: w.ID, Field: "calories", Reason: "must not be negative"}
	}
	return nil
}

// LastExercise returns the index of the final exercise.
func (w Workout) LastExercise() int {
	return len(w.Exercises) - 1
}

// Plan renders the workout as plain text suitable for the clipboard.
func (w Workout) Plan() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d min, %d kcal)\n", w.Name, w.Duration, w.Calories)
	for i, ex := range w.Exercises {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ex)
	}
	return b.String()
}
