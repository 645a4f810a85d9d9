package domain

import (
	"fmt"

	"go.uber.org/multierr"
)

// Catalog is the validated, read-only list of workouts offered to the user.
type Catalog struct {
	workouts []Workout
	byID     map[string]int
}

// NewCatalog validates every workout and rejects duplicates. All problems
// are reported together. A catalog that passes here can never put a session
// into an undefined state.
func NewCatalog(workouts []Workout) (*Catalog, error) {
	if len(workouts) == 0 {
		return nil, &ValidationError{Field: "catalog", Reason: "has no workouts"}
	}
	c := &Catalog{
		workouts: make([]Workout, 0, len(workouts)),
		byID:     make(map[string]int, len(workouts)),
	}
	var errs error
	for _, w := range workouts {
		if err := w.Validate(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := c.byID[w.ID]; dup {
			errs = multierr.Append(errs, &ValidationError{WorkoutID: w.ID, Field: "id", Reason: "is duplicated"})
			continue
		}
		// Copy the exercise slice so callers cannot mutate a loaded catalog.
		w.Exercises = append([]string(nil), w.Exercises...)
		c.byID[w.ID] = len(c.workouts)
		c.workouts = append(c.workouts, w)
	}
	if errs != nil {
		return nil, fmt.Errorf("domain.NewCatalog: %w", errs)
	}
	return c, nil
}

// Len returns the number of workouts.
func (c *Catalog) Len() int {
	return len(c.workouts)
}

// At returns the i-th workout in catalog order.
func (c *Catalog) At(i int) Workout {
	return c.workouts[i]
}

// Workouts returns a copy of the catalog in display order.
func (c *Catalog) Workouts() []Workout {
	return append([]Workout(nil), c.workouts...)
}

// Get looks a workout up by ID.
func (c *Catalog) Get(id string) (Workout, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Workout{}, false
	}
	return c.workouts[i], true
}

// DefaultWorkouts is the built-in catalog. Order is fixed.
var DefaultWorkouts = []Workout{
	{
		ID:        "1",
		Name:      "Cardio Blast",
		Duration:  30,
		Calories:  350,
		Exercises: []string{"Running in place", "Burpees", "Jumps", "Jump rope", "Jumping jacks"},
		Icon:      "zap",
		Gradient:  "orange-red",
	},
	{
		ID:        "2",
		Name:      "Strength Training",
		Duration:  45,
		Calories:  280,
		Exercises: []string{"Squats", "Push-ups", "Plank", "Lunges", "Pull-ups"},
		Icon:      "dumbbell",
		Gradient:  "blue-purple",
	},
	{
		ID:        "3",
		Name:      "Yoga Flow",
		Duration:  40,
		Calories:  180,
		Exercises: []string{"Downward dog", "Warrior pose", "Tree pose", "Cobra", "Savasana"},
		Icon:      "flower",
		Gradient:  "green-emerald",
	},
	{
		ID:        "4",
		Name:      "Stretching",
		Duration:  20,
		Calories:  90,
		Exercises: []string{"Forward bends", "Side stretches", "Twists", "Leg stretch", "Neck"},
		Icon:      "wind",
		Gradient:  "pink-rose",
	},
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultWorkouts)
	if err != nil {
		panic(err) // built-in data is covered by tests
	}
	return c
}
