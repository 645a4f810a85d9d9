package session

import "fmt"

const (
	// DefaultWeeklyGoal is the starting weekly goal of a fresh process.
	DefaultWeeklyGoal WeeklyGoal = 65
	// CompletionBonus is added to the weekly goal when a workout finishes.
	CompletionBonus = 15
	// MaxWeeklyGoal caps the weekly goal.
	MaxWeeklyGoal WeeklyGoal = 100
)

// WeeklyGoal is a percentage in [0, 100]. It lives in memory only.
type WeeklyGoal int

// NewWeeklyGoal clamps v into range.
func NewWeeklyGoal(v int) WeeklyGoal {
	return WeeklyGoal(0).Add(v)
}

// Add returns g+delta clamped to [0, 100].
func (g WeeklyGoal) Add(delta int) WeeklyGoal {
	v := int(g) + delta
	if v > int(MaxWeeklyGoal) {
		return MaxWeeklyGoal
	}
	if v < 0 {
		return 0
	}
	return WeeklyGoal(v)
}

// Percent returns the goal as a float in [0, 100].
func (g WeeklyGoal) Percent() float64 {
	return float64(g)
}

func (g WeeklyGoal) String() string {
	return fmt.Sprintf("%d%%", int(g))
}
