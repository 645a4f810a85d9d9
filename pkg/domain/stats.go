package domain

// MonthlyStats is the summary card shown under the catalog.
type MonthlyStats struct {
	CaloriesBurned int `json:"calories_burned"`
	Workouts       int `json:"workouts"`
	Minutes        int `json:"minutes"`
	Achievements   int `json:"achievements"`
}

// WeeklyTarget is the number of workouts the weekly goal is measured against.
const WeeklyTarget = 5

// DefaultMonthlyStats are the static figures on the catalog screen.
var DefaultMonthlyStats = MonthlyStats{
	CaloriesBurned: 2850,
	Workouts:       18,
	Minutes:        540,
	Achievements:   12,
}
