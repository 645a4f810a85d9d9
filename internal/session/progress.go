package session

import "fmt"

// Progress is the share of the workout done, in percent:
//
//	((index + (60 - remaining) / 60) / total) * 100
//
// It would reach 100 at zero seconds into the last exercise, which the
// controller never exposes: that tick completes the session.
func Progress(index, remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	elapsed := float64(ExerciseSeconds-remaining) / ExerciseSeconds
	return (float64(index) + elapsed) / float64(total) * 100
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
