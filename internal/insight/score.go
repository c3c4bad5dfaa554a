package insight

import "math"

// Productivity score weights. Overdue tasks cost more than a completion earns.
const (
	completedWeight  = 2.0
	overdueWeight    = 3.0
	inProgressWeight = 0.5
	scoreScale       = 50.0
)

// roundHalfUp rounds to the nearest integer, with halves rounded up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// CompletionRate is the rounded percentage of completed tasks, 0 when
// there are no tasks.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(completed*100) / float64(total))
}

// ProductivityScore is
//
//	clamp((completed*2 - overdue*3 + inProgress*0.5) / total * 50, 0, 100)
//
// rounded to the nearest integer, and 0 when there are no tasks.
func ProductivityScore(completed, overdue, inProgress, total int) int {
	if total <= 0 {
		return 0
	}
	raw := (float64(completed)*completedWeight -
		float64(overdue)*overdueWeight +
		float64(inProgress)*inProgressWeight) / float64(total) * scoreScale
	return roundHalfUp(math.Max(0, math.Min(100, raw)))
}
