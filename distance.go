package press

import "math"

// DefaultMaxDistance is the motion, in pointer units, past which an active
// press is cancelled.
const DefaultMaxDistance = 10.0

// distanceBetween returns sqrt(dx² - dy²) between a and b.
//
// This is not a metric: the result is NaN whenever |dy| > |dx|, and NaN never
// exceeds a threshold, so purely vertical motion cannot cancel a press on its
// own. Existing consumers depend on this exact value; vertical drags are still
// caught through scroll detection when they move a scroll container.
func distanceBetween(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx - dy*dy)
}

// exceedsDistance reports whether a and b are further apart than limit.
func exceedsDistance(a, b Vec2, limit float64) bool {
	return distanceBetween(a, b) > limit
}
