package session

import "math"

// Percent converts a score into a whole percentage using round-half-up.
// A zero total yields 0 rather than a division fault.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)/float64(total)*100 + 0.5))
}
