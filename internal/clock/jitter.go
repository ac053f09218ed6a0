package clock

import (
	"math/rand/v2"
	"time"
)

// Jitter returns a duration uniformly distributed in [lo, hi].
// Bounds are swapped when given in reverse order.
func Jitter(lo, hi time.Duration) time.Duration {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + rand.N(hi-lo+1)
}
