package game

import (
	"time"

	"glyphglow/internal/config"
)

// spinWindow is how long before the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the loop below the display refresh rate. It is only
// needed when vsync is off or the cap is lower than the refresh.
type FPSLimiter struct {
	limit func() int
	next  time.Time

	// Hitches counts frames that overran a whole frame budget.
	Hitches int
}

// NewFPSLimiter creates a limiter reading its cap from limit, or from the
// live render settings when limit is nil.
func NewFPSLimiter(limit func() int) *FPSLimiter {
	if limit == nil {
		limit = config.GetFPSLimit
	}
	return &FPSLimiter{limit: limit}
}

// Budget returns the time allotted to one frame, or zero when uncapped.
func (f *FPSLimiter) Budget() time.Duration {
	n := f.limit()
	if n <= 0 {
		return 0
	}
	return time.Second / time.Duration(n)
}

// Wait blocks until the next frame is due and returns how long it blocked.
// It sleeps for most of the gap and busy-waits the last few microseconds,
// which keeps high caps precise.
func (f *FPSLimiter) Wait() time.Duration {
	budget := f.Budget()
	if budget == 0 {
		f.next = time.Time{}
		return 0
	}

	start := time.Now()
	if f.next.IsZero() {
		f.next = start.Add(budget)
	} else {
		f.next = f.next.Add(budget)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// After a hitch, restart the schedule instead of racing to catch up.
	if late := -time.Until(f.next); late > budget {
		f.Hitches++
		f.next = time.Now().Add(budget)
	}
	return time.Since(start)
}
