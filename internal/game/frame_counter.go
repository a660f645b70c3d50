package game

import "time"

// FrameCounter measures frames per second over one-second windows.
type FrameCounter struct {
	start  time.Time
	frames int
	fps    float64
}

// Tick records a frame finished at now and reports whether a new rate was
// computed.
func (c *FrameCounter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < time.Second {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the rate of the last complete window.
func (c *FrameCounter) FPS() float64 {
	return c.fps
}
