package debug

import "time"

// FPS averages the frame rate over a reporting window.
type FPS struct {
	window time.Duration
	start  time.Time
	frames int
}

// NewFPS creates a meter that reports once per window.
func NewFPS(window time.Duration, now time.Time) *FPS {
	return &FPS{window: window, start: now}
}

// Tick counts a frame finished at now. When the window has elapsed it
// returns the average rate over it and starts a new window.
func (f *FPS) Tick(now time.Time) (float64, bool) {
	f.frames++
	elapsed := now.Sub(f.start)
	if elapsed < f.window {
		return 0, false
	}
	rate := float64(f.frames) / elapsed.Seconds()
	f.start, f.frames = now, 0
	return rate, true
}
