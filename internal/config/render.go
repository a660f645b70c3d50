package config

import "sync"

// RenderSettings holds settings that may change while the loop runs.
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means no cap beyond the swap interval
}

var globalRenderSettings = &RenderSettings{}

// GetFPSLimit returns the current frame cap.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values below zero disable it; values above 1000 are clamped.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}
