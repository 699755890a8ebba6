package ui

import "time"

// GestureSampler records timestamped pointer positions over a short trailing
// window and derives release velocity and gesture duration from them.
type GestureSampler struct {
	window  time.Duration
	samples []gestureSample
}

type gestureSample struct {
	t time.Time
	x float64
}

// NewGestureSampler creates a sampler with the given trailing window.
func NewGestureSampler(window time.Duration) *GestureSampler {
	return &GestureSampler{window: window}
}

// Record appends a sample and evicts samples older than the trailing window.
func (gs *GestureSampler) Record(now time.Time, x float64) {
	gs.samples = append(gs.samples, gestureSample{t: now, x: x})
	cutoff := now.Add(-gs.window)
	drop := 0
	for drop < len(gs.samples)-1 && gs.samples[drop].t.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		gs.samples = gs.samples[drop:]
	}
}

// Velocity returns the mean velocity across the retained window in px/ms.
// Fewer than 2 samples, or a gesture with no recorded movement, yields 0,
// which callers must treat as "not a flick".
func (gs *GestureSampler) Velocity() float64 {
	if len(gs.samples) < 2 {
		return 0
	}
	first := gs.samples[0]
	last := gs.samples[len(gs.samples)-1]
	dtMs := float64(last.t.Sub(first.t)) / float64(time.Millisecond)
	if dtMs < 1 {
		dtMs = 1
	}
	return (last.x - first.x) / dtMs
}

// DurationMs returns the time span between the first and last retained
// sample in milliseconds.
func (gs *GestureSampler) DurationMs() float64 {
	if len(gs.samples) < 2 {
		return 0
	}
	first := gs.samples[0]
	last := gs.samples[len(gs.samples)-1]
	return float64(last.t.Sub(first.t)) / float64(time.Millisecond)
}

// Reset discards all samples.
func (gs *GestureSampler) Reset() {
	gs.samples = gs.samples[:0]
}
