package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestSamplerVelocity(t *testing.T) {
	gs := NewGestureSampler(120 * time.Millisecond)

	// No samples, one sample: velocity 0, not a flick.
	assert.Equal(t, 0.0, gs.Velocity())
	gs.Record(at(0), 100)
	assert.Equal(t, 0.0, gs.Velocity())

	gs.Record(at(40), 180)
	assert.InDelta(t, 2.0, gs.Velocity(), 1e-9) // 80px over 40ms
	assert.InDelta(t, 40.0, gs.DurationMs(), 1e-9)
}

func TestSamplerTrailingWindowEviction(t *testing.T) {
	gs := NewGestureSampler(120 * time.Millisecond)
	gs.Record(at(0), 0)
	gs.Record(at(100), 40)
	gs.Record(at(160), 100)

	// The t=0 sample is outside the 120ms window behind t=160.
	assert.InDelta(t, 60.0, gs.DurationMs(), 1e-9)
	assert.InDelta(t, 1.0, gs.Velocity(), 1e-9)

	// A long stall leaves only the newest sample: velocity reads 0.
	gs.Record(at(500), 120)
	assert.Equal(t, 0.0, gs.Velocity())
}

func TestSamplerZeroMovementIsNotAFlick(t *testing.T) {
	gs := NewGestureSampler(120 * time.Millisecond)
	gs.Record(at(0), 300)
	gs.Record(at(30), 300)
	gs.Record(at(60), 300)
	assert.Equal(t, 0.0, gs.Velocity())
}

func TestSamplerSimultaneousSamples(t *testing.T) {
	gs := NewGestureSampler(120 * time.Millisecond)
	gs.Record(at(0), 0)
	gs.Record(at(0), 10)
	// Denominator floors at 1ms; no division by zero.
	assert.InDelta(t, 10.0, gs.Velocity(), 1e-9)
}

func TestSamplerReset(t *testing.T) {
	gs := NewGestureSampler(120 * time.Millisecond)
	gs.Record(at(0), 0)
	gs.Record(at(10), 50)
	gs.Reset()
	assert.Equal(t, 0.0, gs.Velocity())
	assert.Equal(t, 0.0, gs.DurationMs())
}
