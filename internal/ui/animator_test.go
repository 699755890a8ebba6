package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimatorEasedTrajectory(t *testing.T) {
	var sa SettleAnimator
	sa.Start(at(0), 100, 500, 260*time.Millisecond)
	assert.True(t, sa.Active())

	off, ok, done := sa.Step(at(130))
	assert.True(t, ok)
	assert.False(t, done)
	want := 100 + 400*EaseOutCubic(0.5)
	assert.InDelta(t, want, off, 1e-9)
	// Ease-out: past the halfway offset at half time.
	assert.Greater(t, off, 300.0)

	off, ok, done = sa.Step(at(260))
	assert.True(t, ok)
	assert.True(t, done)
	assert.Equal(t, 500.0, off)
	assert.False(t, sa.Active())

	// Further steps report inactive.
	_, ok, _ = sa.Step(at(300))
	assert.False(t, ok)
}

func TestAnimatorStartReplacesInFlight(t *testing.T) {
	var sa SettleAnimator
	sa.Start(at(0), 0, 1000, 260*time.Millisecond)
	sa.Step(at(100))

	// A new target takes over; the old trajectory is gone.
	sa.Start(at(100), 400, 200, 260*time.Millisecond)
	assert.Equal(t, 200.0, sa.Target())

	off, ok, _ := sa.Step(at(100))
	assert.True(t, ok)
	assert.InDelta(t, 400.0, off, 1e-9) // t=0 of the new run

	off, _, done := sa.Step(at(360))
	assert.True(t, done)
	assert.Equal(t, 200.0, off)
}

func TestAnimatorCancel(t *testing.T) {
	var sa SettleAnimator
	sa.Start(at(0), 0, 100, 260*time.Millisecond)
	sa.Cancel()
	assert.False(t, sa.Active())
	_, ok, _ := sa.Step(at(50))
	assert.False(t, ok)
}

func TestAnimatorZeroDuration(t *testing.T) {
	var sa SettleAnimator
	sa.Start(at(0), 0, 100, 0)
	off, ok, done := sa.Step(at(1))
	assert.True(t, ok)
	assert.True(t, done)
	assert.Equal(t, 100.0, off)
}
