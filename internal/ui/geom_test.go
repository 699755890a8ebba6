package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	// Decelerating: first half covers more than half the distance.
	assert.Greater(t, EaseOutCubic(0.5), 0.5)
	// Monotonic on a coarse sweep.
	prev := -1.0
	for i := 0; i <= 10; i++ {
		v := EaseOutCubic(float64(i) / 10)
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestNearestIndex(t *testing.T) {
	const stride, cardW, viewportW = 298.0, 280.0, 1200.0

	tests := []struct {
		name       string
		scrollLeft float64
		count      int
		want       int
	}{
		{"at origin", 0, 50, 2},
		{"clamps low", -500, 50, 0},
		{"clamps high", 1e9, 50, 49},
		{"centered card", IndexOffset(17, stride, cardW, viewportW), 50, 17},
		{"empty", 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestIndex(tt.scrollLeft, viewportW, stride, cardW, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexOffsetRoundTrip(t *testing.T) {
	const stride, cardW, viewportW = 298.0, 280.0, 1200.0
	for _, idx := range []int{0, 1, 5, 20, 49} {
		off := IndexOffset(idx, stride, cardW, viewportW)
		assert.GreaterOrEqual(t, off, 0.0)
		got := NearestIndex(off, viewportW, stride, cardW, 50)
		// Index 0..1 clamp to offset 0; nearest from there is the true nearest.
		if off > 0 {
			assert.Equal(t, idx, got, "index %d", idx)
		}
	}
}

func TestMaxScroll(t *testing.T) {
	assert.Equal(t, 0.0, MaxScroll(0, 298, 18, 1200))
	assert.Equal(t, 0.0, MaxScroll(3, 298, 18, 1200)) // fits in viewport
	want := 50*298.0 - 18 - 1200
	assert.InDelta(t, want, MaxScroll(50, 298, 18, 1200), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(1, 2, 5))
	assert.Equal(t, 5.0, Clamp(9, 2, 5))
	assert.Equal(t, 3.5, Clamp(3.5, 2, 5))
	assert.False(t, math.IsNaN(Clamp(3, 0, 1)))
}
