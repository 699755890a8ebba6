package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindowCoverage(t *testing.T) {
	const (
		count     = 200
		stride    = 298.0
		viewportW = 1200.0
		buffer    = 3
	)
	maxScroll := float64(count)*stride - viewportW

	// Sweep scroll positions; every card intersecting the viewport must be
	// inside the window, and the window must stay inside [0, count-1].
	for scroll := 0.0; scroll <= maxScroll; scroll += 37.5 {
		win, ok := ComputeWindow(scroll, viewportW, count, stride, buffer)
		require.True(t, ok)

		assert.GreaterOrEqual(t, win.Start, 0)
		assert.LessOrEqual(t, win.End, count-1)
		assert.LessOrEqual(t, win.Start, win.End)

		for i := 0; i < count; i++ {
			left := float64(i) * stride
			right := left + stride
			intersects := right > scroll && left < scroll+viewportW
			if intersects {
				assert.True(t, win.Contains(i),
					"scroll=%.1f: visible card %d outside window [%d,%d]",
					scroll, i, win.Start, win.End)
			}
		}

		// Buffer margin present except at the range edges.
		if win.Start > 0 {
			firstVisible := int(math.Floor(scroll / stride))
			assert.Equal(t, max(0, firstVisible-buffer), win.Start)
		}
	}
}

func TestComputeWindowSpacerPreservation(t *testing.T) {
	const (
		count  = 120
		stride = 156.0
	)
	for _, scroll := range []float64{0, 100, 1500, 9000, 17000} {
		for _, viewportW := range []float64{640, 1200, 1920} {
			win, ok := ComputeWindow(scroll, viewportW, count, stride, 2)
			require.True(t, ok)
			total := win.LeftSpacerPx + win.Width(stride) + win.RightSpacerPx
			assert.InDelta(t, float64(count)*stride, total, 1e-9,
				"scroll=%.0f viewport=%.0f", scroll, viewportW)
		}
	}
}

func TestComputeWindowDegenerate(t *testing.T) {
	_, ok := ComputeWindow(0, 1200, 0, 298, 3)
	assert.False(t, ok, "zero count renders nothing")

	_, ok = ComputeWindow(0, 1200, 10, 0, 3)
	assert.False(t, ok, "zero stride renders nothing")

	_, ok = ComputeWindow(0, 0, 10, 298, 3)
	assert.False(t, ok, "zero viewport renders nothing")

	// Negative scroll clamps rather than producing a negative range.
	win, ok := ComputeWindow(-400, 1200, 10, 298, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, win.Start)
}

func TestComputeWindowSingleItem(t *testing.T) {
	win, ok := ComputeWindow(0, 1200, 1, 298, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, win.Start)
	assert.Equal(t, 0, win.End)
	assert.Equal(t, 0.0, win.LeftSpacerPx)
	assert.Equal(t, 0.0, win.RightSpacerPx)
}
