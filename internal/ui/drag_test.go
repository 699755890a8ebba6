package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anicouch/internal/config"
)

const (
	testStride    = 298.0
	testCardW     = 280.0
	testViewportW = 1200.0
	testCount     = 50
)

func newDrag() *DragController {
	return NewDragController(config.DefaultTuning())
}

func TestFlickAdvancesOneCard(t *testing.T) {
	tests := []struct {
		name   string
		xs     []float64 // positions at 16ms intervals after start
		target int       // relative to startIndex 10
	}{
		// Rightward motion reveals the previous card.
		{"rightward flick", []float64{520, 540, 560}, 9},
		// Leftward motion reveals the next card.
		{"leftward flick", []float64{480, 460, 440}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := newDrag()
			dc.Begin(at(0), 500, 2000, 10)
			scroll := 2000.0
			for i, x := range tt.xs {
				if off, ok := dc.Move(at((i+1)*16), x); ok {
					scroll = off
				}
			}
			rel := dc.Release(at(len(tt.xs)*16), scroll, testStride, testCardW, testViewportW, testCount)
			require.True(t, rel.Snap)
			assert.Equal(t, tt.target, rel.Target)
		})
	}
}

func TestTinyFlickBoundedToOneStep(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	// 28px in 40ms: v = 0.7 px/ms, duration ≤ 90ms, displacement ≤ 30px.
	scroll := 2000.0
	if off, ok := dc.Move(at(20), 514); ok {
		scroll = off
	}
	if off, ok := dc.Move(at(40), 528); ok {
		scroll = off
	}
	rel := dc.Release(at(40), scroll, testStride, testCardW, testViewportW, testCount)
	require.True(t, rel.Snap)
	assert.Equal(t, 9, rel.Target)
	assert.LessOrEqual(t, abs(rel.Target-10), 1)
}

func TestFarDragSuppressesFlick(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 900, 2000, 10)
	// Fast, but travels well past one full card: positioning, not a flick.
	var scroll float64
	for i, x := range []float64{700, 500, 300, 100} {
		if off, ok := dc.Move(at((i+1)*30), x); ok {
			scroll = off
		}
	}
	require.InDelta(t, 2800, scroll, 1e-9)
	rel := dc.Release(at(120), scroll, testStride, testCardW, testViewportW, testCount)
	require.True(t, rel.Snap)
	want := NearestIndex(scroll, testViewportW, testStride, testCardW, testCount)
	assert.Equal(t, want, rel.Target)
	assert.NotEqual(t, 9, rel.Target, "a far drag must not be classified as a flick")
}

func TestMicroDragSnapsBack(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	// Slow 10px drag: exceeds the 6px threshold but lands under the
	// 0.22-stride distance gate.
	scroll := 2000.0
	for i, x := range []float64{497, 494, 492, 490} {
		if off, ok := dc.Move(at((i+1)*60), x); ok {
			scroll = off
		}
	}
	rel := dc.Release(at(240), scroll, testStride, testCardW, testViewportW, testCount)
	require.True(t, rel.Snap)
	assert.Equal(t, 10, rel.Target, "micro-drags return to the start index")
}

func TestTapDoesNotSnap(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	dc.Move(at(10), 503) // under the 6px drag threshold
	rel := dc.Release(at(20), 2000, testStride, testCardW, testViewportW, testCount)
	assert.False(t, rel.Snap)
	assert.False(t, dc.ShouldBlockClick())
}

func TestContentFrozenBelowDragThreshold(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	_, ok := dc.Move(at(10), 504)
	assert.False(t, ok, "content must not move before the threshold")
	off, ok := dc.Move(at(20), 520)
	assert.True(t, ok)
	assert.InDelta(t, 1980, off, 1e-9) // 1:1 inverted
}

func TestClickBlockConsumedExactlyOnce(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	var scroll float64
	for i, x := range []float64{510, 520, 530} {
		if off, ok := dc.Move(at((i+1)*50), x); ok {
			scroll = off
		}
	}
	dc.Release(at(150), scroll, testStride, testCardW, testViewportW, testCount)

	assert.True(t, dc.ShouldBlockClick(), "a 30px drag must block the next activation")
	assert.True(t, dc.ConsumeClickBlock())
	assert.False(t, dc.ShouldBlockClick(), "the flag resets after one consume")
	assert.False(t, dc.ConsumeClickBlock())
}

func TestClickBlockSurvivesInterveningTap(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	var scroll float64
	for i, x := range []float64{510, 520, 530} {
		if off, ok := dc.Move(at((i+1)*50), x); ok {
			scroll = off
		}
	}
	dc.Release(at(150), scroll, testStride, testCardW, testViewportW, testCount)
	require.True(t, dc.ShouldBlockClick())

	// A tap before anything consumes the block must leave it armed,
	// otherwise the tap's own activation sneaks past the suppression.
	dc.Begin(at(200), 600, 2000, 10)
	rel := dc.Release(at(210), 2000, testStride, testCardW, testViewportW, testCount)
	assert.False(t, rel.Snap)
	assert.True(t, dc.ShouldBlockClick(), "a tap release must not clear an armed block")
	assert.True(t, dc.ConsumeClickBlock())
	assert.False(t, dc.ShouldBlockClick())
}

func TestClickBlockNotSetForSmallDrag(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 2000, 10)
	var scroll float64
	// 10px: past the 6px drag threshold, under the 12px click-block bound.
	for i, x := range []float64{504, 507, 510} {
		if off, ok := dc.Move(at((i+1)*60), x); ok {
			scroll = off
		}
	}
	dc.Release(at(180), scroll, testStride, testCardW, testViewportW, testCount)
	assert.False(t, dc.ShouldBlockClick())
}

func TestReleaseClampsToRange(t *testing.T) {
	dc := newDrag()
	dc.Begin(at(0), 500, 0, 0)
	var scroll float64
	if off, ok := dc.Move(at(16), 540); ok {
		scroll = off
	}
	if off, ok := dc.Move(at(32), 580); ok {
		scroll = off
	}
	rel := dc.Release(at(32), max(0, scroll), testStride, testCardW, testViewportW, testCount)
	require.True(t, rel.Snap)
	assert.Equal(t, 0, rel.Target, "flick past the first card clamps to 0")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
