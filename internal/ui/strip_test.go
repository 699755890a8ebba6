package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anicouch/internal/config"
)

func newTestStrip(count int, onActivate func(int)) *Strip {
	s := NewStrip(StripConfig{
		CardW:      280,
		CardH:      158,
		Gap:        18,
		Buffer:     3,
		Tuning:     config.DefaultTuning(),
		OnActivate: onActivate,
	})
	s.SetBounds(0, 0, 1200)
	s.SetCount(count)
	return s
}

func idle(x, y float64) PointerFrame {
	return PointerFrame{X: x, Y: y}
}

// stepFrames advances the strip with no input so in-flight animations run out.
func stepFrames(s *Strip, from time.Time, frames int) time.Time {
	now := from
	for i := 0; i < frames; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, idle(-1, -1))
	}
	return now
}

func TestScrollToIndexIdempotent(t *testing.T) {
	s := newTestStrip(50, nil)

	s.ScrollToIndex(at(0), 20)
	require.True(t, s.Settling())
	target := s.anim.Target()

	// Immediate repeat must not restart or stack a second animation.
	s.Update(at(16), idle(-1, -1))
	mid := s.ScrollLeft()
	s.ScrollToIndex(at(16), 20)
	assert.Equal(t, target, s.anim.Target())
	s.Update(at(17), idle(-1, -1))
	assert.GreaterOrEqual(t, s.ScrollLeft(), mid, "no restart: offset keeps converging")

	stepFrames(s, at(17), 30)
	assert.False(t, s.Settling())
	assert.InDelta(t, IndexOffset(20, 298, 280, 1200), s.ScrollLeft(), 1e-9)
}

func TestStripTapActivates(t *testing.T) {
	var activated []int
	s := newTestStrip(50, func(i int) { activated = append(activated, i) })

	// Press and release over card 1 without movement.
	x := 298.0 + 100 // inside card 1
	s.Update(at(0), PointerFrame{X: x, Y: 50, Pressed: true, JustDown: true})
	s.Update(at(80), PointerFrame{X: x, Y: 50, JustUp: true})

	assert.Equal(t, []int{1}, activated)
	assert.False(t, s.Settling(), "a tap does not trigger a settle")
}

func TestStripDragBlocksNextActivation(t *testing.T) {
	var activated []int
	s := newTestStrip(50, func(i int) { activated = append(activated, i) })

	// Drag 60px: blocking. Release happens over a card but is a drag, so
	// no activation fires and the block flag stays armed.
	s.Update(at(0), PointerFrame{X: 400, Y: 50, Pressed: true, JustDown: true})
	s.Update(at(30), PointerFrame{X: 430, Y: 50, Pressed: true})
	s.Update(at(60), PointerFrame{X: 460, Y: 50, Pressed: true})
	s.Update(at(90), PointerFrame{X: 460, Y: 50, JustUp: true})
	require.Empty(t, activated)
	now := stepFrames(s, at(90), 30)

	// The very next tap is swallowed by the armed block flag.
	s.Update(now.Add(16*time.Millisecond), PointerFrame{X: 100, Y: 50, Pressed: true, JustDown: true})
	s.Update(now.Add(96*time.Millisecond), PointerFrame{X: 100, Y: 50, JustUp: true})
	assert.Empty(t, activated, "first activation after a blocking drag is suppressed")

	// And the one after that goes through.
	s.Update(now.Add(200*time.Millisecond), PointerFrame{X: 100, Y: 50, Pressed: true, JustDown: true})
	s.Update(now.Add(280*time.Millisecond), PointerFrame{X: 100, Y: 50, JustUp: true})
	assert.Len(t, activated, 1)
}

func TestStripDragMovesContentAndSettles(t *testing.T) {
	s := newTestStrip(50, nil)
	s.scrollLeft = 2000

	s.Update(at(0), PointerFrame{X: 800, Y: 50, Pressed: true, JustDown: true})
	s.Update(at(40), PointerFrame{X: 700, Y: 50, Pressed: true})
	assert.InDelta(t, 2100, s.ScrollLeft(), 1e-9, "dragging left moves content right")

	s.Update(at(300), PointerFrame{X: 690, Y: 50, Pressed: true})
	s.Update(at(340), PointerFrame{X: 690, Y: 50, JustUp: true})
	require.True(t, s.Settling(), "drag release settles onto a card")

	stepFrames(s, at(340), 30)
	nearest := NearestIndex(s.ScrollLeft(), 1200, 298, 280, 50)
	assert.InDelta(t, IndexOffset(nearest, 298, 280, 1200), s.ScrollLeft(), 1e-9)
}

func TestStripNewDragCancelsSettle(t *testing.T) {
	s := newTestStrip(50, nil)
	s.ScrollToIndex(at(0), 30)
	s.Update(at(16), idle(-1, -1))
	require.True(t, s.Settling())

	s.Update(at(32), PointerFrame{X: 600, Y: 50, Pressed: true, JustDown: true})
	assert.False(t, s.Settling(), "pointer-down takes authority from the animator")
}

func TestStripWheelScrollsAndSettles(t *testing.T) {
	s := newTestStrip(50, nil)

	s.Update(at(0), PointerFrame{X: 600, Y: 50, WheelY: 40})
	assert.InDelta(t, 40, s.ScrollLeft(), 1e-9)

	// After the quiet period the strip snaps to the nearest card.
	now := stepFrames(s, at(0), 12) // ~190ms of quiet
	_ = now
	waitSettled(t, s)
}

func waitSettled(t *testing.T, s *Strip) {
	t.Helper()
	now := at(0).Add(time.Second)
	for i := 0; i < 60 && s.Settling(); i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, idle(-1, -1))
	}
	nearest := NearestIndex(s.ScrollLeft(), 1200, 298, 280, 50)
	assert.InDelta(t, IndexOffset(nearest, 298, 280, 1200), s.ScrollLeft(), 1e-9)
}

func TestStripCountRevision(t *testing.T) {
	s := newTestStrip(50, nil)
	s.scrollLeft = 9000
	s.focused = 45

	// Count shrinks under the current scroll position.
	s.SetCount(10)
	assert.LessOrEqual(t, s.ScrollLeft(), MaxScroll(10, 298, 18, 1200))
	assert.Equal(t, 9, s.Focused())

	s.SetCount(0)
	assert.Equal(t, 0.0, s.ScrollLeft())
	_, ok := s.Window()
	assert.False(t, ok, "zero items renders nothing")
}

func TestStripNudgeKeyboardNavigation(t *testing.T) {
	s := newTestStrip(50, nil)
	assert.True(t, s.Nudge(at(0), DirRight))
	assert.Equal(t, 1, s.Focused())
	assert.True(t, s.Settling())

	s.focused = 0
	s.anim.Cancel()
	assert.False(t, s.Nudge(at(0), DirLeft), "already at the first card")
}
