package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"anicouch/internal/config"
)

// StripConfig parameterizes a navigator strip. The same engine drives the
// episode, chapter, and character navigators and the home carousels; only
// card geometry, labels, and callbacks differ.
type StripConfig struct {
	CardW, CardH float64
	Gap          float64
	Buffer       int // extra cards materialized on each side of the viewport
	Tuning       config.Tuning

	// OnActivate fires when a card is tapped or Enter is pressed on the
	// focused card. Suppressed exactly once after a blocking drag.
	OnActivate func(index int)
	// DrawCard renders one card. Nil cards draw a plain placeholder.
	DrawCard func(dst *ebiten.Image, index int, x, y float64, focused bool)
}

// Strip is a horizontally scrolling, windowed card navigator with pointer
// drag, flick classification, wheel routing, and snap-to-card settling.
//
// The ebiten update goroutine owns the scroll offset. Its writers (drag,
// wheel, and the settle animator) are serialized by cancelling the
// animation before either input path moves the offset.
type Strip struct {
	cfg   StripConfig
	count int

	x, y, viewportW float64

	scrollLeft float64
	focused    int
	marked     int // externally highlighted card (current episode), -1 none

	drag  *DragController
	wheel *WheelRouter
	anim  *SettleAnimator
}

func NewStrip(cfg StripConfig) *Strip {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 3
	}
	return &Strip{
		cfg:    cfg,
		marked: -1,
		drag:   NewDragController(cfg.Tuning),
		wheel:  NewWheelRouter(cfg.Tuning),
		anim:   &SettleAnimator{},
	}
}

// SetTuning swaps the feel constants on the live strip (config hot reload).
func (s *Strip) SetTuning(t config.Tuning) {
	s.cfg.Tuning = t
	s.drag.SetTuning(t)
	s.wheel.SetTuning(t)
}

// SetBounds positions the strip's viewport. Must be called before Update.
func (s *Strip) SetBounds(x, y, viewportW float64) {
	s.x = x
	s.y = y
	s.viewportW = viewportW
}

// SetCount revises the item count. Counts arrive asynchronously and may
// shrink; scroll and focus are clamped back into range.
func (s *Strip) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	s.count = count
	if count == 0 {
		s.scrollLeft = 0
		s.focused = 0
		s.anim.Cancel()
		return
	}
	s.focused = ClampInt(s.focused, 0, count-1)
	s.scrollLeft = Clamp(s.scrollLeft, 0, s.maxScroll())
}

func (s *Strip) Count() int          { return s.count }
func (s *Strip) Focused() int        { return s.focused }
func (s *Strip) ScrollLeft() float64 { return s.scrollLeft }
func (s *Strip) Settling() bool      { return s.anim.Active() }
func (s *Strip) Dragging() bool      { return s.drag.Dragging() }

// SetMarked highlights one card (e.g. the last watched episode), -1 clears.
func (s *Strip) SetMarked(i int) {
	s.marked = i
}

func (s *Strip) stride() float64 {
	return s.cfg.CardW + s.cfg.Gap
}

func (s *Strip) maxScroll() float64 {
	return MaxScroll(s.count, s.stride(), s.cfg.Gap, s.viewportW)
}

func (s *Strip) contains(px, py float64) bool {
	return px >= s.x && px <= s.x+s.viewportW && py >= s.y && py <= s.y+s.cfg.CardH
}

// indexAt returns the card under the given screen x, or -1.
func (s *Strip) indexAt(px float64) int {
	if s.count == 0 || px < s.x || px > s.x+s.viewportW {
		return -1
	}
	rel := px - s.x + s.scrollLeft
	i := int(rel / s.stride())
	if i < 0 || i >= s.count {
		return -1
	}
	// Inside the gap between cards counts as no card.
	if rel-float64(i)*s.stride() > s.cfg.CardW {
		return -1
	}
	return i
}

func (s *Strip) nearestIndex() int {
	return NearestIndex(s.scrollLeft, s.viewportW, s.stride(), s.cfg.CardW, s.count)
}

// ScrollToIndex settles the strip onto the given card. Replaces any
// in-flight animation; a repeat call for the same target is a no-op so
// stacked requests cannot fight over the offset.
func (s *Strip) ScrollToIndex(now time.Time, index int) {
	if s.count == 0 {
		return
	}
	index = ClampInt(index, 0, s.count-1)
	target := IndexOffset(index, s.stride(), s.cfg.CardW, s.viewportW)
	target = Clamp(target, 0, s.maxScroll())
	if s.anim.Active() && s.anim.Target() == target {
		return
	}
	s.anim.Start(now, s.scrollLeft, target, time.Duration(s.cfg.Tuning.SettleDurationMs)*time.Millisecond)
}

// Nudge moves keyboard focus one card left or right and settles on it.
func (s *Strip) Nudge(now time.Time, dir Direction) bool {
	if s.count == 0 {
		return false
	}
	switch dir {
	case DirLeft:
		if s.focused > 0 {
			s.focused--
			s.ScrollToIndex(now, s.focused)
			return true
		}
	case DirRight:
		if s.focused < s.count-1 {
			s.focused++
			s.ScrollToIndex(now, s.focused)
			return true
		}
	}
	return false
}

// Activate fires the activation callback for the focused card (Enter key).
func (s *Strip) Activate() {
	if s.count == 0 || s.cfg.OnActivate == nil {
		return
	}
	s.cfg.OnActivate(s.focused)
}

// Update advances the strip one frame: pointer drag, wheel routing, settle
// scheduling, and the animation step.
func (s *Strip) Update(now time.Time, in PointerFrame) {
	if s.count == 0 {
		return
	}

	// Pointer down inside the strip starts a gesture and takes the scroll
	// offset away from any running settle animation.
	if in.JustDown && s.contains(in.X, in.Y) {
		s.anim.Cancel()
		s.drag.Begin(now, in.X, s.scrollLeft, s.nearestIndex())
	}

	if s.drag.Active() {
		if in.Pressed {
			if off, ok := s.drag.Move(now, in.X); ok {
				s.scrollLeft = Clamp(off, 0, s.maxScroll())
			}
		} else {
			s.release(now, in)
		}
	}

	// Wheel input routes to horizontal motion while the pointer hovers the
	// strip. New wheel motion also interrupts a settle in flight.
	if (in.WheelX != 0 || in.WheelY != 0) && s.contains(in.X, in.Y) && !s.drag.Active() {
		if delta, handled := s.wheel.Route(now, in.WheelX, in.WheelY, in.Shift); handled {
			s.anim.Cancel()
			s.scrollLeft = Clamp(s.scrollLeft+delta, 0, s.maxScroll())
		}
	}

	if s.wheel.ShouldSettle(now, s.drag.Active(), s.anim.Active()) {
		s.ScrollToIndex(now, s.nearestIndex())
	}

	if off, ok, _ := s.anim.Step(now); ok {
		s.scrollLeft = Clamp(off, 0, s.maxScroll())
	}
}

func (s *Strip) release(now time.Time, in PointerFrame) {
	rel := s.drag.Release(now, s.scrollLeft, s.stride(), s.cfg.CardW, s.viewportW, s.count)
	if rel.Snap {
		s.focused = rel.Target
		s.ScrollToIndex(now, rel.Target)
		return
	}

	// Tap path: activation fires unless a previous blocking drag is still
	// owed its one suppressed click.
	idx := s.indexAt(in.X)
	if idx < 0 {
		return
	}
	if s.drag.ConsumeClickBlock() {
		return
	}
	s.focused = idx
	if s.cfg.OnActivate != nil {
		s.cfg.OnActivate(idx)
	}
}

// CancelGesture aborts any in-flight drag and settle (screen exit).
func (s *Strip) CancelGesture() {
	s.drag.Cancel()
	s.anim.Cancel()
	s.wheel.Reset()
}

// Window returns the card range worth materializing right now. ok is false
// when the strip has nothing to show.
func (s *Strip) Window() (VisibleWindow, bool) {
	return ComputeWindow(s.scrollLeft, s.viewportW, s.count, s.stride(), s.cfg.Buffer)
}

// Draw renders the windowed card range, delegating per-card rendering to
// the configured DrawCard.
func (s *Strip) Draw(dst *ebiten.Image, active bool) {
	win, ok := s.Window()
	if !ok {
		return
	}
	for i := win.Start; i <= win.End; i++ {
		cx := s.x + float64(i)*s.stride() - s.scrollLeft
		if cx+s.cfg.CardW < s.x-s.cfg.Gap || cx > s.x+s.viewportW {
			continue
		}
		focused := active && i == s.focused
		if focused {
			vector.DrawFilledRect(dst,
				float32(cx-PosterFocusPad), float32(s.y-PosterFocusPad),
				float32(s.cfg.CardW+PosterFocusPad*2), float32(s.cfg.CardH+PosterFocusPad*2),
				ColorFocusBorder, false)
		} else if i == s.marked {
			vector.StrokeRect(dst,
				float32(cx-2), float32(s.y-2),
				float32(s.cfg.CardW+4), float32(s.cfg.CardH+4),
				2, ColorAccent, false)
		}
		if s.cfg.DrawCard != nil {
			s.cfg.DrawCard(dst, i, cx, s.y, focused)
		} else {
			vector.DrawFilledRect(dst, float32(cx), float32(s.y),
				float32(s.cfg.CardW), float32(s.cfg.CardH), ColorSurface, false)
		}
	}
}
