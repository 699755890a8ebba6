package ui

import (
	"math"
	"time"

	"anicouch/internal/config"
)

// WheelRouter translates wheel input into horizontal scroll motion and
// decides when the strip should settle onto the nearest card. Vertical
// wheel motion is repurposed as horizontal navigation; a fast trackpad
// flick suppresses snapping for a short cool-down so it is not interrupted
// mid-flight.
type WheelRouter struct {
	tuning config.Tuning

	fastUntil time.Time
	lastWheel time.Time
	pending   bool
}

func NewWheelRouter(t config.Tuning) *WheelRouter {
	return &WheelRouter{tuning: t}
}

// SetTuning swaps the feel constants (config hot reload).
func (wr *WheelRouter) SetTuning(t config.Tuning) {
	wr.tuning = t
}

// Route consumes one wheel event and returns the horizontal delta to apply
// to the scroll offset. handled is false when the event carried no motion.
func (wr *WheelRouter) Route(now time.Time, dx, dy float64, shift bool) (delta float64, handled bool) {
	if dx == 0 && dy == 0 {
		return 0, false
	}
	if math.Abs(dy) > math.Abs(dx) && !shift {
		delta = dy
	} else if dx != 0 {
		delta = dx
	} else {
		delta = dy
	}
	if delta == 0 {
		return 0, false
	}

	if math.Abs(delta) > wr.tuning.FastWheelDelta {
		wr.fastUntil = now.Add(time.Duration(wr.tuning.FastWheelCooldown) * time.Millisecond)
	}
	wr.lastWheel = now
	wr.pending = true
	return delta, true
}

// FastScrolling reports whether the fast-wheel cool-down is active.
func (wr *WheelRouter) FastScrolling(now time.Time) bool {
	return now.Before(wr.fastUntil)
}

// ShouldSettle reports whether wheel input has quieted down long enough to
// snap to the nearest card. It fires at most once per quiet period and is
// inhibited while a drag, settle animation, or fast-wheel cool-down is
// active.
func (wr *WheelRouter) ShouldSettle(now time.Time, dragActive, settling bool) bool {
	if !wr.pending || dragActive || settling || wr.FastScrolling(now) {
		return false
	}
	if now.Sub(wr.lastWheel) < time.Duration(wr.tuning.WheelSettleMs)*time.Millisecond {
		return false
	}
	wr.pending = false
	return true
}

// Reset clears pending settle state (strip unmount or series change).
func (wr *WheelRouter) Reset() {
	wr.pending = false
	wr.fastUntil = time.Time{}
}
