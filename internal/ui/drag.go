package ui

import (
	"math"
	"time"

	"anicouch/internal/config"
)

// DragController turns raw pointer input into scroll offsets and classifies
// the release gesture: a tap activates the card under the pointer, a flick
// advances exactly one card, and anything else settles on the nearest card.
//
// While a drag is active it has exclusive authority over the scroll offset;
// the owning strip cancels any settle animation the moment a drag begins.
type DragController struct {
	tuning  config.Tuning
	sampler *GestureSampler

	active      bool
	exceeded    bool // pointer moved past the drag threshold at least once
	startX      float64
	lastX       float64
	startScroll float64
	startIndex  int
	maxMovePx   float64

	blockNextClick bool
}

// DragRelease describes the outcome of a finished gesture.
type DragRelease struct {
	Target int  // index to settle on
	Snap   bool // false for taps: no settle, activation may fire
}

func NewDragController(t config.Tuning) *DragController {
	return &DragController{
		tuning:  t,
		sampler: NewGestureSampler(time.Duration(t.SampleWindowMs) * time.Millisecond),
	}
}

// SetTuning swaps the feel constants (config hot reload).
func (dc *DragController) SetTuning(t config.Tuning) {
	dc.tuning = t
	dc.sampler.window = time.Duration(t.SampleWindowMs) * time.Millisecond
}

// Active reports whether a drag gesture is in progress.
func (dc *DragController) Active() bool {
	return dc.active
}

// Dragging reports whether the active gesture has passed the drag
// threshold, i.e. the pointer is actually moving content.
func (dc *DragController) Dragging() bool {
	return dc.active && dc.exceeded
}

// Begin starts a gesture session on pointer-down.
func (dc *DragController) Begin(now time.Time, x, scrollLeft float64, startIndex int) {
	dc.active = true
	dc.exceeded = false
	dc.startX = x
	dc.lastX = x
	dc.startScroll = scrollLeft
	dc.startIndex = startIndex
	dc.maxMovePx = 0
	dc.sampler.Reset()
	dc.sampler.Record(now, x)
}

// Move records a pointer sample and returns the scroll offset the strip
// should adopt. ok is false until the drag threshold has been exceeded;
// below the threshold the gesture is still a potential tap and the content
// must not move.
func (dc *DragController) Move(now time.Time, x float64) (scrollLeft float64, ok bool) {
	if !dc.active {
		return 0, false
	}
	dc.lastX = x
	dc.sampler.Record(now, x)

	move := math.Abs(x - dc.startX)
	if move > dc.maxMovePx {
		dc.maxMovePx = move
	}
	if !dc.exceeded && move > dc.tuning.DragThresholdPx {
		dc.exceeded = true
	}
	if !dc.exceeded {
		return 0, false
	}
	// Dragging right moves content left.
	return dc.startScroll + (dc.startX - x), true
}

// Release ends the gesture and classifies it. scrollLeft is the current
// (clamped) offset, stride/cardW/viewportW describe the strip geometry.
func (dc *DragController) Release(now time.Time, scrollLeft, stride, cardW, viewportW float64, count int) DragRelease {
	if !dc.active {
		return DragRelease{}
	}
	dc.active = false
	// A tap must not disturb a block armed by an earlier drag; the flag
	// stays set until an activation consumes it.
	if dc.exceeded {
		dc.blockNextClick = dc.maxMovePx > dc.tuning.ClickBlockPx
	}

	if !dc.exceeded {
		// A tap: no settle, let the card activation fire normally.
		return DragRelease{Target: dc.startIndex, Snap: false}
	}

	v := dc.sampler.Velocity()
	dur := dc.sampler.DurationMs()
	dx := dc.lastX - dc.startX
	dragged := math.Abs(scrollLeft - dc.startScroll)

	isFlick := math.Abs(v) >= dc.tuning.FlickVelocity
	isTinyFlick := isFlick && dur <= dc.tuning.TinyFlickMaxMs && math.Abs(dx) <= dc.tuning.TinyFlickMaxPx
	// A drag that already travelled past a full card is a positioning
	// gesture, not a flick, no matter how fast it ended.
	farDrag := dragged > dc.tuning.FarDragFactor*stride

	var target int
	switch {
	case isFlick && !farDrag:
		step := 1
		if v > 0 {
			step = -1 // rightward motion reveals the previous card
		}
		target = dc.startIndex + step
		if isTinyFlick {
			target = ClampInt(target, dc.startIndex-1, dc.startIndex+1)
		}
	case dragged < stride*dc.tuning.SnapBackFactor:
		// Accidental micro-drag: put it back where it started.
		target = dc.startIndex
	default:
		target = NearestIndex(scrollLeft, viewportW, stride, cardW, count)
	}

	return DragRelease{Target: ClampInt(target, 0, count-1), Snap: true}
}

// Cancel aborts the gesture without classification (pointer cancel, screen
// exit). Click blocking is preserved if the gesture had already dragged.
func (dc *DragController) Cancel() {
	if !dc.active {
		return
	}
	dc.active = false
	if dc.exceeded {
		dc.blockNextClick = dc.maxMovePx > dc.tuning.ClickBlockPx
	}
}

// ShouldBlockClick reports whether the next card activation must be
// suppressed, without consuming the flag.
func (dc *DragController) ShouldBlockClick() bool {
	return dc.blockNextClick
}

// ConsumeClickBlock returns whether the next activation must be suppressed
// and clears the flag, so exactly one activation is swallowed per gesture.
func (dc *DragController) ConsumeClickBlock() bool {
	b := dc.blockNextClick
	dc.blockNextClick = false
	return b
}
