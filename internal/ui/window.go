package ui

import "math"

// VisibleWindow is the contiguous index range of cards worth materializing
// at a given scroll position, plus the spacer widths that preserve the
// total scrollable width of the strip.
type VisibleWindow struct {
	Start, End    int
	LeftSpacerPx  float64
	RightSpacerPx float64
}

// ComputeWindow returns the visible window for the given geometry. The
// range always covers every card even partially inside the viewport plus
// buffer extra cards on each side. ok is false when there is nothing to
// render (zero count, zero stride, or zero viewport).
func ComputeWindow(scrollLeft, viewportW float64, count int, stride float64, buffer int) (VisibleWindow, bool) {
	if count <= 0 || stride <= 0 || viewportW <= 0 {
		return VisibleWindow{}, false
	}
	if scrollLeft < 0 {
		scrollLeft = 0
	}

	start := int(math.Floor(scrollLeft/stride)) - buffer
	end := int(math.Ceil((scrollLeft+viewportW)/stride)) + buffer
	start = ClampInt(start, 0, count-1)
	end = ClampInt(end, 0, count-1)

	return VisibleWindow{
		Start:         start,
		End:           end,
		LeftSpacerPx:  float64(start) * stride,
		RightSpacerPx: float64(count-1-end) * stride,
	}, true
}

// Width returns the materialized width of the window in px.
func (w VisibleWindow) Width(stride float64) float64 {
	return float64(w.End-w.Start+1) * stride
}

// Contains reports whether the index falls inside the window.
func (w VisibleWindow) Contains(i int) bool {
	return i >= w.Start && i <= w.End
}
