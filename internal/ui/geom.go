package ui

import "math"

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseOutCubic maps t in [0,1] onto a decelerating curve.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// NearestIndex returns the item index whose card center is closest to the
// viewport center at the given scroll offset. stride is card width + gap.
func NearestIndex(scrollLeft, viewportW, stride, cardW float64, count int) int {
	if count <= 0 || stride <= 0 {
		return 0
	}
	center := scrollLeft + viewportW/2
	idx := int(math.Round((center - cardW/2) / stride))
	return ClampInt(idx, 0, count-1)
}

// IndexOffset returns the scroll offset that centers the given index in the
// viewport, clamped to be non-negative.
func IndexOffset(index int, stride, cardW, viewportW float64) float64 {
	off := float64(index)*stride + cardW/2 - viewportW/2
	return math.Max(0, off)
}

// MaxScroll is the largest useful scroll offset for count items.
func MaxScroll(count int, stride, gap, viewportW float64) float64 {
	if count <= 0 {
		return 0
	}
	total := float64(count)*stride - gap
	return math.Max(0, total-viewportW)
}
