package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
}

// HandleMouseWheel updates the target scroll position from the vertical
// wheel delta. Screens that host a navigator strip must skip this while
// the pointer hovers the strip, which claims wheel input for itself.
func (s *ScrollState) HandleMouseWheel(wy float64) {
	if wy != 0 {
		s.TargetScrollY -= wy * ScrollWheelSpeed
		if s.TargetScrollY < 0 {
			s.TargetScrollY = 0
		}
	}
}

// Animate performs smooth scroll interpolation. Call this from Draw().
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureSectionVisible scrolls to make a home-style section visible.
func (s *ScrollState) EnsureSectionVisible(sectionIdx int, baseY, viewHeight float64) {
	sectionTop := baseY + float64(sectionIdx)*SectionFullHeight
	sectionBottom := sectionTop + SectionFullHeight

	if sectionBottom > viewHeight+s.TargetScrollY {
		s.TargetScrollY = sectionBottom - viewHeight
	}
	if sectionTop < s.TargetScrollY {
		s.TargetScrollY = sectionTop - baseY
		if s.TargetScrollY < 0 {
			s.TargetScrollY = 0
		}
	}
}
