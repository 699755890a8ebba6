package ui

import "time"

// SettleAnimator drives a single eased scroll animation from a start offset
// to a target offset. At most one animation is active at a time: Start
// replaces any in-flight animation, so two writers can never compete for
// the scroll offset.
type SettleAnimator struct {
	active   bool
	startAt  time.Time
	duration time.Duration
	from, to float64
}

// Start begins a new animation, cancelling any in-flight one.
func (sa *SettleAnimator) Start(now time.Time, from, to float64, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	sa.active = true
	sa.startAt = now
	sa.duration = duration
	sa.from = from
	sa.to = to
}

// Cancel stops the animation without completing it. The next Step reports
// inactive, returning scroll authority to drag/native input.
func (sa *SettleAnimator) Cancel() {
	sa.active = false
}

// Active reports whether an animation is in flight.
func (sa *SettleAnimator) Active() bool {
	return sa.active
}

// Target returns the destination offset of the current animation.
func (sa *SettleAnimator) Target() float64 {
	return sa.to
}

// Step advances the animation to the given time and returns the scroll
// offset for this tick. ok is false once the animation is inactive; done is
// true on the completing tick.
func (sa *SettleAnimator) Step(now time.Time) (offset float64, ok, done bool) {
	if !sa.active {
		return 0, false, false
	}
	t := float64(now.Sub(sa.startAt)) / float64(sa.duration)
	t = Clamp(t, 0, 1)
	offset = sa.from + (sa.to-sa.from)*EaseOutCubic(t)
	if t >= 1 {
		sa.active = false
		return sa.to, true, true
	}
	return offset, true, false
}
