package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anicouch/internal/config"
)

func TestWheelVerticalIntentRoutesHorizontally(t *testing.T) {
	wr := NewWheelRouter(config.DefaultTuning())

	delta, handled := wr.Route(at(0), 0, 30, false)
	assert.True(t, handled)
	assert.Equal(t, 30.0, delta)

	// Explicit horizontal motion wins when dominant.
	delta, handled = wr.Route(at(10), 40, 10, false)
	assert.True(t, handled)
	assert.Equal(t, 40.0, delta)

	// Shift redirects vertical deltas too.
	delta, handled = wr.Route(at(20), 0, 25, true)
	assert.True(t, handled)
	assert.Equal(t, 25.0, delta)

	_, handled = wr.Route(at(30), 0, 0, false)
	assert.False(t, handled)
}

func TestWheelSettleAfterQuietPeriod(t *testing.T) {
	wr := NewWheelRouter(config.DefaultTuning())
	wr.Route(at(0), 0, 30, false)

	assert.False(t, wr.ShouldSettle(at(100), false, false), "still inside the quiet period")
	assert.True(t, wr.ShouldSettle(at(130), false, false))
	assert.False(t, wr.ShouldSettle(at(200), false, false), "fires at most once per quiet period")
}

func TestWheelSettleInhibitors(t *testing.T) {
	wr := NewWheelRouter(config.DefaultTuning())
	wr.Route(at(0), 0, 30, false)

	assert.False(t, wr.ShouldSettle(at(200), true, false), "drag active")
	assert.False(t, wr.ShouldSettle(at(200), false, true), "settle in flight")
	// Still pending: fires once the inhibitors clear.
	assert.True(t, wr.ShouldSettle(at(200), false, false))
}

func TestFastWheelSuppressesSnap(t *testing.T) {
	wr := NewWheelRouter(config.DefaultTuning())
	wr.Route(at(0), 0, 80, false) // > 60: fast

	assert.True(t, wr.FastScrolling(at(100)))
	assert.False(t, wr.ShouldSettle(at(160), false, false), "cool-down still active")
	assert.False(t, wr.FastScrolling(at(180)))
	assert.True(t, wr.ShouldSettle(at(180), false, false))
}

func TestWheelRearmsOnNewInput(t *testing.T) {
	wr := NewWheelRouter(config.DefaultTuning())
	wr.Route(at(0), 0, 30, false)
	wr.Route(at(100), 0, 30, false) // rearm inside the quiet period

	assert.False(t, wr.ShouldSettle(at(130), false, false), "quiet period restarts on new input")
	assert.True(t, wr.ShouldSettle(at(230), false, false))
}
