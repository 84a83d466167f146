package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestrictAngleToValidRange(t *testing.T) {
	assert.InDelta(t, 270.0, RestrictAngleToValidRange(-90), 1e-9)
	assert.InDelta(t, 0.0, RestrictAngleToValidRange(360), 1e-9)
	assert.InDelta(t, 10.0, RestrictAngleToValidRange(730), 1e-9)
	assert.InDelta(t, 359.0, RestrictAngleToValidRange(-1), 1e-9)
}

func TestAngularDeviation(t *testing.T) {
	assert.InDelta(t, 20.0, AngularDeviation(10, 350), 1e-9)
	assert.InDelta(t, 20.0, AngularDeviation(350, 10), 1e-9)
	assert.InDelta(t, 180.0, AngularDeviation(0, 180), 1e-9)
	assert.InDelta(t, 0.0, AngularDeviation(90, 450), 1e-9)
}

func TestReverseBearing(t *testing.T) {
	assert.InDelta(t, 180.0, ReverseBearing(0), 1e-9)
	assert.InDelta(t, 45.0, ReverseBearing(225), 1e-9)
}

// 0 u-turn, 90 right, 180 straight, 270 left, relative to the arrival
// direction.
func TestTurnAngle(t *testing.T) {
	arrival := 0.0 // heading north

	assert.InDelta(t, 180.0, TurnAngle(arrival, 0), 1e-9)   // straight on
	assert.InDelta(t, 90.0, TurnAngle(arrival, 90), 1e-9)   // right turn
	assert.InDelta(t, 270.0, TurnAngle(arrival, 270), 1e-9) // left turn
	assert.InDelta(t, 0.0, TurnAngle(arrival, 180), 1e-9)   // u-turn
}

func TestBearingTo(t *testing.T) {
	assert.InDelta(t, 0.0, BearingTo(0, 0, 1, 0), 1e-6)    // due north
	assert.InDelta(t, 90.0, BearingTo(0, 0, 0, 1), 1e-6)   // due east
	assert.InDelta(t, 180.0, BearingTo(1, 0, 0, 0), 1e-6)  // due south
	assert.InDelta(t, 270.0, BearingTo(0, 1, 0, 0), 1e-6)  // due west
	assert.InDelta(t, 45.0, BearingTo(0, 0, 0.001, 0.001), 0.01)
}
