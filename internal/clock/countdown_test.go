package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownFiresOncePerArm(t *testing.T) {
	c := NewCountdown()
	assert.False(t, c.Armed())
	assert.False(t, c.Advance(10))

	c.Arm(1.0)
	assert.True(t, c.Armed())
	assert.Equal(t, 1.0, c.WaitTime())

	assert.False(t, c.Advance(0.5))
	assert.InDelta(t, 0.5, c.Remaining(), 1e-12)
	assert.True(t, c.Advance(0.5))
	assert.False(t, c.Armed())

	// No second fire without a new arm.
	assert.False(t, c.Advance(5))
}

func TestCountdownRearmCancelsPending(t *testing.T) {
	c := NewCountdown()
	c.Arm(1.0)
	assert.False(t, c.Advance(0.9))

	c.Arm(2.0)
	assert.False(t, c.Advance(0.9))
	assert.False(t, c.Advance(1.0))
	assert.True(t, c.Advance(0.2))
}

func TestCountdownRestartKeepsWait(t *testing.T) {
	c := NewCountdown()
	c.Arm(1.5)
	c.Advance(1.4)
	c.Restart()
	assert.InDelta(t, 1.5, c.Remaining(), 1e-12)
	assert.False(t, c.Advance(1.4))
	assert.True(t, c.Advance(0.1))
}

func TestCountdownStop(t *testing.T) {
	c := NewCountdown()
	c.Arm(1.0)
	c.Stop()
	assert.False(t, c.Armed())
	assert.Equal(t, 0.0, c.Remaining())
	assert.False(t, c.Advance(2))

	c.Restart()
	assert.True(t, c.Armed())
	assert.Equal(t, 1.0, c.Remaining())
}

func TestCountdownRestartWithoutWait(t *testing.T) {
	c := NewCountdown()
	c.Restart()
	assert.False(t, c.Armed())
}
