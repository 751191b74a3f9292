// Package clock provides the one-shot decision timer driven by simulation ticks.
//
// The timer is polled: the owner calls Advance once per tick, so expiry is
// observed on the same logical thread as every other state mutation.
package clock

// Countdown is a one-shot, rearmable timer measured in simulated seconds.
// It fires at most once per arm; arming again before expiry cancels the
// pending fire.
type Countdown struct {
	wait      float64
	remaining float64
	armed     bool
}

// NewCountdown returns a disarmed countdown.
func NewCountdown() *Countdown {
	return &Countdown{}
}

// Arm sets the wait time and starts counting from it.
func (c *Countdown) Arm(wait float64) {
	c.wait = wait
	c.Restart()
}

// Restart starts counting again from the last wait time.
// A countdown that was never given a positive wait stays disarmed.
func (c *Countdown) Restart() {
	if c.wait <= 0 {
		c.armed = false
		return
	}
	c.remaining = c.wait
	c.armed = true
}

// Stop disarms the countdown. The wait time is kept for a later Restart.
func (c *Countdown) Stop() {
	c.armed = false
	c.remaining = 0
}

// Armed reports whether a fire is pending.
func (c *Countdown) Armed() bool {
	return c.armed
}

// WaitTime returns the duration of the current or last arm.
func (c *Countdown) WaitTime() float64 {
	return c.wait
}

// Remaining returns the time left before expiry, zero when disarmed.
func (c *Countdown) Remaining() float64 {
	if !c.armed {
		return 0
	}
	return c.remaining
}

// Advance consumes dt seconds and reports whether the countdown expired
// during this call. After expiry it is disarmed until armed again.
func (c *Countdown) Advance(dt float64) bool {
	if !c.armed {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.armed = false
	c.remaining = 0
	return true
}
