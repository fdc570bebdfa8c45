package gamemath

// Cooldown is a countdown scalar in seconds. It never goes below zero and
// ticking an expired cooldown is a no-op, so callers can Tick every frame
// without guarding.
type Cooldown struct {
	Remaining float64
}

// Set restarts the countdown at d seconds.
func (c *Cooldown) Set(d float64) {
	c.Remaining = d
}

// Tick advances the countdown by dt seconds.
func (c *Cooldown) Tick(dt float64) {
	if c.Remaining <= 0 {
		return
	}
	c.Remaining -= dt
	if c.Remaining < 0 {
		c.Remaining = 0
	}
}

// Active reports whether the countdown is still running.
func (c *Cooldown) Active() bool {
	return c.Remaining > 0
}

// Done reports whether the countdown has expired.
func (c *Cooldown) Done() bool {
	return c.Remaining <= 0
}

// Stop expires the countdown immediately.
func (c *Cooldown) Stop() {
	c.Remaining = 0
}
