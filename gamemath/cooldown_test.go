package gamemath

import "testing"

func TestCooldownCountsDown(t *testing.T) {
	var c Cooldown
	c.Set(0.1)
	if !c.Active() {
		t.Fatal("cooldown should be active after Set")
	}

	for i := 0; i < 5; i++ {
		c.Tick(0.02)
	}
	if c.Active() {
		t.Fatalf("cooldown should have expired, remaining=%f", c.Remaining)
	}
}

func TestCooldownNeverGoesNegative(t *testing.T) {
	var c Cooldown
	c.Set(0.05)
	c.Tick(1.0)
	if c.Remaining != 0 {
		t.Fatalf("remaining should clamp at 0, got %f", c.Remaining)
	}

	// Ticking an expired cooldown is a no-op.
	c.Tick(1.0)
	if c.Remaining != 0 {
		t.Fatalf("ticking expired cooldown changed it: %f", c.Remaining)
	}
}

func TestCooldownStop(t *testing.T) {
	var c Cooldown
	c.Set(10)
	c.Stop()
	if !c.Done() {
		t.Fatal("Stop should expire the cooldown")
	}
}
