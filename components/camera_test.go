package components

import (
	"testing"

	cfg "github.com/hollowmoor/duskfang/config"
)

func TestShakeTriggerMaxAndExtend(t *testing.T) {
	var s ShakeSession

	s.Trigger(0.3, 0.1)
	s.Trigger(0.7, 0.05)

	if s.Intensity != 0.7 {
		t.Fatalf("stronger request should raise intensity, got %f", s.Intensity)
	}
	if s.Remaining != 0.05 {
		t.Fatalf("new request should reset the clock, got %f", s.Remaining)
	}

	// A weaker follow-up keeps the stronger intensity but still refreshes
	// the duration.
	s.Trigger(0.2, 0.3)
	if s.Intensity != 0.7 {
		t.Fatalf("weaker request must not soften the shake, got %f", s.Intensity)
	}
	if s.Remaining != 0.3 {
		t.Fatalf("weaker request should still refresh the clock, got %f", s.Remaining)
	}
}

func TestShakeDecayFalloff(t *testing.T) {
	var s ShakeSession
	s.Trigger(1.0, 0.4)

	if got := s.Decay(); got != 1.0 {
		t.Fatalf("fresh shake decays from 1, got %f", got)
	}

	s.Remaining = 0.1
	if got := s.Decay(); got != 0.25 {
		t.Fatalf("decay should be remaining/duration, got %f", got)
	}

	s.Remaining = 0
	if s.Active() {
		t.Fatal("exhausted shake must be inactive")
	}
	if got := s.Decay(); got != 0 {
		t.Fatalf("exhausted shake decays to 0, got %f", got)
	}
}

func TestCinematicZoomGuards(t *testing.T) {
	c := CameraData{Zoom: cfg.Camera.DefaultZoom, TargetZoom: cfg.Camera.DefaultZoom}

	c.StartCinematicZoom(1.6, 0.8)
	if c.ZoomTween == nil {
		t.Fatal("cinematic zoom should install a tween")
	}
	first := c.ZoomTween

	// Re-entry and steady-state retargeting are ignored mid-cinematic.
	c.StartCinematicZoom(0.6, 0.2)
	if c.ZoomTween != first {
		t.Fatal("a running cinematic must not be replaced")
	}
	c.SetTargetZoom(0.6)
	if c.TargetZoom != 1.6 {
		t.Fatalf("zone retarget must be ignored mid-cinematic, got %f", c.TargetZoom)
	}
}

func TestCinematicZoomClampsToBounds(t *testing.T) {
	c := CameraData{Zoom: cfg.Camera.DefaultZoom}

	c.StartCinematicZoom(cfg.Camera.MaxZoom*2, 0.5)
	if c.TargetZoom != cfg.Camera.MaxZoom {
		t.Fatalf("cinematic zoom should clamp to max, got %f", c.TargetZoom)
	}
}

func TestStartPanNormalizesDirection(t *testing.T) {
	var c CameraData

	c.StartPan(3, 4, 100, 0.5, 1.0)
	if c.PanSeq == nil {
		t.Fatal("pan should install a sequence")
	}
	if c.PanDirX != 0.6 || c.PanDirY != 0.8 {
		t.Fatalf("pan direction should normalize, got (%f,%f)", c.PanDirX, c.PanDirY)
	}

	// A zero direction is rejected outright.
	var idle CameraData
	idle.StartPan(0, 0, 100, 0.5, 1.0)
	if idle.PanSeq != nil {
		t.Fatal("zero-direction pan must be ignored")
	}
}
