package components

import (
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShakeSession is one additive screen shake: a new request raises intensity
// to the max of current and requested and resets the remaining duration, so
// a stronger ongoing shake is never weakened.
type ShakeSession struct {
	Intensity float64
	Duration  float64
	Remaining float64
}

// Trigger applies the max-and-extend policy.
func (s *ShakeSession) Trigger(intensity, duration float64) {
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	s.Duration = duration
	s.Remaining = duration
}

// Active reports whether the shake still perturbs the camera.
func (s *ShakeSession) Active() bool {
	return s.Remaining > 0
}

// Decay returns the 1..0 falloff over the session lifetime.
func (s *ShakeSession) Decay() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return gamemath.Clamp(s.Remaining/s.Duration, 0, 1)
}

// CameraData owns the dynamic camera state: smoothed zoom, velocity-derived
// look-ahead, the shake session and optional scripted cinematic moves.
type CameraData struct {
	Position math.Vec2

	Zoom       float64
	TargetZoom float64

	LookAhead math.Vec2

	// Previous tracked point, for frame-to-frame displacement.
	LastTarget    math.Vec2
	HasLastTarget bool

	Shake ShakeSession
	// Transient scroll perturbation, recomputed every tick; never folded
	// into Position.
	ShakeOffset math.Vec2

	// Cinematic overrides. While either runs, zone-driven zoom requests are
	// ignored and player-follow is suspended for the pan.
	ZoomTween *gween.Tween
	PanSeq    *gween.Sequence
	PanDirX   float64
	PanDirY   float64
	PanOffset math.Vec2
}

// SetTargetZoom requests a new zoom target, clamped to the configured
// bounds. Ignored while a cinematic zoom is running.
func (c *CameraData) SetTargetZoom(zoom float64) {
	if c.ZoomTween != nil {
		return
	}
	c.TargetZoom = gamemath.Clamp(zoom, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
}

// StartCinematicZoom animates zoom to the given value over duration seconds.
// Re-entry while one is running is ignored.
func (c *CameraData) StartCinematicZoom(to, duration float64) {
	if c.ZoomTween != nil {
		return
	}
	to = gamemath.Clamp(to, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	c.TargetZoom = to
	c.ZoomTween = gween.New(float32(c.Zoom), float32(to), float32(duration), ease.InOutQuad)
}

// StartPan detaches from player-follow, pans distance pixels along (dirX,
// dirY), holds, then pans back and reattaches. Idempotent while running.
func (c *CameraData) StartPan(dirX, dirY, distance, panDuration, holdDuration float64) {
	if c.PanSeq != nil {
		return
	}
	length := gamemath.Dist(0, 0, dirX, dirY)
	if length == 0 {
		return
	}
	c.PanDirX = dirX / length
	c.PanDirY = dirY / length
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, float32(distance), float32(panDuration), ease.InOutQuad),
		gween.New(float32(distance), float32(distance), float32(holdDuration), ease.Linear),
		gween.New(float32(distance), 0, float32(panDuration), ease.InOutQuad),
	)
	c.PanSeq = seq
}

// CinematicActive reports whether a scripted move currently overrides the
// steady-state camera.
func (c *CameraData) CinematicActive() bool {
	return c.ZoomTween != nil || c.PanSeq != nil
}

var Camera = donburi.NewComponentType[CameraData]()
