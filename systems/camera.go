package systems

import (
	"math"
	"math/rand"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	StepCamera(e, cfg.TickDelta)
}

// StepCamera advances the cinematic camera: zone-driven zoom, smoothed
// follow with look-ahead, scripted moves and the shake session. Runs
// after collision resolution so it reads final positions.
func StepCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	zones := components.Zones.Get(cameraEntry)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		updateShake(camera, dt)
		return
	}
	playerObject := components.Object.Get(playerEntry).Object
	px := playerObject.X + playerObject.W/2
	py := playerObject.Y + playerObject.H/2

	updateZoneZoom(camera, zones, px, py)
	updateZoom(camera, dt)
	updateLookAhead(camera, px, py)
	updatePan(camera, dt)
	followTarget(e, camera, px, py)
	updateShake(camera, dt)

	camera.LastTarget.X = px
	camera.LastTarget.Y = py
	camera.HasLastTarget = true
}

// updateZoneZoom asks the zone manager for the highest-priority zone
// containing the player. One-shot zones run as a cinematic; regular zones
// just retarget the smoothed zoom. Outside every zone the camera returns
// to the default.
func updateZoneZoom(camera *components.CameraData, zones *components.ZoneManagerData, px, py float64) {
	if camera.CinematicActive() {
		return
	}
	if zones == nil {
		camera.SetTargetZoom(cfg.Camera.DefaultZoom)
		return
	}

	zone := zones.ActiveZoneFor(px, py)
	if zone == nil {
		camera.SetTargetZoom(cfg.Camera.DefaultZoom)
		return
	}
	if zone.OneShot {
		camera.StartCinematicZoom(zone.Zoom, cfg.Camera.PanDuration)
		// Reveal pan toward the zone center: out, hold, back. A player
		// standing dead on the center keeps the zoom-only cinematic.
		camera.StartPan(zone.X+zone.W/2-px, zone.Y+zone.H/2-py,
			cfg.Camera.PanDistance, cfg.Camera.PanDuration, cfg.Camera.PanHoldTime)
		return
	}
	camera.SetTargetZoom(zone.Zoom)
}

func updateZoom(camera *components.CameraData, dt float64) {
	if camera.ZoomTween != nil {
		value, done := camera.ZoomTween.Update(float32(dt))
		camera.Zoom = float64(value)
		if done {
			camera.ZoomTween = nil
		}
		return
	}

	diff := camera.TargetZoom - camera.Zoom
	if math.Abs(diff) <= cfg.Camera.ZoomEpsilon {
		// Snap to kill the asymptotic tail.
		camera.Zoom = camera.TargetZoom
		return
	}
	camera.Zoom += diff * cfg.Camera.ZoomStep
}

// updateLookAhead derives look-ahead from frame-to-frame displacement of
// the tracked point, so knockback and moving platforms count the same as
// input-driven motion. The horizontal offset freezes when idle; the
// vertical one recenters.
func updateLookAhead(camera *components.CameraData, px, py float64) {
	if !camera.HasLastTarget {
		return
	}

	dx := px - camera.LastTarget.X
	dy := py - camera.LastTarget.Y

	if math.Abs(dx) > cfg.Camera.LookAheadThresholdX {
		target := gamemath.Sign(dx) * cfg.Camera.LookAheadDistanceX
		camera.LookAhead.X += (target - camera.LookAhead.X) * cfg.Camera.LookAheadSmoothing
	}

	targetY := 0.0
	if math.Abs(dy) > cfg.Camera.LookAheadThresholdY {
		targetY = gamemath.Sign(dy) * cfg.Camera.LookAheadDistanceY
	}
	camera.LookAhead.Y += (targetY - camera.LookAhead.Y) * cfg.Camera.LookAheadSmoothing
}

func updatePan(camera *components.CameraData, dt float64) {
	if camera.PanSeq == nil {
		return
	}

	value, _, seqDone := camera.PanSeq.Update(float32(dt))
	camera.PanOffset.X = camera.PanDirX * float64(value)
	camera.PanOffset.Y = camera.PanDirY * float64(value)
	if seqDone {
		camera.PanSeq = nil
		camera.PanOffset.X = 0
		camera.PanOffset.Y = 0
	}
}

// followTarget eases the camera toward the player plus look-ahead and any
// scripted pan offset, clamped so the visible rectangle stays inside the
// level.
func followTarget(e *ecs.ECS, camera *components.CameraData, px, py float64) {
	targetX := px + camera.LookAhead.X + camera.PanOffset.X
	targetY := py + camera.LookAhead.Y + camera.PanOffset.Y

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		if level != nil {
			zoom := camera.Zoom
			if zoom <= 0 {
				zoom = cfg.Camera.DefaultZoom
			}
			halfW := float64(cfg.C.Width) / 2 / zoom
			halfH := float64(cfg.C.Height) / 2 / zoom

			levelW := float64(level.Width)
			levelH := float64(level.Height)
			if levelW > halfW*2 {
				targetX = gamemath.Clamp(targetX, halfW, levelW-halfW)
			} else {
				targetX = levelW / 2
			}
			if levelH > halfH*2 {
				targetY = gamemath.Clamp(targetY, halfH, levelH-halfH)
			} else {
				targetY = levelH / 2
			}
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// updateShake recomputes the transient shake offset. The offset is random
// per tick, scaled by the session decay and the per-axis weights, and
// never folded into Position.
func updateShake(camera *components.CameraData, dt float64) {
	shake := &camera.Shake
	if !shake.Active() {
		camera.ShakeOffset.X = 0
		camera.ShakeOffset.Y = 0
		shake.Intensity = 0
		return
	}

	shake.Remaining -= dt
	if shake.Remaining < 0 {
		shake.Remaining = 0
	}

	strength := shake.Intensity * shake.Decay()
	camera.ShakeOffset.X = (rand.Float64()*2 - 1) * strength * cfg.ScreenShake.AxisScaleX
	camera.ShakeOffset.Y = (rand.Float64()*2 - 1) * strength * cfg.ScreenShake.AxisScaleY
}

// TriggerScreenShake starts or reinforces a shake. A weaker request never
// softens a stronger ongoing one; it only refreshes the clock.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Shake.Trigger(intensity, duration)
}
