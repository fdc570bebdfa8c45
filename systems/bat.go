package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/solarlune/resolv"
)

// stepBat runs the flyer's state machine. Bats ignore gravity until they
// die; all motion here is direct velocity control.
func stepBat(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, player *resolv.Object, dt float64) {
	dist := centerDist(obj, player)

	switch state.CurrentState {
	case cfg.StateSleeping:
		physics.SpeedX = 0
		physics.SpeedY = 0
		if dist <= cfg.Bat.WakeRange {
			physics.SpeedY = cfg.Bat.StartleImpulse
			state.Enter(cfg.StateFlying)
		}

	case cfg.StateFlying:
		batFly(enemy, physics, obj, player, dt)
		if dist <= cfg.Bat.DetectionRange && enemy.SwoopCooldown.Done() && player != nil {
			// Capture the dive point now; the swoop does not track.
			enemy.SwoopTargetX = player.X + player.W/2
			enemy.SwoopTargetY = player.Y + player.H/2
			state.Enter(cfg.StateSwooping)
		}

	case cfg.StateSwooping:
		if batSwoop(enemy, physics, obj, dt) {
			physics.SpeedY += cfg.Bat.PullUpImpulse
			enemy.SwoopCooldown.Set(cfg.Bat.SwoopCooldown)
			state.Enter(cfg.StateFlying)
		}

	case cfg.Hit:
		physics.SpeedX = gamemath.Approach(physics.SpeedX, 0, cfg.Bat.FlySpeed*4*dt)
		physics.SpeedY = gamemath.Approach(physics.SpeedY, 0, cfg.Bat.FlySpeed*4*dt)
		if enemy.HurtTimer.Done() {
			state.Enter(cfg.StateFlying)
		}

	default:
		state.Enter(cfg.StateSleeping)
	}
}

// batFly steers toward an oscillating point around the player, drifting
// home when the chase has dragged the bat too far from its perch.
func batFly(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, player *resolv.Object, dt float64) {
	enemy.FlightClock += dt

	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	var targetX, targetY float64
	if player != nil {
		targetX = player.X + player.W/2 + math.Sin(enemy.FlightClock*cfg.Bat.OscFreqX)*cfg.Bat.OscAmplitudeX
		targetY = player.Y + player.H/2 + math.Cos(enemy.FlightClock*cfg.Bat.OscFreqY)*cfg.Bat.OscAmplitudeY
	} else {
		targetX = enemy.HomeX
		targetY = enemy.HomeY
	}

	// Beyond the tether the target is pulled back toward the perch.
	if gamemath.Dist(cx, cy, enemy.HomeX, enemy.HomeY) > cfg.Bat.HomeRadius {
		targetX = gamemath.Lerp(targetX, enemy.HomeX, cfg.Bat.HomeBias)
		targetY = gamemath.Lerp(targetY, enemy.HomeY, cfg.Bat.HomeBias)
	}

	dx := targetX - cx
	dy := targetY - cy
	dist := math.Sqrt(dx*dx + dy*dy)

	var desiredX, desiredY float64
	if dist > 1 {
		desiredX = dx / dist * cfg.Bat.FlySpeed
		desiredY = dy / dist * cfg.Bat.FlySpeed
	}

	blend := cfg.Bat.FlyLerp * dt
	if blend > 1 {
		blend = 1
	}
	physics.SpeedX = gamemath.Lerp(physics.SpeedX, desiredX, blend)
	physics.SpeedY = gamemath.Lerp(physics.SpeedY, desiredY, blend)
}

// batSwoop accelerates toward the captured dive point. Returns true once
// the bat has arrived and should pull up.
func batSwoop(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, dt float64) bool {
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	dx := enemy.SwoopTargetX - cx
	dy := enemy.SwoopTargetY - cy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist <= cfg.Bat.ArriveRadius {
		return true
	}

	desiredX := dx / dist * cfg.Bat.SwoopSpeed
	desiredY := dy / dist * cfg.Bat.SwoopSpeed
	physics.SpeedX = gamemath.Approach(physics.SpeedX, desiredX, cfg.Bat.SwoopAccel*dt)
	physics.SpeedY = gamemath.Approach(physics.SpeedY, desiredY, cfg.Bat.SwoopAccel*dt)
	return false
}
