package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
)

// stepWolf runs the ground patroller's state machine. The chase drop-out
// range is wider than the detection range so a player hovering at the
// boundary cannot make the wolf flicker between states.
func stepWolf(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, player *resolv.Object, dt float64) {
	dist := centerDist(obj, player)

	switch state.CurrentState {
	case cfg.StatePatrol:
		wolfPatrol(enemy, physics, obj, dt)
		if dist <= cfg.Wolf.DetectionRange {
			state.Enter(cfg.StateChase)
		}

	case cfg.StateChase:
		wolfChase(enemy, physics, obj, player, dt)
		if dist > cfg.Wolf.DetectionRange*cfg.Enemy.HysteresisMultiplier {
			state.Enter(cfg.StatePatrol)
			return
		}
		if dist <= cfg.Wolf.AttackRange && enemy.AttackCooldown.Done() && physics.OnGround != nil {
			wolfStartLeap(enemy, physics, obj, player)
			state.Enter(cfg.StateLeap)
		}

	case cfg.StateLeap:
		// The leap is committed: no steering until the wolf lands. The
		// landing check requires non-upward velocity so the launch tick
		// itself does not end the state.
		if physics.OnGround != nil && physics.SpeedY >= 0 && state.StateTimer > cfg.TickDelta {
			enemy.AttackCooldown.Set(cfg.Wolf.AttackCooldown)
			state.Enter(cfg.StateChase)
		}

	case cfg.Hit:
		physics.SpeedX = gamemath.Approach(physics.SpeedX, 0, cfg.Wolf.MoveSpeed*4*dt)
		if enemy.HurtTimer.Done() {
			state.Enter(cfg.StatePatrol)
		}

	default:
		state.Enter(cfg.StatePatrol)
	}
}

// wolfPatrol paces between the spawn anchor and the patrol bound, turning
// at the edges and at walls.
func wolfPatrol(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	pace := cfg.Wolf.MoveSpeed / 2
	if enemy.Direction.X == 0 {
		enemy.Direction.X = cfg.DirectionRight
	}

	physics.SpeedX = pace * enemy.Direction.X

	left := enemy.PatrolOriginX - cfg.Wolf.PatrolDistance
	right := enemy.PatrolOriginX + cfg.Wolf.PatrolDistance
	if obj.X <= left {
		enemy.Direction.X = cfg.DirectionRight
	} else if obj.X >= right {
		enemy.Direction.X = cfg.DirectionLeft
	}

	// Walls also reverse the walk
	if check := obj.Check(physics.SpeedX*dt, 0, tags.ResolvSolid); check != nil {
		if solidBlocksMovement(obj, check) {
			enemy.Direction.X = -enemy.Direction.X
		}
	}
}

func wolfChase(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, player *resolv.Object, dt float64) {
	if player == nil {
		physics.SpeedX = gamemath.Approach(physics.SpeedX, 0, cfg.Wolf.ChargeSpeed*2*dt)
		return
	}

	dx := (player.X + player.W/2) - (obj.X + obj.W/2)
	enemy.Direction.X = gamemath.Sign(dx)
	if math.Abs(dx) < 2 {
		physics.SpeedX = 0
		return
	}
	physics.SpeedX = cfg.Wolf.ChargeSpeed * enemy.Direction.X
}

// wolfStartLeap applies a single impulse toward the player. From here the
// arc belongs to gravity.
func wolfStartLeap(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, player *resolv.Object) {
	direction := enemy.Direction.X
	if player != nil {
		direction = gamemath.Sign((player.X + player.W/2) - (obj.X + obj.W/2))
	}
	if direction == 0 {
		direction = cfg.DirectionRight
	}
	enemy.Direction.X = direction

	physics.SpeedX = cfg.Wolf.LeapForceX * direction
	physics.SpeedY = cfg.Wolf.LeapForceY
	physics.OnGround = nil
}
