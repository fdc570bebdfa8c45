package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxStepDistance caps per-tick vertical travel so a long hitch cannot
// tunnel a body through a one-tile floor.
const maxStepDistance = 16.0

func UpdateCollisions(e *ecs.ECS) {
	StepCollisions(e, cfg.TickDelta)
}

// StepCollisions moves every solid-interacting body by its velocity times
// dt and resolves contacts against walls, platforms and dead zones.
func StepCollisions(e *ecs.ECS, dt float64) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		resolveHorizontal(physics, obj, dt)
		resolveVertical(physics, obj, dt)

		if touchingDeadZone(obj) {
			handlePlayerDeadZone(e, entry)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		resolveHorizontal(physics, obj, dt)
		resolveVertical(physics, obj, dt)

		if touchingDeadZone(obj) {
			components.Health.Get(entry).Current = 0
		}
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dt float64) {
	dx := physics.SpeedX * dt
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		object.X += dx
		return
	}

	if solidBlocksMovement(object, check) {
		physics.SpeedX = 0
		dx = 0
	}

	// Overlapping another character produces a gentle push-back instead
	// of a hard stop, so bodies separate over a few ticks.
	if characters := check.ObjectsByTags(tags.ResolvCharacter); len(characters) > 0 {
		contact := check.ContactWithObject(characters[0])
		if contact.X() != 0 {
			if dx > 0 {
				dx = -cfg.Physics.PushbackSpeed * dt
			} else {
				dx = cfg.Physics.PushbackSpeed * dt
			}
		} else {
			dx = contact.X()
		}
	}

	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dt float64) {
	physics.OnGround = nil
	dy := clampStep(physics.SpeedY * dt)

	checkDistance := dy
	if dy >= 0 {
		// Look one pixel further down so standing still keeps contact.
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = resolveCeiling(physics, check, dy)
	} else {
		dy = resolveFloor(physics, object, check, dy)
	}

	object.Y += dy
}

func resolveCeiling(physics *components.PhysicsData, check *resolv.Collision, dy float64) float64 {
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}
	return dy
}

func resolveFloor(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	// One-way platforms only catch a falling body whose feet are still
	// above the surface.
	if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
		platform := platforms[0]
		if physics.SpeedY >= 0 && object.Bottom() < platform.Y+4 {
			physics.OnGround = platform
			physics.SpeedY = 0
			return check.ContactWithObject(platform).Y()
		}
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		if physics.SpeedY >= 0 {
			physics.OnGround = solids[0]
			physics.SpeedY = 0
			return check.ContactWithObject(solids[0]).Y()
		}
	}

	return dy
}

func solidBlocksMovement(object *resolv.Object, check *resolv.Collision) bool {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if object.Bottom() > solid.Y && object.Y < solid.Y+solid.H {
			return true
		}
	}
	return false
}

func clampStep(d float64) float64 {
	return math.Max(math.Min(d, maxStepDistance), -maxStepDistance)
}

func touchingDeadZone(obj *resolv.Object) bool {
	return obj.Check(0, 0, tags.ResolvDeadZone) != nil
}

// handlePlayerDeadZone charges the pit toll and puts the player back on
// the last ground they stood on. Pits bypass the invincibility window;
// if the toll exhausts the health bar the death sequence plays out at
// the respawn point.
func handlePlayerDeadZone(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.IsDead {
		return
	}

	hp := components.Health.Get(entry)
	hp.Current -= cfg.Player.PitDamage

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil

	obj := components.Object.Get(entry).Object
	obj.X = player.LastSafeX
	obj.Y = player.LastSafeY
	obj.Update()

	player.InvulnTimer.Set(cfg.Player.InvincibilityTime)
	TriggerDamageFlash(entry)
	TriggerScreenShake(e, cfg.ScreenShake.Heavy.Intensity, cfg.ScreenShake.Heavy.Duration)
	PlaySFX(e, SoundHit)

	events.PlayerDamagedEvent.Publish(e.World, events.PlayerDamaged{
		Health: hp.Current,
		Max:    hp.Max,
	})
}
