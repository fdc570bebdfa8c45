package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateBoomerang(e *ecs.ECS) {
	StepBoomerang(e, cfg.TickDelta)
}

// StepBoomerang advances every airborne boomerang by dt seconds. The
// weapon flies out to its range, turns around and homes on the owner's
// live position until caught.
func StepBoomerang(e *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry

	components.Boomerang.Each(e.World, func(entry *donburi.Entry) {
		b := components.Boomerang.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object
		sprite := components.Sprite.Get(entry)

		sprite.Rotation += cfg.Boomerang.SpinRate

		b.Lifetime.Tick(dt)
		if b.Lifetime.Done() {
			toRemove = append(toRemove, entry)
			return
		}

		switch b.State {
		case components.BoomerangOutbound:
			updateOutbound(b, physics, dt)
		case components.BoomerangInbound:
			if !updateInbound(b, physics, obj) {
				toRemove = append(toRemove, entry)
				return
			}
		}

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
		obj.Update()

		if caught := checkBoomerangCollisions(e, b, obj); caught {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		destroyBoomerang(e, entry)
	}
}

func updateOutbound(b *components.BoomerangData, physics *components.PhysicsData, dt float64) {
	speed := math.Sqrt(physics.SpeedX*physics.SpeedX + physics.SpeedY*physics.SpeedY)
	b.DistanceTraveled += speed * dt

	if b.DistanceTraveled >= b.MaxRange {
		switchToInbound(b)
	}
}

// updateInbound re-aims at the owner's current center every tick. Returns
// false when the owner is gone and the boomerang should despawn.
func updateInbound(b *components.BoomerangData, physics *components.PhysicsData, obj *resolv.Object) bool {
	if b.Owner == nil || !b.Owner.Valid() {
		return false
	}

	ownerObj := components.Object.Get(b.Owner).Object
	targetX := ownerObj.X + ownerObj.W/2
	targetY := ownerObj.Y + ownerObj.H/2
	currentX := obj.X + obj.W/2
	currentY := obj.Y + obj.H/2

	dx := targetX - currentX
	dy := targetY - currentY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 0.1 {
		physics.SpeedX = 0
		physics.SpeedY = 0
		return true
	}

	physics.SpeedX = dx / dist * cfg.Boomerang.ReturnSpeed
	physics.SpeedY = dy / dist * cfg.Boomerang.ReturnSpeed
	return true
}

// switchToInbound is idempotent; a tick where the weapon both reaches max
// range and clips a wall turns around exactly once.
func switchToInbound(b *components.BoomerangData) {
	if b.State == components.BoomerangInbound {
		return
	}
	b.State = components.BoomerangInbound
}

func checkBoomerangCollisions(e *ecs.ECS, b *components.BoomerangData, obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvEnemy, tags.ResolvPlayer)
	if check == nil {
		return false
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		switchToInbound(b)
	}

	for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
		hitEnemyWithBoomerang(e, b, obj, enemyObj)
	}

	// Catch: only an inbound boomerang near the owner's center returns to
	// the hand. Grazing the player on the way out does nothing.
	if b.State == components.BoomerangInbound && b.Owner != nil && b.Owner.Valid() {
		ownerObj := components.Object.Get(b.Owner).Object
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2
		if gamemath.Dist(cx, cy, ownerObj.X+ownerObj.W/2, ownerObj.Y+ownerObj.H/2) <= cfg.Boomerang.CatchRadius+ownerObj.W/2 {
			return true
		}
	}

	return false
}

func hitEnemyWithBoomerang(e *ecs.ECS, b *components.BoomerangData, obj *resolv.Object, enemyObj *resolv.Object) {
	enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
	if !ok || enemyEntry == nil || !enemyEntry.Valid() {
		return
	}
	if enemyEntry.HasComponent(components.Death) {
		return
	}
	if _, alreadyHit := b.HitEnemies[enemyEntry]; alreadyHit {
		return
	}
	b.HitEnemies[enemyEntry] = struct{}{}

	direction := 1.0
	if enemyObj.X+enemyObj.W/2 < obj.X+obj.W/2 {
		direction = -1.0
	}
	QueueDamage(enemyEntry, b.Damage,
		direction*cfg.Enemy.KnockbackX, cfg.Enemy.KnockbackY)
	TriggerHitFlash(enemyEntry)
	TriggerScreenShake(e, cfg.ScreenShake.Small.Intensity, cfg.ScreenShake.Small.Duration)
	PlaySFX(e, SoundHit)

	// A non-piercing boomerang turns around on its first victim.
	if !b.Pierce {
		switchToInbound(b)
	}
}

func destroyBoomerang(e *ecs.ECS, entry *donburi.Entry) {
	b := components.Boomerang.Get(entry)
	if b.Owner != nil && b.Owner.Valid() {
		owner := components.Player.Get(b.Owner)
		if owner.ActiveBoomerang == entry {
			owner.ActiveBoomerang = nil
		}
	}

	obj := components.Object.Get(entry).Object
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	e.World.Remove(entry.Entity())
}
