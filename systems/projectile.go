package systems

import (
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// offscreenMargin is how far past the visible edge a shot may travel
// before it is reclaimed.
const offscreenMargin = 100.0

// UpdateShots moves straight sub-weapon projectiles, expires them and
// resolves their impacts. Shots ignore gravity and the shared collision
// system; they move in a straight line until something stops them.
func UpdateShots(e *ecs.ECS) {
	StepShots(e, cfg.TickDelta)
}

func StepShots(e *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry

	var levelWidth, levelHeight float64
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		levelWidth = float64(level.Width)
		levelHeight = float64(level.Height)
	}

	components.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		shot.Lifetime.Tick(dt)
		if shot.Lifetime.Done() {
			toRemove = append(toRemove, entry)
			return
		}

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
		obj.Update()

		if shotOutOfView(e, obj, levelWidth, levelHeight) {
			toRemove = append(toRemove, entry)
			return
		}

		if shotImpacted(e, shot, obj) {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		destroyShot(e, entry)
	}
}

// shotOutOfView reports whether a shot has left the visible screen area.
// The bound follows the camera view at its current zoom; worlds without a
// camera fall back to the level bounds.
func shotOutOfView(e *ecs.ECS, obj *resolv.Object, levelWidth, levelHeight float64) bool {
	if camEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(camEntry)
		zoom := camera.Zoom
		if zoom <= 0 {
			zoom = cfg.Camera.DefaultZoom
		}
		halfW := float64(cfg.C.Width)/2/zoom + offscreenMargin
		halfH := float64(cfg.C.Height)/2/zoom + offscreenMargin
		return obj.X+obj.W < camera.Position.X-halfW ||
			obj.X > camera.Position.X+halfW ||
			obj.Y+obj.H < camera.Position.Y-halfH ||
			obj.Y > camera.Position.Y+halfH
	}

	if levelWidth <= 0 {
		return false
	}
	return obj.X < -offscreenMargin || obj.X > levelWidth+offscreenMargin ||
		obj.Y < -offscreenMargin || obj.Y > levelHeight+offscreenMargin
}

func shotImpacted(e *ecs.ECS, shot *components.ShotData, obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvEnemy)
	if check == nil {
		return false
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		return true
	}

	for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || enemyEntry == nil || !enemyEntry.Valid() {
			continue
		}
		if enemyEntry.HasComponent(components.Death) {
			continue
		}

		direction := 1.0
		if enemyObj.X+enemyObj.W/2 < obj.X+obj.W/2 {
			direction = -1.0
		}
		QueueDamage(enemyEntry, shot.Damage,
			direction*cfg.Enemy.KnockbackX, cfg.Enemy.KnockbackY)
		PlaySFX(e, SoundHit)
		return true
	}

	return false
}

func destroyShot(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	e.World.Remove(entry.Entity())
}
