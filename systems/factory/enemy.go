package factory

import (
	"image/color"

	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWolf spawns the ground archetype: patrols around its spawn point,
// chases and leaps at the player.
func CreateWolf(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Wolf.CollisionWidth, cfg.Wolf.CollisionHeight)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:          components.EnemyWolf,
		Direction:     components.Vector{X: cfg.DirectionLeft},
		Damage:        cfg.Wolf.Damage,
		PatrolOriginX: x,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Wolf.Gravity,
		MaxFallSpeed: cfg.Wolf.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Wolf.Health,
		Max:     cfg.Wolf.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Color: color.RGBA{R: 170, G: 120, B: 70, A: 255},
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	addToSpace(ecs, obj)
	return enemy
}

// CreateBat spawns the flying archetype: sleeps at its perch until the
// player comes close, then orbits and swoops. Gravity stays off until death.
func CreateBat(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Bat.CollisionWidth, cfg.Bat.CollisionHeight)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      components.EnemyBat,
		Direction: components.Vector{X: cfg.DirectionLeft},
		Damage:    cfg.Bat.Damage,
		HomeX:     x,
		HomeY:     y,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateSleeping,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      0, // gravity only applies after death
		MaxFallSpeed: cfg.Bat.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Bat.Health,
		Max:     cfg.Bat.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Color: color.RGBA{R: 130, G: 90, B: 160, A: 255},
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	addToSpace(ecs, obj)
	return enemy
}
