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

// CreateShot spawns the straight sub-weapon projectile at the given origin,
// travelling horizontally in the facing direction.
func CreateShot(ecs *ecs.ECS, x, y float64, facingRight bool) *donburi.Entry {
	shot := archetypes.Shot.Spawn(ecs)

	obj := resolv.NewObject(x-cfg.Shot.Width/2, y-cfg.Shot.Height/2, cfg.Shot.Width, cfg.Shot.Height, tags.ResolvShot)
	obj.Data = shot
	components.Object.SetValue(shot, components.ObjectData{Object: obj})

	speed := cfg.Shot.Speed
	if !facingRight {
		speed = -speed
	}
	components.Physics.SetValue(shot, components.PhysicsData{
		SpeedX: speed,
	})

	shotData := components.ShotData{Damage: cfg.Shot.Damage}
	shotData.Lifetime.Set(cfg.Shot.Lifetime)
	components.Shot.SetValue(shot, shotData)

	components.Sprite.SetValue(shot, components.SpriteData{
		Color: color.RGBA{R: 255, G: 230, B: 120, A: 255},
	})

	addToSpace(ecs, obj)
	return shot
}
