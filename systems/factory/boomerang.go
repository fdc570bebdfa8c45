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

// CreateBoomerang spawns a returning weapon owned by the given player. The
// owner reference is read-only and used for inbound homing and the catch.
func CreateBoomerang(ecs *ecs.ECS, owner *donburi.Entry, x, y float64, facingRight bool) *donburi.Entry {
	b := archetypes.Boomerang.Spawn(ecs)

	obj := resolv.NewObject(x-cfg.Boomerang.Width/2, y-cfg.Boomerang.Height/2, cfg.Boomerang.Width, cfg.Boomerang.Height, tags.ResolvBoomerang)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})

	speed := cfg.Boomerang.ThrowSpeed
	if !facingRight {
		speed = -speed
	}
	components.Physics.SetValue(b, components.PhysicsData{
		SpeedX: speed,
	})

	data := components.BoomerangData{
		Owner:      owner,
		State:      components.BoomerangOutbound,
		MaxRange:   cfg.Boomerang.RangeUnits * cfg.Boomerang.ReferenceUnit,
		HitEnemies: make(map[*donburi.Entry]struct{}),
		Damage:     cfg.Boomerang.Damage,
	}
	data.Lifetime.Set(cfg.Boomerang.Lifetime)
	components.Boomerang.SetValue(b, data)

	components.Sprite.SetValue(b, components.SpriteData{
		Color: color.RGBA{R: 120, G: 255, B: 160, A: 255},
	})

	if owner.HasComponent(components.Player) {
		components.Player.Get(owner).ActiveBoomerang = b
	}

	addToSpace(ecs, obj)
	return b
}
