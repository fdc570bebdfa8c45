package archetypes

import (
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Sprite,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Sprite,
		components.Flash,
	)
	Shot = newArchetype(
		tags.Shot,
		components.Shot,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Boomerang = newArchetype(
		tags.Boomerang,
		components.Boomerang,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		components.Object,
		components.Tween,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.Zones,
	)
	Economy = newArchetype(
		components.Economy,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
