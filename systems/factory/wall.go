package factory

import (
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return wall
}

// CreatePlatform creates a one-way platform: solid only from above.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return platform
}

// CreateFloatingPlatform creates a one-way platform that bobs up and down on
// a looping tween sequence.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-48), 2, ease.InOutSine),
		gween.New(float32(y-48), float32(y), 2, ease.InOutSine),
	)
	components.Tween.SetValue(platform, components.TweenData{
		Sequence: tw,
		OriginY:  y,
	})

	addToSpace(ecs, obj)
	return platform
}

func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.Wall.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return zone
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
