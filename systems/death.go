package systems

import (
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDeaths(e *ecs.ECS) {
	StepDeaths(e, cfg.TickDelta)
}

// StepDeaths winds down exit animations. Enemies are removed when theirs
// finishes; the player stays in the world and the terminal event tells
// the scene to reset.
func StepDeaths(e *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry

	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		if death.Announced {
			return
		}

		death.Timer.Tick(dt)
		if !death.Timer.Done() {
			return
		}

		if entry.HasComponent(tags.Player) {
			death.Announced = true
			events.PlayerDiedEvent.Publish(e.World, events.PlayerDied{})
			return
		}
		toRemove = append(toRemove, entry)
	})

	for _, entry := range toRemove {
		obj := components.Object.Get(entry).Object
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj)
		}
		e.World.Remove(entry.Entity())
	}
}
