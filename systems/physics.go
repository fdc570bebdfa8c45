package systems

import (
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity for every entity carrying a Physics
// component. Entities with Gravity == 0 (sleeping bats, projectiles) pass
// through untouched.
func UpdatePhysics(e *ecs.ECS) {
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		StepPhysics(entry, cfg.TickDelta)
	})
}

func StepPhysics(entry *donburi.Entry, dt float64) {
	physics := components.Physics.Get(entry)
	if physics.Gravity == 0 {
		return
	}

	physics.SpeedY += physics.Gravity * dt
	if max := physics.MaxFallSpeed; max > 0 && physics.SpeedY > max {
		physics.SpeedY = max
	}
}
