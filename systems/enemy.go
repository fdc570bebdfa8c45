package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(e *ecs.ECS) {
	StepEnemies(e, cfg.TickDelta)
}

// StepEnemies runs every living enemy's state machine against the
// player's post-resolution position.
func StepEnemies(e *ecs.ECS, dt float64) {
	var playerObject *resolv.Object
	playerDead := true
	if playerEntry, ok := components.Player.First(e.World); ok {
		playerObject = components.Object.Get(playerEntry).Object
		playerDead = components.Player.Get(playerEntry).IsDead
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}

		enemy := components.Enemy.Get(entry)
		physics := components.Physics.Get(entry)
		state := components.State.Get(entry)
		obj := components.Object.Get(entry).Object

		state.StateTimer += dt
		enemy.AttackCooldown.Tick(dt)
		enemy.HurtTimer.Tick(dt)
		enemy.SwoopCooldown.Tick(dt)

		// A dead player no longer attracts anyone.
		target := playerObject
		if playerDead {
			target = nil
		}

		switch enemy.Kind {
		case components.EnemyWolf:
			stepWolf(enemy, physics, state, obj, target, dt)
		case components.EnemyBat:
			stepBat(enemy, physics, state, obj, target, dt)
		}
	})
}

// centerDist returns the distance between two object centers, or a huge
// value when the target is absent so range checks all fail.
func centerDist(a, b *resolv.Object) float64 {
	if b == nil {
		return 1e9
	}
	ax := a.X + a.W/2
	ay := a.Y + a.H/2
	bx := b.X + b.W/2
	by := b.Y + b.H/2
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}
