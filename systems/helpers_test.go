package systems

import (
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/leveldata"
	"github.com/hollowmoor/duskfang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a headless world with a collision space and a level
// resource sized to the given dimensions.
func newTestECS(width, height int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, width, height, 16, 16)

	levelEntry := archetypes.Level.Spawn(e)
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: &leveldata.Level{Width: width, Height: height},
	})
	return e
}

// stepWorld advances one fixed tick through the gameplay systems in scene
// order, without input polling, audio or rendering.
func stepWorld(e *ecs.ECS) {
	UpdateEnemies(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateObjects(e)
	UpdateShots(e)
	UpdateBoomerang(e)
	UpdateCombat(e)
	UpdateDeaths(e)
	UpdateEffects(e)
	UpdateEvents(e)
	UpdateCamera(e)
}

// stepPlayerTicks drives the player controller plus the world for n ticks
// with a fixed input snapshot.
func stepPlayerTicks(e *ecs.ECS, playerEntry *donburi.Entry, in PlayerInput, n int) {
	for i := 0; i < n; i++ {
		StepPlayer(e, playerEntry, in, cfg.TickDelta)
		stepWorld(e)
	}
}

// groundAt drops a solid floor spanning the given rect.
func groundAt(e *ecs.ECS, x, y, w, h float64) {
	factory.CreateWall(e, x, y, w, h)
}
