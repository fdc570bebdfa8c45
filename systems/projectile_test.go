package systems

import (
	"testing"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/systems/factory"
)

func TestShotDamagesEnemyAndDespawns(t *testing.T) {
	e := newTestECS(2000, 600)
	groundAt(e, 0, 500, 2000, 20)

	wolfEntry := factory.CreateWolf(e, 300, 482)
	health := components.Health.Get(wolfEntry)
	start := health.Current

	shotEntry := factory.CreateShot(e, 100, 491, true)

	hit := false
	for i := 0; i < 120; i++ {
		StepShots(e, cfg.TickDelta)
		UpdateCombat(e)
		if !shotEntry.Valid() {
			hit = true
			break
		}
	}

	if !hit {
		t.Fatal("shot never impacted the enemy")
	}
	if got := start - health.Current; got != cfg.Shot.Damage {
		t.Fatalf("enemy lost %d health, want %d", got, cfg.Shot.Damage)
	}
}

func TestShotStopsOnWall(t *testing.T) {
	e := newTestECS(2000, 600)
	groundAt(e, 300, 0, 20, 600)

	shotEntry := factory.CreateShot(e, 100, 200, true)

	for i := 0; i < 120; i++ {
		StepShots(e, cfg.TickDelta)
		if !shotEntry.Valid() {
			return
		}
	}
	t.Fatal("shot should be destroyed by the wall")
}

func TestShotExpiresByLifetime(t *testing.T) {
	e := newTestECS(20000, 600)

	shotEntry := factory.CreateShot(e, 100, 200, true)

	ticks := int(cfg.Shot.Lifetime/cfg.TickDelta) + 2
	for i := 0; i < ticks; i++ {
		StepShots(e, cfg.TickDelta)
	}
	if shotEntry.Valid() {
		t.Fatal("shot should expire after its lifetime")
	}
}

func TestShotDespawnsOutsideLevel(t *testing.T) {
	e := newTestECS(400, 600)

	shotEntry := factory.CreateShot(e, 380, 200, true)

	gone := false
	for i := 0; i < 120; i++ {
		StepShots(e, cfg.TickDelta)
		if !shotEntry.Valid() {
			gone = true
			break
		}
	}
	if !gone {
		t.Fatal("shot should despawn past the level bounds")
	}
}

func TestShotDespawnsOutsideCameraView(t *testing.T) {
	e := newTestECS(4000, 600)

	camEntry := factory.CreateCamera(e, nil)
	camera := components.Camera.Get(camEntry)
	camera.Position.X = 2000
	camera.Position.Y = 300

	// Fired far behind the camera but well inside the level.
	shotEntry := factory.CreateShot(e, 800, 300, false)

	StepShots(e, cfg.TickDelta)

	if shotEntry.Valid() {
		t.Fatal("shot outside the camera view should despawn even inside level bounds")
	}
}
