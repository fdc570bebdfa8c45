package systems

import (
	"testing"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/systems/factory"
)

func TestBatSleepsOutOfRange(t *testing.T) {
	e := newTestECS(2000, 360)
	groundAt(e, 0, 100, 2000, 20)

	batEntry := factory.CreateBat(e, 300, 20)
	factory.CreatePlayer(e, 300+cfg.Bat.WakeRange+60, 78)

	state := components.State.Get(batEntry)
	physics := components.Physics.Get(batEntry)

	for i := 0; i < 10; i++ {
		StepEnemies(e, cfg.TickDelta)
	}
	if state.CurrentState != cfg.StateSleeping {
		t.Fatalf("bat woke with player out of range, state=%v", state.CurrentState)
	}
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Fatalf("sleeping bat should not move, v=(%f,%f)", physics.SpeedX, physics.SpeedY)
	}
}

func TestBatWakesWithStartle(t *testing.T) {
	e := newTestECS(2000, 360)
	groundAt(e, 0, 100, 2000, 20)

	batEntry := factory.CreateBat(e, 300, 20)
	factory.CreatePlayer(e, 310, 78)

	state := components.State.Get(batEntry)
	physics := components.Physics.Get(batEntry)

	StepEnemies(e, cfg.TickDelta)

	if state.CurrentState != cfg.StateFlying {
		t.Fatalf("bat should wake inside wake range, state=%v", state.CurrentState)
	}
	if physics.SpeedY != cfg.Bat.StartleImpulse {
		t.Fatalf("wake should pop the bat upward, vy=%f", physics.SpeedY)
	}
}

// A swoop dives at where the player was at commit time, not where the
// player is now.
func TestBatSwoopTargetDoesNotTrack(t *testing.T) {
	e := newTestECS(2000, 360)
	groundAt(e, 0, 100, 2000, 20)

	batEntry := factory.CreateBat(e, 300, 20)
	playerEntry := factory.CreatePlayer(e, 310, 78)

	bat := components.Enemy.Get(batEntry)
	state := components.State.Get(batEntry)
	playerObj := components.Object.Get(playerEntry).Object

	// Wake, then commit to a swoop on the next tick.
	StepEnemies(e, cfg.TickDelta)
	StepEnemies(e, cfg.TickDelta)
	if state.CurrentState != cfg.StateSwooping {
		t.Fatalf("expected swoop commit, state=%v", state.CurrentState)
	}

	wantX, wantY := bat.SwoopTargetX, bat.SwoopTargetY
	playerObj.X += 150
	for i := 0; i < 5; i++ {
		StepEnemies(e, cfg.TickDelta)
	}
	if bat.SwoopTargetX != wantX || bat.SwoopTargetY != wantY {
		t.Fatalf("swoop target moved: got (%f,%f) want (%f,%f)",
			bat.SwoopTargetX, bat.SwoopTargetY, wantX, wantY)
	}
	if state.CurrentState != cfg.StateSwooping {
		t.Fatalf("swoop should persist until arrival, state=%v", state.CurrentState)
	}
}

func TestBatPullsUpAndCoolsDownAfterSwoop(t *testing.T) {
	e := newTestECS(2000, 360)
	groundAt(e, 0, 100, 2000, 20)

	batEntry := factory.CreateBat(e, 300, 20)
	playerEntry := factory.CreatePlayer(e, 310, 78)

	bat := components.Enemy.Get(batEntry)
	state := components.State.Get(batEntry)

	// Commit the swoop, then move the player clear so the dive path to
	// the captured point is unobstructed.
	StepEnemies(e, cfg.TickDelta)
	StepEnemies(e, cfg.TickDelta)
	if state.CurrentState != cfg.StateSwooping {
		t.Fatalf("expected swoop commit, state=%v", state.CurrentState)
	}
	components.Object.Get(playerEntry).Object.X += 400

	recovered := false
	for i := 0; i < 300; i++ {
		stepWorld(e)
		if state.CurrentState == cfg.StateFlying && bat.SwoopCooldown.Active() {
			recovered = true
			break
		}
	}
	if !recovered {
		t.Fatalf("swoop never completed, state=%v", state.CurrentState)
	}

	// A fresh swoop is gated until the cooldown runs out even with the
	// player back in range.
	batObj := components.Object.Get(batEntry).Object
	components.Object.Get(playerEntry).Object.X = batObj.X + 40
	for i := 0; i < 5; i++ {
		StepEnemies(e, cfg.TickDelta)
		if state.CurrentState == cfg.StateSwooping {
			t.Fatal("swoop retriggered while cooling down")
		}
	}
}

func TestBatHurtRecoversToFlying(t *testing.T) {
	e := newTestECS(2000, 360)
	groundAt(e, 0, 100, 2000, 20)

	batEntry := factory.CreateBat(e, 300, 20)
	state := components.State.Get(batEntry)
	state.Enter(cfg.StateFlying)

	QueueDamage(batEntry, 5, -80, -40)
	UpdateCombat(e)
	if state.CurrentState != cfg.Hit {
		t.Fatalf("expected hitstun, got %v", state.CurrentState)
	}

	hurtTicks := int(cfg.Bat.HurtTime/cfg.TickDelta) + 2
	for i := 0; i < hurtTicks; i++ {
		StepEnemies(e, cfg.TickDelta)
	}
	if state.CurrentState != cfg.StateFlying {
		t.Fatalf("bat should resume flying after hitstun, got %v", state.CurrentState)
	}
}
