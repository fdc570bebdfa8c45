package systems

import (
	"testing"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/systems/factory"
)

func TestPlayerLandsOnPlatformFromAbove(t *testing.T) {
	e := newTestECS(640, 600)
	factory.CreatePlatform(e, 0, 300, 640, 8)

	playerEntry := factory.CreatePlayer(e, 100, 240)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	for i := 0; i < 120; i++ {
		stepWorld(e)
		if physics.OnGround != nil {
			break
		}
	}

	if physics.OnGround == nil {
		t.Fatal("player fell through a one-way platform")
	}
	if got := obj.Bottom(); got > 300+1 {
		t.Fatalf("player rests at %f, platform surface is 300", got)
	}
}

func TestPlayerJumpsThroughPlatformFromBelow(t *testing.T) {
	e := newTestECS(640, 600)
	factory.CreatePlatform(e, 0, 360, 640, 8)
	groundAt(e, 0, 400, 640, 20)

	playerEntry := factory.CreatePlayer(e, 100, 378)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	// Settle on the floor under the platform, then jump up through it.
	stepPlayerTicks(e, playerEntry, PlayerInput{}, 5)
	stepPlayerTicks(e, playerEntry, PlayerInput{Jump: components.ActionState{Pressed: true, JustPressed: true}}, 1)

	roseAbove := false
	for i := 0; i < 60; i++ {
		stepPlayerTicks(e, playerEntry, PlayerInput{}, 1)
		if obj.Bottom() < 360 {
			roseAbove = true
			break
		}
	}
	if !roseAbove {
		t.Fatal("rising player should pass through the platform from below")
	}

	// The same platform catches the fall back down.
	for i := 0; i < 120; i++ {
		stepPlayerTicks(e, playerEntry, PlayerInput{}, 1)
		if physics.OnGround != nil {
			break
		}
	}
	if physics.OnGround == nil {
		t.Fatal("player never landed back on the platform")
	}
	if got := obj.Bottom(); got > 360+1 {
		t.Fatalf("player rests at %f, platform surface is 360", got)
	}
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 0, 400, 640, 20)
	groundAt(e, 200, 300, 20, 100) // wall on the floor

	playerEntry := factory.CreatePlayer(e, 100, 378)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	right := PlayerInput{Right: components.ActionState{Pressed: true}}
	stepPlayerTicks(e, playerEntry, right, 180)

	if got := obj.X + obj.W; got > 200 {
		t.Fatalf("player clipped into the wall, right edge at %f", got)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("blocked player should lose horizontal speed, vx=%f", physics.SpeedX)
	}
}

func TestPitRespawnsAtLastSafeGround(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 60, 400, 120, 20)
	factory.CreateDeadZone(e, 0, 560, 640, 40)

	playerEntry := factory.CreatePlayer(e, 100, 378)
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	// Stand on the floor long enough for the safe-ground tracker to
	// record it, then walk off the edge over the pit.
	stepPlayerTicks(e, playerEntry, PlayerInput{}, 10)
	safeX, safeY := player.LastSafeX, player.LastSafeY

	obj.X, obj.Y = 400, 100
	obj.Update()
	start := health.Current

	for i := 0; i < 300; i++ {
		stepWorld(e)
		if health.Current < start {
			break
		}
	}

	if got, want := health.Current, start-cfg.Player.PitDamage; got != want {
		t.Fatalf("pit toll: health = %d, want %d", got, want)
	}
	if player.IsDead {
		t.Fatal("a single pit fall should not kill a healthy player")
	}
	if obj.X != safeX || obj.Y != safeY {
		t.Fatalf("respawned at (%.1f, %.1f), want last safe ground (%.1f, %.1f)",
			obj.X, obj.Y, safeX, safeY)
	}
	if !player.Invincible() {
		t.Fatal("pit respawn should open the invincibility window")
	}
}

func TestPitKillsWhenTollExhaustsHealth(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 60, 400, 120, 20)
	factory.CreateDeadZone(e, 0, 560, 640, 40)

	playerEntry := factory.CreatePlayer(e, 100, 378)
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	stepPlayerTicks(e, playerEntry, PlayerInput{}, 10)
	health.Current = cfg.Player.PitDamage

	obj.X, obj.Y = 400, 100
	obj.Update()

	for i := 0; i < 300; i++ {
		stepWorld(e)
		if player.IsDead {
			break
		}
	}

	if !player.IsDead {
		t.Fatal("pit toll on an exhausted health bar should start the death sequence")
	}
	if health.Current != 0 {
		t.Fatalf("health should clamp at zero, got %d", health.Current)
	}
	if obj.X != player.LastSafeX {
		t.Fatalf("death should play out at the respawn point, got x=%.1f want %.1f",
			obj.X, player.LastSafeX)
	}
}

func TestDeadZoneKillsEnemy(t *testing.T) {
	e := newTestECS(640, 600)
	factory.CreateDeadZone(e, 0, 560, 640, 40)

	wolfEntry := factory.CreateWolf(e, 300, 100)
	health := components.Health.Get(wolfEntry)

	died := false
	for i := 0; i < 300; i++ {
		stepWorld(e)
		if !wolfEntry.Valid() {
			died = true
			break
		}
		if health.Current <= 0 {
			died = true
		}
	}
	if !died {
		t.Fatal("enemy falling into a pit should die")
	}
}

func TestMaxStepDistanceCapsTunneling(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 0, 400, 640, 4) // thin floor

	playerEntry := factory.CreatePlayer(e, 100, 100)
	physics := components.Physics.Get(playerEntry)

	// Even at terminal velocity with a huge hitch, one step never exceeds
	// the clamp, so the thin floor still catches the body.
	physics.SpeedY = cfg.Player.MaxFallSpeed
	for i := 0; i < 300; i++ {
		StepCollisions(e, 0.25) // simulated long frame
		if physics.OnGround != nil {
			break
		}
	}
	if physics.OnGround == nil {
		t.Fatal("clamped step should prevent tunneling through a thin floor")
	}
}
