package leveldata

import (
	"testing"

	"github.com/hollowmoor/duskfang/levels"
)

func TestLoadShippedLevel(t *testing.T) {
	level, err := Load(levels.FS, levels.Paths[0])
	if err != nil {
		t.Fatalf("load shipped level: %v", err)
	}

	if level.Width != 80*32 || level.Height != 23*32 {
		t.Fatalf("level is %dx%d px, want 2560x736", level.Width, level.Height)
	}

	if len(level.Walls) == 0 {
		t.Fatal("level has no walls")
	}
	if len(level.Platforms) == 0 {
		t.Fatal("level has no one-way platforms")
	}
	if len(level.FloatingPlatforms) == 0 {
		t.Fatal("level has no floating platforms")
	}
	if len(level.DeadZones) == 0 {
		t.Fatal("level has no dead zones")
	}
	if len(level.Coins) == 0 {
		t.Fatal("level has no coins")
	}

	if level.PlayerSpawn.X != 96 || level.PlayerSpawn.Y != 640 {
		t.Fatalf("player spawn at (%f,%f), want (96,640)", level.PlayerSpawn.X, level.PlayerSpawn.Y)
	}
}

func TestLoadEnemyKinds(t *testing.T) {
	level, err := Load(levels.FS, levels.Paths[0])
	if err != nil {
		t.Fatalf("load shipped level: %v", err)
	}

	kinds := map[string]int{}
	for _, s := range level.Enemies {
		kinds[s.Kind]++
	}
	if kinds["wolf"] == 0 {
		t.Fatal("level should place at least one wolf")
	}
	if kinds["bat"] == 0 {
		t.Fatal("level should place at least one bat")
	}
}

func TestLoadCameraZones(t *testing.T) {
	level, err := Load(levels.FS, levels.Paths[0])
	if err != nil {
		t.Fatalf("load shipped level: %v", err)
	}

	byName := map[string]ZoneDef{}
	for _, z := range level.Zones {
		byName[z.Name] = z
	}

	arena, ok := byName["arena"]
	if !ok {
		t.Fatal("arena zone missing")
	}
	if arena.Zoom != 0.75 || arena.Priority != 2 || arena.OneShot {
		t.Fatalf("arena zone mismatch: %+v", arena)
	}

	intro, ok := byName["arena-intro"]
	if !ok {
		t.Fatal("arena-intro zone missing")
	}
	if !intro.OneShot || intro.Priority != 5 {
		t.Fatalf("arena-intro should be a high-priority one-shot: %+v", intro)
	}

	closeup, ok := byName["pit-closeup"]
	if !ok {
		t.Fatal("pit-closeup zone missing")
	}
	if closeup.Zoom != 1.4 {
		t.Fatalf("pit-closeup zoom = %f, want 1.4", closeup.Zoom)
	}
}
