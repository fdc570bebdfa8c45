package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/economy"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/systems"
	"github.com/hollowmoor/duskfang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the playable level: simulation systems in fixed order,
// event subscribers for weapon spawning and the game-over handoff. Without
// a scene changer attached, death falls back to an in-place level reset.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ledger       *economy.Ledger
	levelIndex   int
	resetPending bool
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, ledger *economy.Ledger) *WorldScene {
	if ledger == nil {
		ledger = economy.NewLedger()
	}
	return &WorldScene{sceneChanger: sc, ledger: ledger}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.resetRequested() {
		ws.reset()
	}
}

func (ws *WorldScene) resetRequested() bool {
	if ws.resetPending {
		return true
	}
	if inputEntry, ok := components.Input.First(ws.ecs.World); ok {
		input := components.Input.Get(inputEntry)
		return input.Action(cfg.ActionReset).JustPressed
	}
	return false
}

// reset rebuilds the level from scratch. The ledger survives; everything
// else is respawned from the authored level data.
func (ws *WorldScene) reset() {
	ws.resetPending = false
	_ = systems.SaveLedger(ws.ledger)
	ws.ecs = nil
	ws.once = sync.Once{}
	ws.once.Do(ws.configure)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Fixed system order: input feeds the controller, physics runs before
	// collision so resolution sees fresh velocities, combat before death,
	// camera last against final positions.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateShots)
	e.AddSystem(systems.UpdateBoomerang)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateEvents)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e
	ws.subscribe(e)

	levelEntry, err := factory.CreateLevelAtIndex(e, ws.levelIndex)
	if err != nil {
		log.Printf("level load failed: %v", err)
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	factory.CreateSpace(e, level.Width, level.Height, 16, 16)
	factory.CreateEconomy(e, ws.ledger)
	factory.CreateCamera(e, level.Zones)

	for _, wall := range level.Walls {
		factory.CreateWall(e, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, p := range level.Platforms {
		factory.CreatePlatform(e, p.X, p.Y, p.W, p.H)
	}
	for _, p := range level.FloatingPlatforms {
		factory.CreateFloatingPlatform(e, p.X, p.Y, p.W, p.H)
	}
	for _, dz := range level.DeadZones {
		factory.CreateDeadZone(e, dz.X, dz.Y, dz.W, dz.H)
	}
	for _, c := range level.Coins {
		factory.CreateCoin(e, c.X, c.Y)
	}
	for _, spawn := range level.Enemies {
		switch spawn.Kind {
		case "bat":
			factory.CreateBat(e, spawn.X, spawn.Y)
		default:
			factory.CreateWolf(e, spawn.X, spawn.Y)
		}
	}

	factory.CreatePlayer(e, level.PlayerSpawn.X, level.PlayerSpawn.Y)
}

// subscribe wires the event bus consumers for this world. The simulation
// publishes; everything here is an outer-layer reaction.
func (ws *WorldScene) subscribe(e *ecs.ECS) {
	events.ProjectileThrownEvent.Subscribe(e.World, func(w donburi.World, ev events.ProjectileThrown) {
		ws.spawnThrownWeapon(ev)
	})
	events.PlayerDiedEvent.Subscribe(e.World, func(w donburi.World, ev events.PlayerDied) {
		_ = systems.SaveLedger(ws.ledger)
		if ws.sceneChanger != nil {
			ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.ledger))
			return
		}
		ws.resetPending = true
	})
	events.CoinCollectedEvent.Subscribe(e.World, func(w donburi.World, ev events.CoinCollected) {
		_ = systems.SaveLedger(ws.ledger)
	})
}

// spawnThrownWeapon decides what a throw produces: the boomerang when the
// hand is free, a straight shot while it is still in flight.
func (ws *WorldScene) spawnThrownWeapon(ev events.ProjectileThrown) {
	playerEntry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	if player.ActiveBoomerang == nil {
		factory.CreateBoomerang(ws.ecs, playerEntry, ev.X, ev.Y, ev.FacingRight)
	} else {
		factory.CreateShot(ws.ecs, ev.X, ev.Y, ev.FacingRight)
	}
	systems.PlaySFX(ws.ecs, systems.SoundThrow)
}
