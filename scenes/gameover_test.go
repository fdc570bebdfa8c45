package scenes

import (
	"testing"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/economy"
)

type stubChanger struct {
	scene interface{}
}

func (s *stubChanger) ChangeScene(scene interface{}) {
	s.scene = scene
}

func TestGameOverRestartKeepsLedger(t *testing.T) {
	stub := &stubChanger{}
	ledger := economy.NewLedger()
	ledger.AddCoins(7)
	ledger.RecordDeath()

	gs := NewGameOverScene(stub, ledger)
	gs.restart()

	world, ok := stub.scene.(*WorldScene)
	if !ok {
		t.Fatalf("restart should hand over a world scene, got %T", stub.scene)
	}
	if world.ledger != ledger {
		t.Fatal("the fresh world must keep the run ledger")
	}
	if world.ledger.Coins != 7 {
		t.Fatalf("coins lost across restart: %d", world.ledger.Coins)
	}
}

func TestPlayerDeathHandsOffToGameOver(t *testing.T) {
	stub := &stubChanger{}
	ledger := economy.NewLedger()
	ws := NewWorldScene(stub, ledger)

	ws.Update() // builds the level

	playerEntry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		t.Fatal("world should spawn a player")
	}
	components.Health.Get(playerEntry).Current = 0

	deathTicks := int(cfg.Player.DeathTime/cfg.TickDelta) + 20
	for i := 0; i < deathTicks && stub.scene == nil; i++ {
		ws.Update()
	}

	if _, ok := stub.scene.(*GameOverScene); !ok {
		t.Fatalf("death should end in the game-over scene, got %T", stub.scene)
	}
	if ledger.Deaths != 1 {
		t.Fatalf("death not recorded, deaths = %d", ledger.Deaths)
	}
}
