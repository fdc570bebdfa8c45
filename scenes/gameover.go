package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/economy"
)

// GameOverScene shows the run tally after the player dies and waits for
// a restart press. The ledger carries over into the fresh world so coins
// earned before dying are not lost.
type GameOverScene struct {
	sceneChanger SceneChanger
	ledger       *economy.Ledger
}

func NewGameOverScene(sc SceneChanger, ledger *economy.Ledger) *GameOverScene {
	if ledger == nil {
		ledger = economy.NewLedger()
	}
	return &GameOverScene{sceneChanger: sc, ledger: ledger}
}

func (gs *GameOverScene) Update() {
	if gs.restartPressed() {
		gs.restart()
	}
}

func (gs *GameOverScene) restartPressed() bool {
	for _, action := range []cfg.ActionID{cfg.ActionJump, cfg.ActionReset} {
		for _, key := range cfg.Input.Bindings[action].Keys {
			if inpututil.IsKeyJustPressed(key) {
				return true
			}
		}
	}
	return false
}

// restart hands control back to a fresh world built around the same
// ledger.
func (gs *GameOverScene) restart() {
	if gs.sceneChanger == nil {
		return
	}
	gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.ledger))
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 8, B: 16, A: 255})

	cx := cfg.C.Width / 2
	cy := cfg.C.Height / 2

	ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-32, cy-32)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Coins: %d   Kills: %d   Deaths: %d",
			gs.ledger.Coins, gs.ledger.Kills, gs.ledger.Deaths),
		cx-96, cy-8)
	ebitenutil.DebugPrintAt(screen, "Press Jump to try again", cx-72, cy+16)
}
