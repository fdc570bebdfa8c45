package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowmoor/duskfang/components"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// DrawHUD renders the health bar and coin counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	if ledger := currentLedger(e); ledger != nil {
		text := fmt.Sprintf("Coins: %d  Kills: %d", ledger.Coins, ledger.Kills)
		ebitenutil.DebugPrintAt(screen, text, hudMargin, hudMargin+hudBarHeight+4)
	}
}
