package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

// FlashData tracks a sprite tint flash (white on dealing damage, red on
// taking it). Purely cosmetic; the simulation never reads it.
type FlashData struct {
	Timer   gamemath.Cooldown
	R, G, B float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData lerps sprite scale back to normal for jump/land feel.
type SquashStretchData struct {
	ScaleX, ScaleY   float64
	TargetX, TargetY float64
	LerpSpeed        float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
