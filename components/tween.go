package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platforms: a looping sequence for the platform's
// vertical position, purely positional and outside the combat simulation.
type TweenData struct {
	Sequence *gween.Sequence
	OriginY  float64
}

var Tween = donburi.NewComponentType[TweenData]()
