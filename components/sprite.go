package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is the minimal render description: a flat color quad with an
// optional rotation (boomerang spin). The render layer reads it; nothing in
// the simulation depends on it.
type SpriteData struct {
	Color    color.RGBA
	Rotation float64
	Hidden   bool // invincibility flicker toggles this
}

var Sprite = donburi.NewComponentType[SpriteData]()
