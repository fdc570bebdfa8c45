package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionThrow
	ActionReset
	ActionCount // Must be last - used for array sizing
)

// InputBinding holds the candidate keys for an action. Any bound key counts;
// actions support multiple simultaneous bindings.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
			},
			ActionThrow: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyK},
			},
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
	}
}
