package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity in its death sequence. The timer counts down the
// fixed exit animation; when it expires the entity is removed (or, for the
// player, the level reset kicks in).
type DeathData struct {
	Timer gamemath.Cooldown

	// Announced is set once the terminal event has been published, so a
	// player corpse sitting through the scene reset fires it only once.
	Announced bool
}

var Death = donburi.NewComponentType[DeathData]()
