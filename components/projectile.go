package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

// ShotData is the straight sub-weapon projectile: fixed velocity, no gravity,
// destroyed on first enemy or wall contact, lifetime expiry, or leaving the
// visible camera bounds.
type ShotData struct {
	Damage   int
	Lifetime gamemath.Cooldown
}

var Shot = donburi.NewComponentType[ShotData]()
