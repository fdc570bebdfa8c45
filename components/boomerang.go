package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

type BoomerangState int

const (
	BoomerangOutbound BoomerangState = iota
	BoomerangInbound
)

type BoomerangData struct {
	Owner            *donburi.Entry // read-only, for return homing
	State            BoomerangState
	DistanceTraveled float64
	MaxRange         float64
	Pierce           bool // pass through enemies while outbound
	HitEnemies       map[*donburi.Entry]struct{}
	Damage           int
	Lifetime         gamemath.Cooldown
}

var Boomerang = donburi.NewComponentType[BoomerangData]()
