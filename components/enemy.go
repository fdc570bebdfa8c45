package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyKind tags the behavior variant an enemy entity runs.
type EnemyKind int

const (
	EnemyWolf EnemyKind = iota
	EnemyBat
)

// EnemyData holds per-instance AI state for both archetypes. Tunables live in
// the config blocks; only spawn-derived and mutable state is stored here.
// Once the state machine reaches Die, no further AI or damage processing
// happens for the entity.
type EnemyData struct {
	Kind      EnemyKind
	Direction Vector
	Damage    int

	AttackCooldown gamemath.Cooldown
	HurtTimer      gamemath.Cooldown

	// Wolf: patrol anchor
	PatrolOriginX float64

	// Bat: home anchor, flight oscillation phase and captured swoop target
	HomeX, HomeY float64
	FlightClock  float64
	SwoopTargetX float64
	SwoopTargetY float64
	SwoopCooldown gamemath.Cooldown
}

var Enemy = donburi.NewComponentType[EnemyData]()
