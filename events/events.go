// Package events declares the gameplay notifications the simulation core
// publishes outward. UI and audio subscribe; the core never depends on who
// listens. Events are queued on publish and drained once per tick.
package events

import "github.com/yohamta/donburi/features/events"

type PlayerDamaged struct {
	Health int
	Max    int
}

type PlayerHealed struct {
	Health int
	Max    int
}

type PlayerDied struct{}

type CoinCollected struct {
	Total int
}

type ProjectileThrown struct {
	X, Y        float64
	FacingRight bool
}

type EnemyKilled struct {
	X, Y  float64
	Coins int
}

var (
	PlayerDamagedEvent    = events.NewEventType[PlayerDamaged]()
	PlayerHealedEvent     = events.NewEventType[PlayerHealed]()
	PlayerDiedEvent       = events.NewEventType[PlayerDied]()
	CoinCollectedEvent    = events.NewEventType[CoinCollected]()
	ProjectileThrownEvent = events.NewEventType[ProjectileThrown]()
	EnemyKilledEvent      = events.NewEventType[EnemyKilled]()
)
