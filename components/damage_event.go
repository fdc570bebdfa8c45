package components

import "github.com/yohamta/donburi"

// DamageEventData queues damage against an entity with Health. It is consumed
// (and removed) by the combat system, which applies invincibility rules,
// knockback and death handling.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
