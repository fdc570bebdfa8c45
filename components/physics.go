package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData carries the velocity state integrated by the collision system.
// Speeds are in pixels per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // 0 disables gravity (shots, flying bats)
	MaxFallSpeed float64
	OnGround     *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
