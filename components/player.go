package components

import (
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector

	// Forgiving jump timing
	Coyote     gamemath.Cooldown // grace window after leaving ground
	JumpBuffer gamemath.Cooldown // early press queued until landing

	AttackTimer   gamemath.Cooldown
	InvulnTimer   gamemath.Cooldown
	ThrowCooldown gamemath.Cooldown

	// Enemies already struck during the current swing, so a single
	// attack window lands at most one hit per target.
	AttackHit map[*donburi.Entry]struct{}

	// Cosmetic invincibility flicker; gates nothing but rendering.
	FlickerClock float64
	Visible      bool

	IsDead bool

	// Grounded state from the previous tick, for landing detection.
	WasGrounded bool

	ActiveBoomerang *donburi.Entry

	// Last position where the player was safely grounded, for respawn.
	LastSafeX float64
	LastSafeY float64
}

// FacingRight reports the current facing.
func (p *PlayerData) FacingRight() bool {
	return p.Direction.X >= 0
}

// Attacking reports whether the attack window is open.
func (p *PlayerData) Attacking() bool {
	return p.AttackTimer.Active()
}

// Invincible reports whether damage intake is currently rejected.
func (p *PlayerData) Invincible() bool {
	return p.InvulnTimer.Active()
}

var Player = donburi.NewComponentType[PlayerData]()
