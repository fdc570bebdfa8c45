package config

// StateID identifies a character or AI state.
type StateID int

const (
	StateNone StateID = iota

	// Player states
	Idle
	Running
	Jump
	StateAttacking
	Stunned
	Die

	// Wolf states
	StatePatrol
	StateChase
	StateLeap
	Hit

	// Bat states
	StateSleeping
	StateFlying
	StateSwooping
)

// String names for debug overlays and logs.
var stateNames = map[StateID]string{
	StateNone:      "none",
	Idle:           "idle",
	Running:        "running",
	Jump:           "jump",
	StateAttacking: "attacking",
	Stunned:        "stunned",
	Die:            "die",
	StatePatrol:    "patrol",
	StateChase:     "chase",
	StateLeap:      "leap",
	Hit:            "hit",
	StateSleeping:  "sleeping",
	StateFlying:    "flying",
	StateSwooping:  "swooping",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
