package components

import (
	"github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
}

// Enter switches to a new state and restarts the state clock.
func (s *StateData) Enter(next config.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
