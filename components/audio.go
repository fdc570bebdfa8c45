package components

import (
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues raised during a frame. The audio system
// drains the queue at the end of the update, so gameplay code never
// touches the mixer directly.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
