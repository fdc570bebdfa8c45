package systems

import (
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects advances floating platform tweens and syncs every resolv
// object's cell registration after the frame's movement.
func UpdateObjects(e *ecs.ECS) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		if tween.Sequence == nil {
			return
		}

		y, _, seqDone := tween.Sequence.Update(float32(cfg.TickDelta))
		obj := components.Object.Get(entry).Object
		obj.Y = float64(y)
		if seqDone {
			tween.Sequence.Reset()
		}
	})

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		components.Object.Get(entry).Update()
	})
}
