package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents drains the frame's published gameplay events to their
// subscribers. Runs after every gameplay system so subscribers see the
// final state of the tick that raised the event.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
