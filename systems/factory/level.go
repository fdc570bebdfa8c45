package factory

import (
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	"github.com/hollowmoor/duskfang/leveldata"
	"github.com/hollowmoor/duskfang/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex loads one of the embedded levels into a level entity.
func CreateLevelAtIndex(ecs *ecs.ECS, index int) (*donburi.Entry, error) {
	if index < 0 || index >= len(levels.Paths) {
		index = 0
	}
	level, err := leveldata.Load(levels.FS, levels.Paths[index])
	if err != nil {
		return nil, err
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry, nil
}
