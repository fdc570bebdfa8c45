package factory

import (
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera singleton together with its zone manager,
// populated from the level's authored camera zones.
func CreateCamera(ecs *ecs.ECS, zones []leveldata.ZoneDef) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	components.Camera.SetValue(camera, components.CameraData{
		Zoom:       cfg.Camera.DefaultZoom,
		TargetZoom: cfg.Camera.DefaultZoom,
	})

	manager := components.Zones.Get(camera)
	for _, z := range zones {
		manager.Add(&components.CameraZone{
			Name:     z.Name,
			X:        z.X,
			Y:        z.Y,
			W:        z.W,
			H:        z.H,
			Zoom:     z.Zoom,
			Priority: z.Priority,
			OneShot:  z.OneShot,
		})
	}

	return camera
}
