package factory

import (
	"github.com/automoto/ghostclimb/archetypes"
	"github.com/automoto/ghostclimb/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera for a canvas of the given size.
func CreateCamera(ecs *ecs.ECS, viewWidth, viewHeight float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Zoom:       1,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	})
	return camera
}
