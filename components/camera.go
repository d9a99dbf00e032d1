package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the center of the screen
	Zoom     float64
	Target   *donburi.Entry // followed entity, nil when framing the whole level

	ShakePower float64
	ShakeDecay float64 // power lost per second

	ViewWidth  float64 // canvas size in pixels
	ViewHeight float64
}

var Camera = donburi.NewComponentType[CameraData]()
