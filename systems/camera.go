package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/ghostclimb/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	camera := getCamera(e)
	level := getLevel(e)
	if camera == nil || level == nil {
		return
	}

	if camera.Target != nil && !camera.Target.Valid() {
		camera.Target = nil
	}
	if camera.Target != nil {
		frameTarget(camera, level)
	}

	shakeFrame(camera, getRandom(e), frameSeconds(e))
}

func getCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// CameraFollow tracks target at zoom 1 from the next update on.
func CameraFollow(camera *components.CameraData, target *donburi.Entry) {
	if camera == nil {
		return
	}
	camera.Zoom = 1
	camera.Target = target
}

// CameraZoomToLevel drops the target and fits the whole level on screen,
// keeping its aspect ratio.
func CameraZoomToLevel(camera *components.CameraData, level *components.LevelData) {
	camera.Target = nil
	camera.Position.X = level.Left + level.Width/2
	camera.Position.Y = level.Top + level.Height/2

	if level.Width/level.Height >= camera.ViewWidth/camera.ViewHeight {
		camera.Zoom = camera.ViewWidth / level.Width
	} else {
		camera.Zoom = camera.ViewHeight / level.Height
	}
}

// ShakeCamera starts a shake of the given power that fades out linearly
// over duration.
func ShakeCamera(camera *components.CameraData, power float64, duration time.Duration) {
	camera.ShakePower = power
	if duration <= 0 {
		camera.ShakeDecay = power
		return
	}
	camera.ShakeDecay = power / duration.Seconds()
}

func frameTarget(camera *components.CameraData, level *components.LevelData) {
	if camera.Target == nil || !camera.Target.HasComponent(components.Object) {
		return
	}
	r := components.Object.Get(camera.Target).Rect()
	fitZoom(camera, level)
	followFrame(camera, level, r.Right(), r.Bottom())
}

// fitZoom widens the zoom so the view never shows past the level edges.
func fitZoom(camera *components.CameraData, level *components.LevelData) {
	if level.Width*camera.Zoom < camera.ViewWidth || level.Height*camera.Zoom < camera.ViewHeight {
		camera.Zoom = math.Max(camera.ViewWidth/level.Width, camera.ViewHeight/level.Height)
	}
}

// followFrame centers on (x, y), pulled back so the view stays inside the
// level on both axes.
func followFrame(camera *components.CameraData, level *components.LevelData, x, y float64) {
	viewW := camera.ViewWidth / camera.Zoom
	viewH := camera.ViewHeight / camera.Zoom

	if x-viewW/2 < level.Left {
		x = level.Left + viewW/2
	} else if x+viewW/2 > level.Width {
		x = level.Width - viewW/2
	}

	if y-viewH/2 < level.Top {
		y = level.Top + viewH/2
	} else if y+viewH/2 > level.Height {
		y = level.Height - viewH/2
	}

	camera.Position.X = x
	camera.Position.Y = y
}

// shakeFrame jitters the position by up to ShakePower on each axis, then
// decays the power by dt seconds worth.
func shakeFrame(camera *components.CameraData, rng *rand.Rand, dt float64) {
	if camera.ShakePower <= 0 {
		return
	}
	if rng != nil {
		p := camera.ShakePower
		camera.Position.X += rng.Float64()*2*p - p
		camera.Position.Y += rng.Float64()*2*p - p
	}
	camera.ShakePower -= camera.ShakeDecay * dt
	if camera.ShakePower < 0 {
		camera.ShakePower = 0
	}
}

// CameraTransform maps world coordinates to the screen.
func CameraTransform(camera *components.CameraData) ebiten.GeoM {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	var geoM ebiten.GeoM
	geoM.Translate(-camera.Position.X, -camera.Position.Y)
	geoM.Scale(zoom, zoom)
	geoM.Translate(camera.ViewWidth/2, camera.ViewHeight/2)
	return geoM
}
