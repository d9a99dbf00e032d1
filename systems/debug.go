package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/fonts"
	"github.com/automoto/ghostclimb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugKeys handles the camera and overlay debug keys.
func UpdateDebugKeys(ecs *ecs.ECS) {
	camera := getCamera(ecs)
	if camera == nil {
		return
	}
	if actionJustPressed(ecs, cfg.ActionDebugFollow) {
		if playerEntry, ok := getPlayer(ecs); ok {
			CameraFollow(camera, playerEntry)
		}
	}
	if actionJustPressed(ecs, cfg.ActionDebugZoom) {
		if level := getLevel(ecs); level != nil {
			CameraZoomToLevel(camera, level)
		}
	}
	if actionJustPressed(ecs, cfg.ActionDebugOverlay) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	camera := getCamera(ecs)
	space := getSpace(ecs)
	if camera == nil || space == nil {
		return
	}
	geoM := CameraTransform(camera)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		x, y := geoM.Apply(obj.X, obj.Y)
		w, h := obj.W*camera.Zoom, obj.H*camera.Zoom
		// Cull objects outside viewport
		if x+w < 0 || x > width || y+h < 0 || y > height {
			continue
		}

		c := cfg.Cyan
		switch {
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvGhost):
			c = cfg.White
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}

	if playerEntry, ok := getPlayer(ecs); ok && fonts.Loaded(fonts.HUD) {
		p := components.Player.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		line := fmt.Sprintf("%s  x=%.0f y=%.0f  yVel=%.1f  xVel=%.1f", p.State, obj.X, obj.Y, p.YVel, p.XVel)
		drawText(screen, line, fonts.HUD.Face(), cfg.UI.HUDMargin, height-cfg.UI.HUDMargin*2, cfg.LightBlue)
	}
}
