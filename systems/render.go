package systems

import (
	"image/color"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	ladderStepGap    = 15
	ladderRailInset  = 8
	playerHeadHeight = 20
	playerNeckGap    = 4
	levelBorderWidth = 5
)

var levelBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// DrawLevel renders the static level: background, platforms and ladders.
// Without a camera target the level border is outlined.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := getCamera(ecs)
	level := getLevel(ecs)
	if camera == nil || level == nil {
		return
	}
	geoM := CameraTransform(camera)
	levelRect := gamemath.NewRect(level.Left, level.Top, level.Width-level.Left, level.Height-level.Top)

	fillWorldRect(screen, geoM, camera.Zoom, levelRect, levelBackground)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		fillWorldRect(screen, geoM, camera.Zoom, components.Object.Get(e).Rect(), cfg.DarkGray)
	})

	tags.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		drawLadder(screen, geoM, camera.Zoom, components.Object.Get(e).Rect())
	})

	if camera.Target == nil {
		x, y := geoM.Apply(levelRect.X, levelRect.Y)
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(levelRect.W*camera.Zoom), float32(levelRect.H*camera.Zoom),
			levelBorderWidth, cfg.Red, false)
	}
}

func drawLadder(screen *ebiten.Image, geoM ebiten.GeoM, zoom float64, r gamemath.Rect) {
	half := float64(ladderStepGap) / 2
	for y := 0.0; y+half <= r.H; y += ladderStepGap {
		fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X+ladderRailInset, r.Y+y, r.W-2*ladderRailInset, half), cfg.LadderStep)
		fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X, r.Y+y+half, r.W, half), cfg.LadderRail)
	}
}

// DrawEntities renders enemies, the player and the ghost on top of the level.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := getCamera(ecs)
	if camera == nil {
		return
	}
	geoM := CameraTransform(camera)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).State == cfg.EnemyDead {
			return
		}
		fillWorldRect(screen, geoM, camera.Zoom, components.Object.Get(e).Rect(), cfg.Red)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, geoM, camera.Zoom, components.Object.Get(e).Rect())
	})

	tags.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		ghost := components.Ghost.Get(e)
		a := uint8(255 * gamemath.ClampFloat(ghost.Alpha, 0, 1))
		fillWorldRect(screen, geoM, camera.Zoom, components.Object.Get(e).Rect(), color.NRGBA{R: 255, G: 255, B: 255, A: a})
	})
}

// drawPlayer draws a head and a body. A ragdoll is wider than tall and is
// drawn lying down, head first.
func drawPlayer(screen *ebiten.Image, geoM ebiten.GeoM, zoom float64, r gamemath.Rect) {
	if r.W > r.H {
		fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X, r.Y, playerHeadHeight, r.H), cfg.Orange)
		fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X+playerHeadHeight+playerNeckGap, r.Y, r.W-playerHeadHeight-playerNeckGap, r.H), cfg.Orange)
		return
	}
	fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X, r.Y, r.W, playerHeadHeight), cfg.Orange)
	fillWorldRect(screen, geoM, zoom, gamemath.NewRect(r.X, r.Y+playerHeadHeight+playerNeckGap, r.W, r.H-playerHeadHeight-playerNeckGap), cfg.Orange)
}

func fillWorldRect(screen *ebiten.Image, geoM ebiten.GeoM, zoom float64, r gamemath.Rect, c color.Color) {
	x, y := geoM.Apply(r.X, r.Y)
	vector.FillRect(screen, float32(x), float32(y), float32(r.W*zoom), float32(r.H*zoom), c, false)
}
