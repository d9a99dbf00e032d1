package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

const livesColumnWidth = 200

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders score and lives, plus the ghost countdown, game over and
// level complete banners.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	if level == nil || !fonts.Loaded(fonts.HUD) {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := config.UI.HUDMargin
	hud := fonts.HUD.Face()

	drawText(screen, fmt.Sprintf("SCORE     %d", level.Score), hud, margin*3, margin, config.White)
	drawText(screen, fmt.Sprintf("LIVES     %d", level.Lives), hud, width-livesColumnWidth, margin, config.White)

	switch {
	case IsLevelOver(ecs):
		drawCenteredLines(screen, height*0.25, "GAME OVER!", "Press enter to try again")
	case level.Finished:
		drawCenteredLines(screen, height*0.25, "LEVEL COMPLETE", fmt.Sprintf("Score %d", level.Score))
	default:
		if left, ok := GhostTimeLeft(ecs); ok {
			drawCenteredLines(screen, height*0.25, "Continue as ghost for a while!")
			if fonts.Loaded(fonts.Big) {
				big := fonts.Big.Face()
				s := strconv.Itoa(left)
				w, _ := text.Measure(s, big, 0)
				drawText(screen, s, big, width/2-w/2, height/3, config.White)
			}
		}
	}
}

func drawCenteredLines(screen *ebiten.Image, top float64, lines ...string) {
	if !fonts.Loaded(fonts.Title) {
		return
	}
	face := fonts.Title.Face()
	width := float64(screen.Bounds().Dx())
	for i, line := range lines {
		w, _ := text.Measure(line, face, 0)
		drawText(screen, line, face, width/2-w/2, top+float64(i)*config.UI.TextSpacing, config.White)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, hudTextOp)
}
