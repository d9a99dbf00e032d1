package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/fonts"
	"github.com/automoto/ghostclimb/scenes"
	"github.com/automoto/ghostclimb/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		opts := scenes.LevelOptions(config.Debug.StartLevel, config.Level.Scoring)
		g.scene = scenes.NewPlatformerScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	level := flag.Int("level", config.Debug.StartLevel, "level number to start on")
	layout := flag.String("layout", "", "embedded TMX layout for the first level (default: room grid)")
	scoring := flag.String("scoring", "depth", "stomp scoring: depth or flat")
	skipMenu := flag.Bool("skipmenu", false, "start playing immediately")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	debug := flag.Bool("debug", false, "draw the collision overlay")
	flag.Parse()

	mode, ok := config.ParseScoringMode(*scoring)
	if !ok {
		log.Fatalf("unknown scoring mode %q", *scoring)
	}
	if *level < 1 || *level > config.Level.MaxLevel {
		log.Fatalf("level must be between 1 and %d", config.Level.MaxLevel)
	}

	config.Debug.StartLevel = *level
	config.Debug.Layout = *layout
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	config.Level.Scoring = mode
	config.C.Seed = *seed
}

func main() {
	parseFlags()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize, config.UI.BigFontSize); err != nil {
		log.Fatal(err)
	}
	systems.InitAudio()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Ghost Climb")
	ebiten.SetTPS(config.Physics.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
