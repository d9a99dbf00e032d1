package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/fonts"
	"github.com/automoto/ghostclimb/systems"
	factory2 "github.com/automoto/ghostclimb/systems/factory"
	"github.com/automoto/ghostclimb/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var controlLines = []string{
	"Arrows or WASD: move, climb and jump",
	"Down on a platform drops through it",
	"Land on enemies from above",
}

// MenuScene displays the start screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startUI      *ui.StartUI
	once         sync.Once

	pulse     *gween.Tween
	pulseUp   bool
	hintAlpha float32

	start *ui.StartOptions
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.startUI.Update()
	ms.updatePulse()

	if systems.ActionJustPressed(ms.ecs, cfg.ActionConfirm) {
		ms.startUI.Start()
	}

	if ms.start != nil {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		systems.UpdateAudio(ms.ecs)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, LevelOptions(ms.start.Level, ms.start.Scoring)))
	}
}

// updatePulse swings the hint alpha back and forth.
func (ms *MenuScene) updatePulse() {
	alpha, done := ms.pulse.Update(float32(cfg.Physics.TickDuration.Seconds()))
	ms.hintAlpha = alpha
	if done {
		ms.pulseUp = !ms.pulseUp
		ms.pulse = newPulse(ms.pulseUp)
	}
}

func newPulse(up bool) *gween.Tween {
	if up {
		return gween.New(0.3, 1, 0.8, ease.InOutSine)
	}
	return gween.New(1, 0.3, 0.8, ease.InOutSine)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.startUI.UI.Draw(screen)

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Face()
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	op := &text.DrawOptions{}
	for i, line := range controlLines {
		w, _ := text.Measure(line, face, 0)
		op.GeoM.Reset()
		op.GeoM.Translate(width/2-w/2, height-160+float64(i)*26)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
		text.Draw(screen, line, face, op)
	}

	hint := "Press enter to start"
	w, _ := text.Measure(hint, face, 0)
	op.GeoM.Reset()
	op.GeoM.Translate(width/2-w/2, height-60)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(cfg.Orange)
	op.ColorScale.ScaleAlpha(ms.hintAlpha)
	text.Draw(screen, hint, face, op)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.startUI = ui.NewStartUI(ui.StartOptions{
		Level:   cfg.Debug.StartLevel,
		Scoring: cfg.Level.Scoring,
	}, func(opts ui.StartOptions) {
		ms.start = &opts
	})

	ms.pulse = newPulse(false)
	ms.hintAlpha = 1
}

// LevelOptions builds the options for a run starting at level number,
// picking up the layout and seed overrides.
func LevelOptions(number int, scoring cfg.ScoringMode) factory2.LevelOptions {
	opts := factory2.LevelOptions{
		Number:  number,
		Seed:    cfg.C.Seed,
		Scoring: scoring,
	}
	if number == cfg.Debug.StartLevel {
		opts.Layout = cfg.Debug.Layout
	}
	return opts
}
