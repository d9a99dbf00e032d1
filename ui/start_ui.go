package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StartOptions is what the start menu lets the player pick.
type StartOptions struct {
	Level   int
	Scoring cfg.ScoringMode
}

type StartUI struct {
	UI *ebitenui.UI

	OnStart func(opts StartOptions)

	opts StartOptions

	levelBtn   *widget.Button
	scoringBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewStartUI(opts StartOptions, onStart func(opts StartOptions)) *StartUI {
	if opts.Level < 1 {
		opts.Level = 1
	}
	ui := &StartUI{
		OnStart: onStart,
		opts:    opts,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *StartUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *StartUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("GHOST CLIMB", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Climb to the top. Stomp what patrols the rooms.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	))

	ui.levelBtn = ui.newOptionButton(ui.levelText(), func() {
		ui.opts.Level = ui.opts.Level%cfg.Level.MaxLevel + 1
		ui.levelBtn.Text().Label = ui.levelText()
	})
	contentContainer.AddChild(ui.levelBtn)

	ui.scoringBtn = ui.newOptionButton(ui.scoringText(), func() {
		if ui.opts.Scoring == cfg.ScoringDepth {
			ui.opts.Scoring = cfg.ScoringFlat
		} else {
			ui.opts.Scoring = cfg.ScoringDepth
		}
		ui.scoringBtn.Text().Label = ui.scoringText()
	})
	contentContainer.AddChild(ui.scoringBtn)

	startBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Start", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Start()
		}),
	)
	contentContainer.AddChild(startBtn)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *StartUI) newOptionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{220, 220, 255, 255},
			Pressed: color.RGBA{180, 180, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *StartUI) levelText() string {
	return fmt.Sprintf("Level: %d", ui.opts.Level)
}

func (ui *StartUI) scoringText() string {
	if ui.opts.Scoring == cfg.ScoringFlat {
		return "Scoring: flat"
	}
	return "Scoring: depth"
}

// Options returns the current selection.
func (ui *StartUI) Options() StartOptions {
	return ui.opts
}

// Start fires OnStart with the current selection.
func (ui *StartUI) Start() {
	if ui.OnStart != nil {
		ui.OnStart(ui.opts)
	}
}

func (ui *StartUI) Update() {
	ui.UI.Update()
}
