package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/systems"
	factory2 "github.com/automoto/ghostclimb/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunState is what carries over from one level to the next.
type RunState struct {
	Score int
	Lives int
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         factory2.LevelOptions
	run          *RunState
	once         sync.Once

	gameOverLogged bool
}

// NewPlatformerScene starts a fresh run at the given level.
func NewPlatformerScene(sc SceneChanger, opts factory2.LevelOptions) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

// NewPlatformerSceneWithRun continues a run on a new level.
func NewPlatformerSceneWithRun(sc SceneChanger, opts factory2.LevelOptions, run RunState) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts, run: &run}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if systems.IsLevelOver(ps.ecs) {
		ps.updateGameOver()
		return
	}

	ps.ecs.Update()

	switch {
	case systems.ActionJustPressed(ps.ecs, cfg.ActionBack):
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	case systems.ActionJustPressed(ps.ecs, cfg.ActionDebugNextLevel):
		ps.nextLevel()
	case ps.finishedFor() >= cfg.Level.FinishDelay:
		ps.nextLevel()
	}
}

// updateGameOver keeps input, camera and audio alive behind the banner and
// waits for a restart.
func (ps *PlatformerScene) updateGameOver() {
	level := ps.level()
	if !ps.gameOverLogged {
		log.Printf("game over on level %d, score %d", level.Number, level.Score)
		ps.gameOverLogged = true
	}

	systems.UpdateClock(ps.ecs)
	systems.UpdateInput(ps.ecs)
	systems.UpdateCamera(ps.ecs)
	systems.UpdateAudio(ps.ecs)

	switch {
	case systems.ActionJustPressed(ps.ecs, cfg.ActionConfirm):
		systems.PlaySFX(ps.ecs, cfg.SoundMenuSelect)
		systems.UpdateAudio(ps.ecs)
		opts := ps.opts
		opts.Number = 1
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, opts))
	case systems.ActionJustPressed(ps.ecs, cfg.ActionBack):
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) finishedFor() time.Duration {
	level := ps.level()
	if level == nil || !level.Finished {
		return -1
	}
	return systems.Now(ps.ecs) - level.FinishedAt
}

func (ps *PlatformerScene) nextLevel() {
	level := ps.level()
	if level == nil {
		return
	}

	opts := ps.opts
	opts.Number = min(level.Number+1, cfg.Level.MaxLevel)
	// Named layouts only cover the first level; later ones use the grid.
	opts.Layout = ""
	if opts.Seed != 0 {
		opts.Seed++
	}

	run := RunState{Score: level.Score, Lives: level.Lives}
	ps.sceneChanger.ChangeScene(NewPlatformerSceneWithRun(ps.sceneChanger, opts, run))
}

func (ps *PlatformerScene) level() *components.LevelData {
	entry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock first: every later system reads this frame's delta.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugKeys)

	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateGhost)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateLevelEvents)
	ecs.AddSystem(systems.UpdateWaves)
	ecs.AddSystem(systems.UpdateLevelProgress)
	ecs.AddSystem(systems.UpdateCamera)

	// Audio last so this frame's queued effects play
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	layout, err := factory2.BuildLayout(ps.opts)
	if err != nil {
		log.Printf("falling back to the room grid: %v", err)
		ps.opts.Layout = ""
		layout, err = factory2.BuildLayout(ps.opts)
		if err != nil {
			log.Fatalf("failed to build level %d: %v", ps.opts.Number, err)
		}
	}

	systems.StartLevel(ps.ecs, layout, ps.opts, float64(cfg.C.Width), float64(cfg.C.Height))

	if ps.run != nil {
		level := ps.level()
		level.Score = ps.run.Score
		level.Lives = ps.run.Lives
	}
}
