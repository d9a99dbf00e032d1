package systems

import (
	"testing"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/shared/leveldata"
	"github.com/automoto/ghostclimb/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	floorY    = 1410.0 // player Y standing on the floor of testLayout
	standingY = 1115.0 // player Y standing on the low platforms
	topY      = 215.0  // player Y standing on the top platform
)

// testLayout is a 2000x1500 level: two low platforms with a gap between
// x=800 and x=1200, one ladder from the floor up to the left platform and
// a full-width top platform.
func testLayout() leveldata.Layout {
	return leveldata.Layout{
		Name:   "test",
		Width:  2000,
		Height: 1500,
		Platforms: []gamemath.Rect{
			{X: 0, Y: 1200, W: 800, H: 20},
			{X: 1200, Y: 1200, W: 800, H: 20},
			{X: 0, Y: 300, W: 2000, H: 20},
		},
		Ladders: []gamemath.Rect{
			{X: 410, Y: 1200, W: 30, H: 300},
		},
		Spawn: leveldata.SpawnPoint{X: 100, Y: floorY},
	}
}

func newTestLevel(t *testing.T) *ecs.ECS {
	t.Helper()
	return newTestLevelWith(t, testLayout(), cfg.ScoringDepth)
}

func newTestLevelWith(t *testing.T, layout leveldata.Layout, scoring cfg.ScoringMode) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	StartLevel(e, layout, factory.LevelOptions{Number: 1, Seed: 42, Scoring: scoring}, 800, 600)
	return e
}

// step runs one frame of simulation in the scene's order, without waves.
func step(e *ecs.ECS) {
	UpdateClock(e)
	UpdateEnemies(e)
	UpdatePlayer(e)
	UpdateGhost(e)
	UpdateCombat(e)
	UpdateLevelEvents(e)
	UpdateCamera(e)
}

// hold replaces the held actions.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func mustPlayer(t *testing.T, e *ecs.ECS) (*donburi.Entry, *components.PlayerData, *components.ObjectData) {
	t.Helper()
	entry, ok := getPlayer(e)
	require.True(t, ok)
	return entry, components.Player.Get(entry), components.Object.Get(entry)
}

func placePlayer(e *ecs.ECS, x, y float64) {
	entry, _ := getPlayer(e)
	obj := components.Object.Get(entry)
	obj.X, obj.Y = x, y
	obj.Update()
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).PendingSFX
}
