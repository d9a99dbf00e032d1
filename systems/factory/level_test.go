package factory

import (
	"testing"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBuildLayoutGrowsWithLevel(t *testing.T) {
	first, err := BuildLayout(LevelOptions{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, cfg.Level.BaseWidth, first.Width)
	assert.Equal(t, cfg.Level.BaseHeight, first.Height)

	third, err := BuildLayout(LevelOptions{Number: 3})
	require.NoError(t, err)
	assert.Equal(t, cfg.Level.BaseWidth+2*cfg.Level.GrowWidth, third.Width)
	assert.Equal(t, cfg.Level.BaseHeight+2*cfg.Level.GrowHeight, third.Height)

	huge, err := BuildLayout(LevelOptions{Number: 50})
	require.NoError(t, err)
	assert.Equal(t, cfg.Level.MaxWidth, huge.Width)
	assert.Equal(t, cfg.Level.MaxHeight, huge.Height)
}

func TestBuildLayoutNamed(t *testing.T) {
	layout, err := BuildLayout(LevelOptions{Number: 1, Layout: "staircase"})
	require.NoError(t, err)
	assert.NotEmpty(t, layout.Platforms)

	_, err = BuildLayout(LevelOptions{Number: 1, Layout: "nope"})
	assert.ErrorContains(t, err, `layout "nope"`)
}

func TestCreateLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	layout, err := BuildLayout(LevelOptions{Number: 1})
	require.NoError(t, err)

	levelEntry := CreateLevel(e, layout, LevelOptions{Number: 1, Seed: 7, Scoring: cfg.ScoringFlat})
	level := components.Level.Get(levelEntry)

	assert.Equal(t, 1, level.Number)
	assert.Equal(t, cfg.Level.StartLives, level.Lives)
	assert.Equal(t, cfg.ScoringFlat, level.Scoring)
	assert.Equal(t, layout.Width, level.Width)
	assert.Equal(t, layout.Height, level.Height)

	platforms, ladders, players := 0, 0, 0
	tags.Platform.Each(e.World, func(*donburi.Entry) { platforms++ })
	tags.Ladder.Each(e.World, func(*donburi.Entry) { ladders++ })
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	assert.Equal(t, len(layout.Platforms), platforms)
	assert.Equal(t, len(layout.Ladders), ladders)
	assert.Equal(t, 1, players)

	// Everything spatial is registered with the collision space.
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	assert.Len(t, space.Objects(), platforms+ladders+players)

	playerEntry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(playerEntry)
	assert.Equal(t, layout.Spawn.X, obj.X)
	assert.Equal(t, layout.Spawn.Y, obj.Y)
	assert.Equal(t, playerEntry, obj.Data)
	assert.Equal(t, cfg.OnPlatform, components.Player.Get(playerEntry).State)
}

func TestCreateLevelSeedIsDeterministic(t *testing.T) {
	draw := func() []int {
		e := ecs.NewECS(donburi.NewWorld())
		layout, _ := BuildLayout(LevelOptions{Number: 1})
		levelEntry := CreateLevel(e, layout, LevelOptions{Number: 1, Seed: 99})
		rng := components.Random.Get(levelEntry)
		return []int{rng.Intn(1000), rng.Intn(1000), rng.Intn(1000)}
	}
	assert.Equal(t, draw(), draw())
}

func TestCreateGhostFadesFromZero(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 100, 100, 50, 50)
	ghostEntry := CreateGhost(e, 10, 10, 0)

	ghost := components.Ghost.Get(ghostEntry)
	require.NotNil(t, ghost.Fade)
	alpha, done := ghost.Fade.Set(0)
	assert.Zero(t, alpha)
	assert.False(t, done)

	alpha, done = ghost.Fade.Set(float32(cfg.Ghost.FadeIn.Seconds()))
	assert.Equal(t, float32(1), alpha)
	assert.True(t, done)
}
