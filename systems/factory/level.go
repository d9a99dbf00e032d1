package factory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/ghostclimb/archetypes"
	"github.com/automoto/ghostclimb/assets"
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions selects what CreateLevel builds.
type LevelOptions struct {
	Number  int
	Layout  string // embedded TMX layout name; empty builds the room grid
	Seed    int64  // 0 seeds from the wall clock
	Scoring cfg.ScoringMode
}

// BuildLayout returns the layout for a level: the named TMX map, or the
// room grid sized by level number.
func BuildLayout(opts LevelOptions) (leveldata.Layout, error) {
	if opts.Layout != "" {
		layout, err := assets.LoadLayout(opts.Layout)
		if err != nil {
			return leveldata.Layout{}, fmt.Errorf("layout %q: %w", opts.Layout, err)
		}
		return layout, nil
	}

	l := cfg.Level
	w, h := leveldata.LevelSize(opts.Number, l.BaseWidth, l.BaseHeight, l.GrowWidth, l.GrowHeight, l.MaxWidth, l.MaxHeight)
	return leveldata.RoomGrid(w, h, GridOptions()), nil
}

// GridOptions maps the level configuration onto the room grid producer.
func GridOptions() leveldata.GridOptions {
	return leveldata.GridOptions{
		RoomWidth:      cfg.Level.RoomWidth,
		RoomHeight:     cfg.Level.RoomHeight,
		PlatformHeight: cfg.Level.PlatformHeight,
		LadderWidth:    cfg.Level.LadderWidth,
		LadderHeight:   cfg.Level.LadderHeight,
		LadderInset:    10,
		StartX:         cfg.Player.StartX,
		PlayerHeight:   cfg.Player.Height,
	}
}

// CreateLevel spawns the level singleton, its collision space, the static
// platforms and ladders, and the player.
func CreateLevel(ecs *ecs.ECS, layout leveldata.Layout, opts LevelOptions) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Number:  opts.Number,
		Name:    layout.Name,
		Width:   layout.Width,
		Height:  layout.Height,
		Lives:   cfg.Level.StartLives,
		Scoring: opts.Scoring,
	})

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	components.Random.SetValue(level, components.RandomData{Rand: rand.New(rand.NewSource(seed))})

	cell := cfg.Level.SpaceCellSize
	CreateSpace(ecs, int(layout.Width), int(layout.Height), cell, cell)

	for i, r := range layout.Platforms {
		CreatePlatform(ecs, r, i)
	}
	for i, r := range layout.Ladders {
		CreateLadder(ecs, r, i)
	}

	CreatePlayer(ecs, layout.Spawn.X, layout.Spawn.Y)

	return level
}
