package components

import (
	"time"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/yohamta/donburi"
)

// LevelData is the per-level bookkeeping singleton. The right edge of the
// world is Width and the floor is Height.
type LevelData struct {
	Number int
	Name   string
	Left   float64
	Top    float64
	Width  float64
	Height float64

	Score    int
	Lives    int
	Scoring  cfg.ScoringMode
	Finished bool

	FinishedAt       time.Duration
	EnemyWaveCount   int
	LastEnemyAddTime time.Duration
	EnemySerial      int
}

var Level = donburi.NewComponentType[LevelData]()
