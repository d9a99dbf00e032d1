package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GhostData struct {
	StartTime time.Duration
	Alpha     float64
	Fade      *gween.Tween
}

var Ghost = donburi.NewComponentType[GhostData]()
