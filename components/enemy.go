package components

import (
	"time"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	State cfg.EnemyStateID
	DX    float64
	DY    float64

	StateStart time.Duration // entry time of Alarm, refreshed in Attack
	Target     math.Vec2     // Goto destination
	PatrolArea gamemath.Rect
	Serial     int // creation order; enemies update in this order
}

var Enemy = donburi.NewComponentType[EnemyData]()
