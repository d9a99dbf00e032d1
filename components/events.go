package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// PlayerDiedEvent is published once per death.
type PlayerDiedEvent struct {
	Player   donburi.Entity
	Position math.Vec2
}

// EnemyAlarmedEvent is published when a patrolling enemy spots the player.
type EnemyAlarmedEvent struct {
	Source donburi.Entity
	Target math.Vec2
}

var (
	PlayerDied   = events.NewEventType[PlayerDiedEvent]()
	EnemyAlarmed = events.NewEventType[EnemyAlarmedEvent]()
)
