package systems

import (
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the level clock by one tick. Runs first.
func UpdateClock(ecs *ecs.ECS) {
	AdvanceClock(ecs, cfg.Physics.TickDuration)
}

// AdvanceClock moves the level clock forward by dt.
func AdvanceClock(ecs *ecs.ECS, dt time.Duration) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = dt
	clock.Now += dt
}

// Now returns the level clock.
func Now(ecs *ecs.ECS) time.Duration {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Now
}

// frameScale is the current frame length in nominal ticks. Velocities are
// expressed per tick and multiplied by it.
func frameScale(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 1
	}
	return float64(components.Clock.Get(entry).Delta) / float64(cfg.Physics.TickDuration)
}

func frameSeconds(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return cfg.Physics.TickDuration.Seconds()
	}
	return components.Clock.Get(entry).Delta.Seconds()
}
