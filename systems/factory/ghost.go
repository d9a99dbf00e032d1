package factory

import (
	"time"

	"github.com/automoto/ghostclimb/archetypes"
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGhost spawns the respawn ghost at (x, y). now is the level clock.
func CreateGhost(ecs *ecs.ECS, x, y float64, now time.Duration) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Ghost.Width, cfg.Ghost.Height, tags.ResolvGhost)
	obj.Data = ghost
	components.Object.SetValue(ghost, components.ObjectData{Object: obj})

	// Alpha fades in linearly; the tween is driven by elapsed seconds.
	components.Ghost.SetValue(ghost, components.GhostData{
		StartTime: now,
		Fade:      gween.New(0, 1, float32(cfg.Ghost.FadeIn.Seconds()), ease.Linear),
	})
	addToSpace(ecs, obj)

	return ghost
}
