package factory

import (
	"github.com/automoto/ghostclimb/archetypes"
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy at (x, y) confined to area.
// serial orders enemy updates.
func CreateEnemy(ecs *ecs.ECS, x, y float64, area gamemath.Rect, serial int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		State:      cfg.Patrol,
		DX:         cfg.Enemy.Speed,
		PatrolArea: area,
		Serial:     serial,
	})
	addToSpace(ecs, obj)

	return enemy
}
