package factory

import (
	"github.com/automoto/ghostclimb/archetypes"
	"github.com/automoto/ghostclimb/components"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static platform. index fixes its priority when
// the player overlaps several platforms.
func CreatePlatform(ecs *ecs.ECS, r gamemath.Rect, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform)
	obj.Data = platform // Link for O(1) lookup

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{Index: index})
	addToSpace(ecs, obj)

	return platform
}

func CreateLadder(ecs *ecs.ECS, r gamemath.Rect, index int) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvLadder)
	obj.Data = ladder

	components.Object.SetValue(ladder, components.ObjectData{Object: obj})
	components.Ladder.SetValue(ladder, components.LadderData{Index: index})
	addToSpace(ecs, obj)

	return ladder
}
