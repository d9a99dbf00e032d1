package systems

import (
	"math"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGhost moves the respawn ghost and, once its lifetime is over,
// brings the player back where the ghost stands.
func UpdateGhost(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	now := Now(ecs)

	// Collect first: expiry removes the entity.
	var ghosts []*donburi.Entry
	tags.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		ghosts = append(ghosts, e)
	})

	for _, ghostEntry := range ghosts {
		ghost := components.Ghost.Get(ghostEntry)
		elapsed := now - ghost.StartTime
		if elapsed >= cfg.Ghost.Lifetime {
			expireGhost(ecs, ghostEntry)
			continue
		}

		if ghost.Fade != nil {
			alpha, _ := ghost.Fade.Set(float32(elapsed.Seconds()))
			ghost.Alpha = float64(alpha)
		}

		moveGhost(ecs, level, components.Object.Get(ghostEntry))
	}
}

func moveGhost(ecs *ecs.ECS, level *components.LevelData, obj *components.ObjectData) {
	step := cfg.Ghost.Speed * frameScale(ecs)

	var dx, dy float64
	if actionPressed(ecs, cfg.ActionMoveLeft) && obj.X > level.Left {
		dx = -step
	} else if actionPressed(ecs, cfg.ActionMoveRight) && obj.X < level.Width-obj.W {
		dx = step
	}

	if actionPressed(ecs, cfg.ActionMoveUp) {
		dy = -step
	} else if actionPressed(ecs, cfg.ActionMoveDown) {
		dy = step
	}

	obj.X = gamemath.ClampFloat(obj.X+dx, level.Left, level.Width-obj.W)
	obj.Y = gamemath.ClampFloat(obj.Y+dy, level.Top, level.Height-obj.H)
	obj.Update()
}

// expireGhost teleports the player to the ghost, resurrects it and hands
// the camera back.
func expireGhost(ecs *ecs.ECS, ghostEntry *donburi.Entry) {
	ghostObj := components.Object.Get(ghostEntry)
	x, y := ghostObj.X, ghostObj.Y

	removeFromSpace(ecs, ghostObj.Object)
	ecs.World.Remove(ghostEntry.Entity())

	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	playerObj.X = x
	playerObj.Y = y
	ResurrectPlayer(playerEntry)
	playerObj.Update()

	if cam := getCamera(ecs); cam != nil {
		CameraFollow(cam, playerEntry)
	}
}

// GhostTimeLeft returns the whole seconds left before respawn, rounded up.
func GhostTimeLeft(ecs *ecs.ECS) (int, bool) {
	ghostEntry, ok := tags.Ghost.First(ecs.World)
	if !ok {
		return 0, false
	}
	ghost := components.Ghost.Get(ghostEntry)
	left := cfg.Ghost.Lifetime - (Now(ecs) - ghost.StartTime)
	if left < 0 {
		left = 0
	}
	return int(math.Ceil(left.Seconds())), true
}

func getGhost(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Ghost.First(ecs.World)
}
