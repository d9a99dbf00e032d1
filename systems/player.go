package systems

import (
	"math"
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// footCycle is the walk animation period in steps.
const footCycle = 10

type ladderCollision struct {
	collision    bool
	collidesHigh bool // the player's top edge is inside a ladder
}

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updatePlayer(ecs, playerEntry)
	})
}

func updatePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	level := getLevel(ecs)
	if level == nil {
		return
	}
	scale := frameScale(ecs)

	if player.State == cfg.Dead {
		// Cosmetic fall to the floor.
		if obj.Y+obj.H < level.Height {
			player.YVel += cfg.Player.Gravity * scale
			obj.Y = math.Min(obj.Y+player.YVel*scale, level.Height-obj.H)
			obj.Update()
		}
		return
	}

	now := Now(ecs)

	platform, onPlatform := findPlatform(ecs, obj.Rect())
	if onPlatform {
		player.LatestOnPlatformTime = now
		player.LedgeGrace = true
	}

	ladders := findLadderCollision(ecs, obj.Rect())

	var dx, dy float64
	switch {
	case !ladders.collision && player.State == cfg.Climbing:
		player.State = cfg.Falling
	case player.YVel > cfg.Player.DeadlyFallingSpeed:
		if !player.FallingToGround {
			player.FallingToGround = true
			obj.W, obj.H = obj.H, obj.W
		}
	case !player.FallingToGround:
		dx, dy = handleControls(ecs, playerEntry, now, ladders, onPlatform)
	}

	if player.XVel != 0 {
		dx += player.XVel * scale
		player.XVel = gamemath.DecayVelocity(player.XVel, cfg.Player.Friction, cfg.Player.FrictionSnap, scale)
	}

	if player.State == cfg.Falling {
		player.YVel += cfg.Player.Gravity * scale
		dy += player.YVel * scale
	}

	updateHorizontalPosition(level, player, obj, dx)
	updateVerticalPosition(ecs, playerEntry, level, platform, onPlatform, dy)
	obj.Update()
}

func handleControls(ecs *ecs.ECS, playerEntry *donburi.Entry, now time.Duration, ladders ladderCollision, onPlatform bool) (dx, dy float64) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	level := getLevel(ecs)
	scale := frameScale(ecs)

	speed := cfg.Player.Speed
	if player.State == cfg.Climbing {
		speed = cfg.Player.ClimbingSpeed
	}

	if actionPressed(ecs, cfg.ActionMoveLeft) && obj.X > level.Left {
		dx = -speed * scale
		player.MoveLeft = true
		if player.State != cfg.Falling {
			stepFoot(player)
		}
	} else if actionPressed(ecs, cfg.ActionMoveRight) && obj.X < level.Width-obj.W {
		dx = speed * scale
		player.MoveLeft = false
		if player.State != cfg.Falling {
			stepFoot(player)
		}
	}

	upPressed := actionPressed(ecs, cfg.ActionMoveUp)
	downPressed := actionPressed(ecs, cfg.ActionMoveDown)

	// Up must be released before jumping again after topping out a ladder.
	if !upPressed {
		player.StopClimbing = false
	}

	switch {
	case upPressed && !player.StopClimbing:
		inGrace := player.LedgeGrace && now-player.LatestOnPlatformTime < cfg.Player.LedgeGrace
		switch {
		case player.State == cfg.Climbing && dx == 0 && onPlatform && !ladders.collidesHigh:
			// Top of the ladder. No jump unless another ladder continues.
			player.State = cfg.OnPlatform
			player.StopClimbing = true
		case (onPlatform || inGrace || IsOnGround(ecs, playerEntry)) && !(dx == 0 && ladders.collidesHigh):
			PlaySFX(ecs, cfg.SoundJump)
			player.YVel = cfg.Player.JumpVelocity
			player.State = cfg.Falling
			player.LedgeGrace = false
		case player.YVel >= 0 && ladders.collision:
			player.State = cfg.Climbing
			player.YVel = 0
			dy -= cfg.Player.ClimbSpeed * scale
		}
		if player.State == cfg.Climbing {
			stepFoot(player)
		}
	case downPressed && ladders.collision:
		player.State = cfg.Climbing
		player.YVel = 0
		dy += cfg.Player.ClimbSpeed * scale
		stepFoot(player)
	case downPressed && onPlatform:
		player.State = cfg.Dropping
		player.DropStartTime = now
		dy = obj.H + cfg.Player.DropPunch
	}

	return dx, dy
}

func stepFoot(player *components.PlayerData) {
	player.MoveLeftFoot++
	if player.MoveLeftFoot > footCycle {
		player.MoveLeftFoot = 0
	}
}

func updateHorizontalPosition(level *components.LevelData, player *components.PlayerData, obj *components.ObjectData, dx float64) {
	switch {
	case obj.X+dx > level.Width-obj.W:
		obj.X = level.Width - obj.W
		player.XVel = 0
	case obj.X+dx < level.Left:
		obj.X = level.Left
		player.XVel = 0
	case dx != 0:
		obj.X += dx
	}
}

func updateVerticalPosition(ecs *ecs.ECS, playerEntry *donburi.Entry, level *components.LevelData, platform gamemath.Rect, onPlatform bool, dy float64) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	switch {
	case obj.Y+dy >= level.Height-obj.H:
		obj.Y = level.Height - obj.H
		if player.FallingToGround {
			shakeOnImpact(ecs, player.YVel)
			KillPlayer(ecs, playerEntry)
		} else {
			player.State = cfg.OnPlatform
		}
		player.YVel = 0
	case player.FallingToGround:
		player.State = cfg.Falling
		obj.Y += dy
	case player.State == cfg.Dropping:
		obj.Y += dy
		player.State = cfg.Falling
	case player.State == cfg.Climbing:
		obj.Y += dy
	case dy >= 0 && onPlatform:
		// Feet sink into the surface so standing does not flicker to Falling.
		obj.Y = platform.Y - obj.H + cfg.Player.PlatformMargin
		player.YVel = 0
		player.State = cfg.OnPlatform
	default:
		player.State = cfg.Falling
		obj.Y += dy
	}
}

// shakeOnImpact scales the camera shake with how far the impact speed
// exceeds the threshold.
func shakeOnImpact(ecs *ecs.ECS, yVel float64) {
	cam := getCamera(ecs)
	if cam == nil {
		return
	}
	p := cfg.Player
	excess := math.Min(p.ShakeTopVelocity, math.Max(yVel-p.ShakeMinVelocity, 0))
	ShakeCamera(cam, excess/p.ShakeTopVelocity*p.ShakeMaxPower, p.ShakeDuration)
}

// findPlatform returns the first platform in layout order that overlaps r
// and whose bottom is below r's bottom.
func findPlatform(ecs *ecs.ECS, r gamemath.Rect) (gamemath.Rect, bool) {
	candidates := queryRect(ecs, r, tags.ResolvPlatform)
	sortByIndex(candidates, func(e *donburi.Entry) int {
		return components.Platform.Get(e).Index
	})
	for _, entry := range candidates {
		p := components.Object.Get(entry).Rect()
		if r.Bottom() < p.Bottom() {
			return p, true
		}
	}
	return gamemath.Rect{}, false
}

func findLadderCollision(ecs *ecs.ECS, r gamemath.Rect) ladderCollision {
	var result ladderCollision
	for _, entry := range queryRect(ecs, r, tags.ResolvLadder) {
		l := components.Object.Get(entry).Rect()
		result.collision = true
		if l.Y < r.Y && r.Y < l.Bottom() {
			result.collidesHigh = true
		}
	}
	return result
}

func IsPlayerDead(playerEntry *donburi.Entry) bool {
	return components.Player.Get(playerEntry).State == cfg.Dead
}

// IsOnGround reports whether the player stands on the level floor.
func IsOnGround(ecs *ecs.ECS, playerEntry *donburi.Entry) bool {
	level := getLevel(ecs)
	if level == nil {
		return false
	}
	obj := components.Object.Get(playerEntry)
	return obj.Y+obj.H > level.Height-cfg.Player.GroundMargin
}

// KillPlayer moves the player to Dead. Only the first call has effects.
func KillPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.State == cfg.Dead {
		return
	}
	player.State = cfg.Dead

	obj := components.Object.Get(playerEntry)
	PlaySFX(ecs, cfg.SoundDeath)
	components.PlayerDied.Publish(ecs.World, components.PlayerDiedEvent{
		Player:   playerEntry.Entity(),
		Position: math2.Vec2{X: obj.X, Y: obj.Y},
	})
}

// ResurrectPlayer brings a dead player back standing, clearing motion and
// the ragdoll pose. No-op for a live player.
func ResurrectPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.State != cfg.Dead {
		return
	}
	player.State = cfg.OnPlatform
	player.XVel = 0
	player.YVel = 0
	player.FallingToGround = false
	player.StopClimbing = false

	obj := components.Object.Get(playerEntry)
	obj.W = cfg.Player.Width
	obj.H = cfg.Player.Height
	obj.Update()
}

// HitPlayer adds a horizontal impulse unless the player is already flying
// faster than the cap.
func HitPlayer(playerEntry *donburi.Entry, velocity float64) {
	player := components.Player.Get(playerEntry)
	if math.Abs(player.XVel) < cfg.Player.MaxHitVelocity {
		player.XVel += velocity
	}
}

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}
