package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPlayerStandsStillOnFloor(t *testing.T) {
	e := newTestLevel(t)
	_, player, obj := mustPlayer(t, e)

	for i := 0; i < 10; i++ {
		step(e)
		require.Equal(t, cfg.OnPlatform, player.State, "frame %d", i)
		require.Equal(t, floorY, obj.Y, "frame %d", i)
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	e := newTestLevel(t)
	_, player, obj := mustPlayer(t, e)

	hold(e, cfg.ActionMoveUp)
	step(e)

	assert.Equal(t, cfg.Falling, player.State)
	assert.Equal(t, cfg.Player.JumpVelocity+cfg.Player.Gravity, player.YVel)
	assert.Equal(t, floorY+cfg.Player.JumpVelocity+cfg.Player.Gravity, obj.Y)
	assert.Contains(t, pendingSFX(e), cfg.SoundJump)

	hold(e)
	for i := 0; i < 100 && player.State != cfg.OnPlatform; i++ {
		step(e)
	}
	assert.Equal(t, cfg.OnPlatform, player.State)
	assert.Equal(t, floorY, obj.Y)
	assert.Zero(t, player.YVel)
}

func TestPlayerLedgeGrace(t *testing.T) {
	walkOff := func(t *testing.T) (*ecs.ECS, *components.PlayerData) {
		e := newTestLevel(t)
		_, player, _ := mustPlayer(t, e)

		placePlayer(e, 700, standingY)
		step(e)
		require.Equal(t, cfg.OnPlatform, player.State)

		// Into the gap between the two low platforms.
		placePlayer(e, 900, standingY)
		step(e)
		require.Equal(t, cfg.Falling, player.State)
		return e, player
	}

	t.Run("jump honored inside the window", func(t *testing.T) {
		e, player := walkOff(t)
		hold(e, cfg.ActionMoveUp)
		step(e)

		assert.Equal(t, cfg.Player.JumpVelocity+cfg.Player.Gravity, player.YVel)
		assert.False(t, player.LedgeGrace)
	})

	t.Run("jump ignored after the window", func(t *testing.T) {
		e, player := walkOff(t)
		AdvanceClock(e, 300*time.Millisecond)
		hold(e, cfg.ActionMoveUp)
		step(e)

		assert.Equal(t, cfg.Player.Gravity, player.YVel)
		assert.NotContains(t, pendingSFX(e), cfg.SoundJump)
	})
}

func TestPlayerMotionScalesWithFrameLength(t *testing.T) {
	tests := []struct {
		name  string
		ticks float64
	}{
		{"one tick", 1},
		{"two ticks", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := time.Duration(tt.ticks) * cfg.Physics.TickDuration

			e := newTestLevel(t)
			_, player, obj := mustPlayer(t, e)
			hold(e, cfg.ActionMoveRight)
			AdvanceClock(e, dt)
			UpdatePlayer(e)
			assert.Equal(t, 100+cfg.Player.Speed*tt.ticks, obj.X)

			e = newTestLevel(t)
			_, player, obj = mustPlayer(t, e)
			hold(e, cfg.ActionMoveUp)
			AdvanceClock(e, dt)
			UpdatePlayer(e)

			yVel := cfg.Player.JumpVelocity + cfg.Player.Gravity*tt.ticks
			assert.Equal(t, yVel, player.YVel)
			assert.Equal(t, floorY+yVel*tt.ticks, obj.Y)
		})
	}
}

func TestPlayerClimbsLadderToPlatform(t *testing.T) {
	e := newTestLevel(t)
	_, player, obj := mustPlayer(t, e)
	placePlayer(e, 415, floorY)

	hold(e, cfg.ActionMoveUp)
	step(e)
	require.Equal(t, cfg.Climbing, player.State)
	require.Equal(t, floorY-cfg.Player.ClimbSpeed, obj.Y)

	for i := 0; i < 100 && player.State == cfg.Climbing; i++ {
		step(e)
	}

	// Topping out stands on the platform without jumping.
	require.Equal(t, cfg.OnPlatform, player.State)
	assert.Equal(t, standingY, obj.Y)
	assert.True(t, player.StopClimbing)
	assert.NotContains(t, pendingSFX(e), cfg.SoundJump)

	// Holding up keeps standing.
	step(e)
	assert.Equal(t, cfg.OnPlatform, player.State)
	assert.Zero(t, player.YVel)

	// Release and press again to jump.
	hold(e)
	step(e)
	hold(e, cfg.ActionMoveUp)
	step(e)
	assert.Equal(t, cfg.Falling, player.State)
	assert.Less(t, player.YVel, 0.0)
}

func TestPlayerClimbsDownFromPlatform(t *testing.T) {
	e := newTestLevel(t)
	_, player, obj := mustPlayer(t, e)
	placePlayer(e, 415, standingY)
	step(e)
	require.Equal(t, cfg.OnPlatform, player.State)

	hold(e, cfg.ActionMoveDown)
	step(e)
	assert.Equal(t, cfg.Climbing, player.State)
	assert.Equal(t, standingY+cfg.Player.ClimbSpeed, obj.Y)
}

func TestPlayerDropsThroughPlatform(t *testing.T) {
	e := newTestLevel(t)
	_, player, obj := mustPlayer(t, e)
	placePlayer(e, 100, standingY)
	step(e)
	require.Equal(t, cfg.OnPlatform, player.State)

	hold(e, cfg.ActionMoveDown)
	step(e)
	assert.Equal(t, cfg.Falling, player.State)
	assert.Equal(t, standingY+cfg.Player.Height+cfg.Player.DropPunch, obj.Y)

	hold(e)
	for i := 0; i < 100 && player.State != cfg.OnPlatform; i++ {
		step(e)
	}
	assert.Equal(t, floorY, obj.Y)
}

func TestPlayerRagdollFallKills(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, obj := mustPlayer(t, e)
	placePlayer(e, 1000, 400)

	for i := 0; i < 120 && player.State != cfg.Dead; i++ {
		step(e)
	}

	require.Equal(t, cfg.Dead, player.State)
	assert.True(t, player.FallingToGround)
	assert.Equal(t, cfg.Player.Height, obj.W)
	assert.Equal(t, cfg.Player.Width, obj.H)
	assert.Equal(t, 1500-cfg.Player.Width, obj.Y)
	assert.Contains(t, pendingSFX(e), cfg.SoundDeath)

	camera := getCamera(e)
	assert.Greater(t, camera.ShakePower, 0.0)

	// The level reacted to the death.
	assert.Equal(t, cfg.Level.StartLives-1, getLevel(e).Lives)
	ghostEntry, ok := getGhost(e)
	require.True(t, ok)
	assert.Equal(t, ghostEntry, camera.Target)
	assert.NotEqual(t, playerEntry, camera.Target)
	assert.True(t, IsLevelFailed(e))
	assert.False(t, IsLevelOver(e))
}

func TestKillPlayerIsIdempotent(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, _ := mustPlayer(t, e)

	deaths := 0
	components.PlayerDied.Subscribe(e.World, func(w donburi.World, event components.PlayerDiedEvent) {
		deaths++
	})

	KillPlayer(e, playerEntry)
	KillPlayer(e, playerEntry)
	UpdateLevelEvents(e)

	assert.Equal(t, cfg.Dead, player.State)
	assert.Equal(t, 1, deaths)
	assert.Equal(t, cfg.Level.StartLives-1, getLevel(e).Lives)

	count := 0
	for _, id := range pendingSFX(e) {
		if id == cfg.SoundDeath {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResurrectPlayer(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, obj := mustPlayer(t, e)

	// No-op while alive.
	player.XVel = 5
	ResurrectPlayer(playerEntry)
	assert.Equal(t, 5.0, player.XVel)

	player.FallingToGround = true
	player.StopClimbing = true
	player.YVel = 44
	obj.W, obj.H = obj.H, obj.W
	KillPlayer(e, playerEntry)

	ResurrectPlayer(playerEntry)
	assert.Equal(t, cfg.OnPlatform, player.State)
	assert.Zero(t, player.XVel)
	assert.Zero(t, player.YVel)
	assert.False(t, player.FallingToGround)
	assert.False(t, player.StopClimbing)
	assert.Equal(t, cfg.Player.Width, obj.W)
	assert.Equal(t, cfg.Player.Height, obj.H)
}

func TestHitPlayerCapsKnockback(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, _ := mustPlayer(t, e)

	HitPlayer(playerEntry, 50)
	assert.Equal(t, 50.0, player.XVel)
	HitPlayer(playerEntry, 60)
	assert.Equal(t, 110.0, player.XVel)
	HitPlayer(playerEntry, 10)
	assert.Equal(t, 110.0, player.XVel)
}

func TestPlayerKnockbackFriction(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, obj := mustPlayer(t, e)

	HitPlayer(playerEntry, 60)
	step(e)
	assert.Equal(t, 160.0, obj.X)
	assert.InDelta(t, 60*cfg.Player.Friction, player.XVel, 1e-9)

	player.XVel = cfg.Player.FrictionSnap
	step(e)
	assert.Zero(t, player.XVel)
}

func TestPlayerClampedToLevel(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, obj := mustPlayer(t, e)
	placePlayer(e, 1968, floorY)

	hold(e, cfg.ActionMoveRight)
	HitPlayer(playerEntry, 20)
	step(e)

	assert.Equal(t, 2000-cfg.Player.Width, obj.X)
	assert.Zero(t, player.XVel)
}

func TestDeadPlayerFallsToFloor(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, obj := mustPlayer(t, e)
	placePlayer(e, 1000, 1400)
	KillPlayer(e, playerEntry)

	for i := 0; i < 20; i++ {
		step(e)
	}
	assert.Equal(t, cfg.Dead, player.State)
	assert.Equal(t, floorY, obj.Y)
}
