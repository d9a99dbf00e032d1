package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGhostSpawnsOnDeath(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, _, _ := mustPlayer(t, e)
	placePlayer(e, 700, floorY)
	KillPlayer(e, playerEntry)

	_, ok := getGhost(e)
	require.False(t, ok, "ghost waits for the event queue")

	UpdateLevelEvents(e)
	ghostEntry, ok := getGhost(e)
	require.True(t, ok)

	obj := components.Object.Get(ghostEntry)
	assert.Equal(t, 700.0, obj.X)
	assert.Equal(t, floorY, obj.Y)
	assert.Equal(t, ghostEntry, getCamera(e).Target)
}

func TestGhostFadesIn(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, _, _ := mustPlayer(t, e)
	KillPlayer(e, playerEntry)
	UpdateLevelEvents(e)
	ghostEntry, ok := getGhost(e)
	require.True(t, ok)
	ghost := components.Ghost.Get(ghostEntry)

	AdvanceClock(e, cfg.Ghost.FadeIn/2)
	UpdateGhost(e)
	assert.InDelta(t, 0.5, ghost.Alpha, 0.01)

	AdvanceClock(e, cfg.Ghost.FadeIn)
	UpdateGhost(e)
	assert.InDelta(t, 1.0, ghost.Alpha, 1e-6)
}

func TestGhostMovesFreely(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, _, _ := mustPlayer(t, e)
	placePlayer(e, 700, floorY)
	KillPlayer(e, playerEntry)
	UpdateLevelEvents(e)
	ghostEntry, _ := getGhost(e)
	obj := components.Object.Get(ghostEntry)

	hold(e, cfg.ActionMoveUp, cfg.ActionMoveLeft)
	UpdateClock(e)
	UpdateGhost(e)
	assert.Equal(t, 700-cfg.Ghost.Speed, obj.X)
	assert.Equal(t, floorY-cfg.Ghost.Speed, obj.Y)

	// No gravity, and the floor is a hard stop.
	hold(e, cfg.ActionMoveDown)
	for i := 0; i < 10; i++ {
		UpdateClock(e)
		UpdateGhost(e)
	}
	assert.Equal(t, floorY, obj.Y)
}

func TestGhostExpiryResurrectsPlayerOnce(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, player, playerObj := mustPlayer(t, e)
	placePlayer(e, 700, floorY)
	KillPlayer(e, playerEntry)
	UpdateLevelEvents(e)
	ghostEntry, ok := getGhost(e)
	require.True(t, ok)

	ghostObj := components.Object.Get(ghostEntry)
	ghostObj.X, ghostObj.Y = 1500, 600
	ghostObj.Update()

	AdvanceClock(e, cfg.Ghost.Lifetime-time.Millisecond)
	UpdateGhost(e)
	left, ok := GhostTimeLeft(e)
	require.True(t, ok)
	assert.Equal(t, 1, left)
	assert.Equal(t, cfg.Dead, player.State)

	AdvanceClock(e, time.Millisecond)
	UpdateGhost(e)

	_, ok = getGhost(e)
	assert.False(t, ok)
	assert.False(t, ghostEntry.Valid())
	assert.Equal(t, cfg.OnPlatform, player.State)
	assert.Equal(t, 1500.0, playerObj.X)
	assert.Equal(t, 600.0, playerObj.Y)
	assert.Equal(t, playerEntry, getCamera(e).Target)

	// Later updates do not repeat the respawn.
	playerObj.X = 1600
	AdvanceClock(e, time.Second)
	UpdateGhost(e)
	assert.Equal(t, 1600.0, playerObj.X)
	_, ok = GhostTimeLeft(e)
	assert.False(t, ok)
}

func TestNoGhostOnLastLife(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, _, _ := mustPlayer(t, e)
	getLevel(e).Lives = 1

	KillPlayer(e, playerEntry)
	UpdateLevelEvents(e)

	_, ok := getGhost(e)
	assert.False(t, ok)
	assert.True(t, IsLevelOver(e))
	assert.Zero(t, getLevel(e).Lives)
}
