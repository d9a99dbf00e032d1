// Package leveldata produces level layouts: the procedural room grid and
// Tiled TMX maps. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/ghostclimb/shared/gamemath"
)

// ErrNoPlayerSpawn is returned for TMX maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")

// Layout is a pre-built level: world size plus static platforms and
// ladders in iteration order.
type Layout struct {
	Name      string
	Width     float64
	Height    float64
	Platforms []gamemath.Rect
	Ladders   []gamemath.Rect
	Spawn     SpawnPoint
}

// SpawnPoint is where the player starts. Y is the player's top edge.
type SpawnPoint struct {
	X, Y float64
}

// GridOptions sizes the rooms of a procedural layout.
type GridOptions struct {
	RoomWidth      float64
	RoomHeight     float64
	PlatformHeight float64
	LadderWidth    float64
	LadderHeight   float64
	LadderInset    float64
	StartX         float64
	PlayerHeight   float64
}
