package leveldata

import (
	"testing"

	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGrid = GridOptions{
	RoomWidth:      400,
	RoomHeight:     300,
	PlatformHeight: 20,
	LadderWidth:    30,
	LadderHeight:   300,
	LadderInset:    10,
	StartX:         100,
	PlayerHeight:   90,
}

func TestRoomGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		platforms     int
		ladders       int
		halfWidth     float64
	}{
		{"default level", 2400, 2300, 12, 30, 1000},
		{"first level", 2000, 1500, 8, 16, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := RoomGrid(tt.width, tt.height, testGrid)

			assert.Len(t, layout.Platforms, tt.platforms)
			assert.Len(t, layout.Ladders, tt.ladders)
			assert.Equal(t, SpawnPoint{X: 100, Y: tt.height - 90}, layout.Spawn)

			require.NotEmpty(t, layout.Platforms)
			left, right := layout.Platforms[0], layout.Platforms[1]
			assert.Equal(t, gamemath.Rect{X: 0, Y: tt.height - 300, W: tt.halfWidth, H: 20}, left)
			assert.Equal(t, tt.width, right.Right())

			world := gamemath.Rect{W: tt.width, H: tt.height}
			for _, l := range layout.Ladders {
				assert.True(t, world.Contains(l), "ladder %+v outside world", l)
			}
		})
	}
}

func TestRoomGridLaddersHangFromPlatforms(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		skippedX      float64
	}{
		{"default level", 2400, 2300, 1210},
		{"first level", 2000, 1500, 810},
		{"widest level", 4000, 3900, 2010},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := RoomGrid(tt.width, tt.height, testGrid)
			require.NotEmpty(t, layout.Ladders)

			for _, l := range layout.Ladders {
				assert.NotEqual(t, tt.skippedX, l.X)
				assert.True(t, underPlatform(layout, l), "ladder at x=%v y=%v has no platform above", l.X, l.Y)
			}
		})
	}
}

func underPlatform(layout Layout, ladder gamemath.Rect) bool {
	for _, p := range layout.Platforms {
		if p.Y == ladder.Y && ladder.X >= p.X && ladder.Right() <= p.Right() {
			return true
		}
	}
	return false
}

func TestLevelSize(t *testing.T) {
	tests := []struct {
		number int
		w, h   float64
	}{
		{0, 2000, 1500},
		{1, 2000, 1500},
		{2, 2400, 1800},
		{6, 4000, 3000},
		{20, 4000, 3900},
	}
	for _, tt := range tests {
		w, h := LevelSize(tt.number, 2000, 1500, 400, 300, 4000, 3900)
		assert.Equal(t, tt.w, w, "level %d width", tt.number)
		assert.Equal(t, tt.h, h, "level %d height", tt.number)
	}
}
