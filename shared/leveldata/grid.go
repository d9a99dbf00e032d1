package leveldata

import (
	"fmt"

	"github.com/automoto/ghostclimb/shared/gamemath"
)

// RoomGrid builds the tower layout: one row of platforms per room band
// above the floor, split into a left and a right half with a gap in the
// middle, and ladders hanging from each row down to the row below.
// Ladder columns that would fall in the gap are left out.
func RoomGrid(width, height float64, opts GridOptions) Layout {
	roomCountX := int(width / opts.RoomWidth)
	roomCountY := int(height / opts.RoomHeight)
	halfWidth := float64(roomCountX-1) * opts.RoomWidth / 2

	layout := Layout{
		Name:   fmt.Sprintf("grid-%.0fx%.0f", width, height),
		Width:  width,
		Height: height,
		Spawn: SpawnPoint{
			X: opts.StartX,
			Y: height - opts.PlayerHeight,
		},
	}

	for yi := 1; yi < roomCountY; yi++ {
		y := height - float64(yi)*opts.RoomHeight

		layout.Platforms = append(layout.Platforms,
			gamemath.NewRect(0, y, halfWidth, opts.PlatformHeight),
			gamemath.NewRect(width-halfWidth, y, halfWidth, opts.PlatformHeight),
		)

		for xi := 0; xi < roomCountX; xi++ {
			x := float64(xi)*opts.RoomWidth + opts.LadderInset
			if x+opts.LadderWidth > halfWidth && x < width-halfWidth {
				continue
			}
			layout.Ladders = append(layout.Ladders,
				gamemath.NewRect(x, y, opts.LadderWidth, opts.LadderHeight))
		}
	}

	return layout
}

// LevelSize returns the world size for a level number. Levels grow by one
// room in each direction per number, up to the given maximum.
func LevelSize(number int, baseW, baseH, growW, growH, maxW, maxH float64) (float64, float64) {
	if number < 1 {
		number = 1
	}
	w := baseW + growW*float64(number-1)
	h := baseH + growH*float64(number-1)
	if w > maxW {
		w = maxW
	}
	if h > maxH {
		h = maxH
	}
	return w, h
}
