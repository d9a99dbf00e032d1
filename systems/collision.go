package systems

import (
	"math"
	"sort"

	"github.com/automoto/ghostclimb/components"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getSpace returns the level's collision space, nil before the level exists.
func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// queryRect returns the entries of every object carrying tag whose bounds
// overlap r. Cells are scanned one beyond the rect so objects touching a
// cell border are not missed; the exact test is gamemath.Collides.
func queryRect(ecs *ecs.ECS, r gamemath.Rect, tag string) []*donburi.Entry {
	space := getSpace(ecs)
	if space == nil {
		return nil
	}

	minX, minY := space.WorldToSpace(r.X, r.Y)
	maxX, maxY := space.WorldToSpace(math.Ceil(r.Right()), math.Ceil(r.Bottom()))

	seen := map[*resolv.Object]bool{}
	var found []*donburi.Entry
	for cy := minY - 1; cy <= maxY+1; cy++ {
		for cx := minX - 1; cx <= maxX+1; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if seen[obj] || !obj.HasTags(tag) {
					continue
				}
				seen[obj] = true
				other := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
				if !gamemath.Collides(r, other) {
					continue
				}
				if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
					found = append(found, entry)
				}
			}
		}
	}
	return found
}

// sortByIndex orders static level pieces by their layout index.
func sortByIndex(entries []*donburi.Entry, index func(*donburi.Entry) int) {
	sort.Slice(entries, func(i, j int) bool {
		return index(entries[i]) < index(entries[j])
	})
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}
}

func removeFromSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if space := getSpace(ecs); space != nil {
		space.Remove(obj)
	}
}
