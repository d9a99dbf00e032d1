package components

import (
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds an entity's position and size as a resolv object living
// in the level's collision space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
