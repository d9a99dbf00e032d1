package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision broad phase shared by every spatial entity.
var Space = donburi.NewComponentType[resolv.Space]()
