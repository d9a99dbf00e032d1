package components

import "github.com/yohamta/donburi"

// PlatformData marks a static platform. Index is its position in the
// layout; lower indices win when several platforms qualify.
type PlatformData struct {
	Index int
}

var Platform = donburi.NewComponentType[PlatformData]()

type LadderData struct {
	Index int
}

var Ladder = donburi.NewComponentType[LadderData]()
