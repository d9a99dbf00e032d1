package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the level's monotonic clock. Now starts at zero when the
// level is created; Delta is the length of the current frame.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
