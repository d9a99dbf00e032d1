package components

import (
	"time"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State cfg.PlayerStateID
	XVel  float64 // knockback; decays with friction
	YVel  float64 // jump and gravity

	FallingToGround bool // ragdoll pose, input frozen until impact
	StopClimbing    bool // up must be released before climbing again
	MoveLeft        bool
	MoveLeftFoot    int

	LatestOnPlatformTime time.Duration
	LedgeGrace           bool // LatestOnPlatformTime is meaningful
	DropStartTime        time.Duration
}

var Player = donburi.NewComponentType[PlayerData]()
