package systems

import (
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// PlayerSnapshot is every piece of player state an update reads.
type PlayerSnapshot struct {
	X     float64           `json:"x"`
	Y     float64           `json:"y"`
	W     float64           `json:"w"`
	H     float64           `json:"h"`
	XVel  float64           `json:"xVel"`
	YVel  float64           `json:"yVel"`
	State cfg.PlayerStateID `json:"state"`

	FallingToGround bool `json:"fallingToGround,omitempty"`
	StopClimbing    bool `json:"stopClimbing,omitempty"`
	MoveLeft        bool `json:"moveLeft,omitempty"`
	MoveLeftFoot    int  `json:"moveLeftFoot,omitempty"`

	LatestOnPlatformTime time.Duration `json:"latestOnPlatformTime"`
	LedgeGrace           bool          `json:"ledgeGrace,omitempty"`
	DropStartTime        time.Duration `json:"dropStartTime"`
}

type EnemySnapshot struct {
	X          float64          `json:"x"`
	Y          float64          `json:"y"`
	DX         float64          `json:"dx"`
	DY         float64          `json:"dy"`
	State      cfg.EnemyStateID `json:"state"`
	StateStart time.Duration    `json:"stateStart"`
	Target     math2.Vec2       `json:"target"`
	PatrolArea gamemath.Rect    `json:"patrolArea"`
	Serial     int              `json:"serial"`
}

func SnapshotPlayer(playerEntry *donburi.Entry) PlayerSnapshot {
	p := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	return PlayerSnapshot{
		X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		XVel:                 p.XVel,
		YVel:                 p.YVel,
		State:                p.State,
		FallingToGround:      p.FallingToGround,
		StopClimbing:         p.StopClimbing,
		MoveLeft:             p.MoveLeft,
		MoveLeftFoot:         p.MoveLeftFoot,
		LatestOnPlatformTime: p.LatestOnPlatformTime,
		LedgeGrace:           p.LedgeGrace,
		DropStartTime:        p.DropStartTime,
	}
}

// RestorePlayer overwrites the player's state with s.
func RestorePlayer(playerEntry *donburi.Entry, s PlayerSnapshot) {
	components.Player.SetValue(playerEntry, components.PlayerData{
		State:                s.State,
		XVel:                 s.XVel,
		YVel:                 s.YVel,
		FallingToGround:      s.FallingToGround,
		StopClimbing:         s.StopClimbing,
		MoveLeft:             s.MoveLeft,
		MoveLeftFoot:         s.MoveLeftFoot,
		LatestOnPlatformTime: s.LatestOnPlatformTime,
		LedgeGrace:           s.LedgeGrace,
		DropStartTime:        s.DropStartTime,
	})
	obj := components.Object.Get(playerEntry)
	obj.X, obj.Y, obj.W, obj.H = s.X, s.Y, s.W, s.H
	obj.Update()
}

func SnapshotEnemy(enemyEntry *donburi.Entry) EnemySnapshot {
	e := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	return EnemySnapshot{
		X: obj.X, Y: obj.Y,
		DX:         e.DX,
		DY:         e.DY,
		State:      e.State,
		StateStart: e.StateStart,
		Target:     e.Target,
		PatrolArea: e.PatrolArea,
		Serial:     e.Serial,
	}
}

func RestoreEnemy(enemyEntry *donburi.Entry, s EnemySnapshot) {
	components.Enemy.SetValue(enemyEntry, components.EnemyData{
		State:      s.State,
		DX:         s.DX,
		DY:         s.DY,
		StateStart: s.StateStart,
		Target:     s.Target,
		PatrolArea: s.PatrolArea,
		Serial:     s.Serial,
	})
	obj := components.Object.Get(enemyEntry)
	obj.X, obj.Y = s.X, s.Y
	obj.Update()
}
