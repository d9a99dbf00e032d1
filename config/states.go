package config

// PlayerStateID is the player's movement state. Exactly one is active.
type PlayerStateID int

const (
	OnPlatform PlayerStateID = iota
	Falling
	Dropping
	Climbing
	Dead
)

func (s PlayerStateID) String() string {
	switch s {
	case OnPlatform:
		return "OnPlatform"
	case Falling:
		return "Falling"
	case Dropping:
		return "Dropping"
	case Climbing:
		return "Climbing"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// EnemyStateID is the enemy AI state.
type EnemyStateID int

const (
	Patrol EnemyStateID = iota
	Alarm
	Goto
	Attack
	EnemyDead
)

func (s EnemyStateID) String() string {
	switch s {
	case Patrol:
		return "Patrol"
	case Alarm:
		return "Alarm"
	case Goto:
		return "Goto"
	case Attack:
		return "Attack"
	case EnemyDead:
		return "Dead"
	default:
		return "Unknown"
	}
}
