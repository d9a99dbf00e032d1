package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64
	Height float64
	StartX float64 // Spawn X; Y is always "standing on the floor"

	// Movement
	Speed         float64 // units per frame
	ClimbingSpeed float64 // horizontal speed while on a ladder
	ClimbSpeed    float64 // vertical ladder step per frame
	JumpVelocity  float64
	Gravity       float64

	DeadlyFallingSpeed float64       // yVel above this starts the ragdoll fall
	LedgeGrace         time.Duration // jump still allowed this long after leaving a platform
	DropPunch          float64       // extra push below the platform when dropping through
	PlatformMargin     float64       // how far the feet sink into a platform when standing
	GroundMargin       float64

	// Knockback
	Friction       float64 // xVel multiplier per frame
	FrictionSnap   float64 // below this xVel snaps to 0
	MaxHitVelocity float64 // hits are ignored while |xVel| is above this
	StompKnockback float64

	// Ragdoll impact shake
	ShakeMinVelocity float64 // impacts slower than this do not shake
	ShakeTopVelocity float64
	ShakeMaxPower    float64
	ShakeDuration    time.Duration
}

// EnemyConfig contains enemy AI configuration
type EnemyConfig struct {
	Width  float64
	Height float64
	Speed  float64

	AlarmRadius   float64
	AlarmDuration time.Duration
	ArriveRadius  float64 // Goto becomes Attack inside this distance
	AttackRadius  float64
	AttackTimeout time.Duration
	AlertJitter   float64 // max offset per axis for alerted siblings
	PatrolMargin  float64 // horizontal inset of patrol areas from the level edges
}

// GhostConfig contains ghost respawn configuration
type GhostConfig struct {
	Width    float64
	Height   float64
	Speed    float64
	Lifetime time.Duration
	FadeIn   time.Duration
}

// ScoringMode selects how a stomp is scored.
type ScoringMode int

const (
	ScoringDepth ScoringMode = iota // multiplier grows with the room band
	ScoringFlat                     // every stomp is worth one point
)

func (m ScoringMode) String() string {
	switch m {
	case ScoringFlat:
		return "flat"
	default:
		return "depth"
	}
}

// ParseScoringMode maps a flag value to a ScoringMode.
func ParseScoringMode(s string) (ScoringMode, bool) {
	switch s {
	case "depth", "":
		return ScoringDepth, true
	case "flat":
		return ScoringFlat, true
	}
	return ScoringDepth, false
}

// LevelConfig contains level layout and progression configuration
type LevelConfig struct {
	RoomWidth      float64
	RoomHeight     float64
	PlatformHeight float64
	LadderWidth    float64
	LadderHeight   float64

	BaseWidth  float64
	BaseHeight float64
	GrowWidth  float64 // added per level number
	GrowHeight float64
	MaxWidth   float64
	MaxHeight  float64

	StartLives    int
	WaveInterval  time.Duration
	WaveSize      int
	MaxMultiplier int
	Scoring       ScoringMode
	FinishDelay   time.Duration // pause between finishing and the next level
	MaxLevel      int
	SpaceCellSize int
}

// PhysicsConfig contains simulation timing
type PhysicsConfig struct {
	TPS          int
	TickDuration time.Duration // one nominal frame; velocities are per tick
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DefaultShakePower    float64
	DefaultShakeDuration time.Duration
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HUDMargin     float64
	HUDFontSize   float64
	TitleFontSize float64
	BigFontSize   float64
	TextSpacing   float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	StartLevel int    // Level number to start from
	Layout     string // TMX layout name; empty uses the room grid
	Overlay    bool   // Draw collision objects
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Ghost GhostConfig
var Level LevelConfig
var Physics PhysicsConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	LadderRail   = color.RGBA{R: 100, G: 60, B: 60, A: 255}
	LadderStep   = color.RGBA{R: 80, G: 20, B: 20, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Seed:   0, // 0 seeds from the wall clock
	}

	Physics = PhysicsConfig{
		TPS:          60,
		TickDuration: time.Second / 60,
	}

	Player = PlayerConfig{
		Width:  30,
		Height: 90,
		StartX: 100,

		Speed:         7,
		ClimbingSpeed: 2,
		ClimbSpeed:    6,
		JumpVelocity:  -20,
		Gravity:       1,

		DeadlyFallingSpeed: 40,
		LedgeGrace:         200 * time.Millisecond,
		DropPunch:          25,
		PlatformMargin:     5,
		GroundMargin:       5,

		Friction:       0.97,
		FrictionSnap:   4,
		MaxHitVelocity: 100,
		StompKnockback: 12,

		ShakeMinVelocity: 20,
		ShakeTopVelocity: 80,
		ShakeMaxPower:    20,
		ShakeDuration:    500 * time.Millisecond,
	}

	Enemy = EnemyConfig{
		Width:  30,
		Height: 30,
		Speed:  5,

		AlarmRadius:   200,
		AlarmDuration: 2000 * time.Millisecond,
		ArriveRadius:  100,
		AttackRadius:  350,
		AttackTimeout: 4000 * time.Millisecond,
		AlertJitter:   700,
		PatrolMargin:  60,
	}

	Ghost = GhostConfig{
		Width:    30,
		Height:   90,
		Speed:    7,
		Lifetime: 5000 * time.Millisecond,
		FadeIn:   3000 * time.Millisecond,
	}

	Level = LevelConfig{
		RoomWidth:      400,
		RoomHeight:     300,
		PlatformHeight: 20,
		LadderWidth:    30,
		LadderHeight:   300,

		BaseWidth:  2000,
		BaseHeight: 1500,
		GrowWidth:  400,
		GrowHeight: 300,
		MaxWidth:   4000,
		MaxHeight:  3900,

		StartLives:    3,
		WaveInterval:  10 * time.Second,
		WaveSize:      4,
		MaxMultiplier: 10,
		Scoring:       ScoringDepth,
		FinishDelay:   1500 * time.Millisecond,
		MaxLevel:      9,
		SpaceCellSize: 50,
	}

	Camera = CameraConfig{
		DefaultShakePower:    8,
		DefaultShakeDuration: 500 * time.Millisecond,
	}

	UI = UIConfig{
		HUDMargin:     20,
		HUDFontSize:   20,
		TitleFontSize: 32,
		BigFontSize:   50,
		TextSpacing:   40,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:   false,
		StartLevel: 1,
	}
}
