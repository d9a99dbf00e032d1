package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/shared/leveldata"
	"github.com/automoto/ghostclimb/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// StartLevel builds a level into an empty world: the level itself, its
// camera following the player, and the event wiring.
func StartLevel(ecs *ecs.ECS, layout leveldata.Layout, opts factory.LevelOptions, viewWidth, viewHeight float64) *donburi.Entry {
	levelEntry := factory.CreateLevel(ecs, layout, opts)
	factory.CreateCamera(ecs, viewWidth, viewHeight)
	SubscribeLevelEvents(ecs)

	cam := getCamera(ecs)
	if playerEntry, ok := getPlayer(ecs); ok {
		CameraFollow(cam, playerEntry)
		frameTarget(cam, components.Level.Get(levelEntry))
	}

	log.Printf("level %d (%s) %.0fx%.0f, %d platforms, %d ladders",
		opts.Number, layout.Name, layout.Width, layout.Height, len(layout.Platforms), len(layout.Ladders))
	return levelEntry
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getRandom(ecs *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Random.Get(entry).Rand
}

// BandCount is the number of room bands stacked in the level.
func BandCount(level *components.LevelData) int {
	n := int(level.Height / cfg.Level.RoomHeight)
	if n < 1 {
		return 1
	}
	return n
}

// RoomBand returns the band containing world height y. Band 0 sits on the
// floor.
func RoomBand(level *components.LevelData, y float64) int {
	band := int(math.Floor((level.Height - y) / cfg.Level.RoomHeight))
	if band < 0 {
		return 0
	}
	if top := BandCount(level) - 1; band > top {
		return top
	}
	return band
}

// ScoreMultiplier is what a stomp in band is worth.
func ScoreMultiplier(level *components.LevelData, band int) int {
	if level.Scoring == cfg.ScoringFlat {
		return 1
	}
	m := band + 1
	if m < 1 {
		m = 1
	}
	if m > cfg.Level.MaxMultiplier {
		m = cfg.Level.MaxMultiplier
	}
	return m
}

// BandArea is the patrol rectangle of a band, inset from the side walls.
func BandArea(level *components.LevelData, band int) gamemath.Rect {
	margin := cfg.Enemy.PatrolMargin
	top := level.Height - float64(band+1)*cfg.Level.RoomHeight
	return gamemath.NewRect(level.Left+margin, top, level.Width-level.Left-2*margin, cfg.Level.RoomHeight)
}

// IsLevelOver is true once every life is spent.
func IsLevelOver(ecs *ecs.ECS) bool {
	level := getLevel(ecs)
	return level != nil && level.Lives <= 0
}

// IsLevelFailed is true while the player is dead, with or without lives
// left.
func IsLevelFailed(ecs *ecs.ECS) bool {
	playerEntry, ok := getPlayer(ecs)
	return ok && IsPlayerDead(playerEntry)
}

func IsLevelFinished(ecs *ecs.ECS) bool {
	level := getLevel(ecs)
	return level != nil && level.Finished
}

// SubscribeLevelEvents hooks the level's reactions to player death and
// enemy alarms. Call once per world.
func SubscribeLevelEvents(ecs *ecs.ECS) {
	components.PlayerDied.Subscribe(ecs.World, func(w donburi.World, event components.PlayerDiedEvent) {
		onPlayerDied(ecs, event)
	})
	components.EnemyAlarmed.Subscribe(ecs.World, func(w donburi.World, event components.EnemyAlarmedEvent) {
		onEnemyAlarmed(ecs, event)
	})
}

// UpdateLevelEvents drains the events raised during this frame.
func UpdateLevelEvents(ecs *ecs.ECS) {
	components.PlayerDied.ProcessEvents(ecs.World)
	components.EnemyAlarmed.ProcessEvents(ecs.World)
}

func onPlayerDied(ecs *ecs.ECS, event components.PlayerDiedEvent) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	if level.Lives > 0 {
		level.Lives--
	}
	log.Printf("player died at (%.0f, %.0f), %d lives left", event.Position.X, event.Position.Y, level.Lives)

	if level.Lives <= 0 {
		return
	}
	if _, exists := getGhost(ecs); exists {
		return
	}

	x := gamemath.ClampFloat(event.Position.X, level.Left, level.Width-cfg.Ghost.Width)
	y := gamemath.ClampFloat(event.Position.Y, level.Top, level.Height-cfg.Ghost.Height)
	ghostEntry := factory.CreateGhost(ecs, x, y, Now(ecs))

	if cam := getCamera(ecs); cam != nil {
		CameraFollow(cam, ghostEntry)
	}
}

// onEnemyAlarmed sends every other enemy to a jittered point around the
// spotted player.
func onEnemyAlarmed(ecs *ecs.ECS, event components.EnemyAlarmedEvent) {
	level := getLevel(ecs)
	rng := getRandom(ecs)
	if level == nil || rng == nil {
		return
	}

	jitter := cfg.Enemy.AlertJitter
	for _, enemyEntry := range enemiesInOrder(ecs) {
		if enemyEntry.Entity() == event.Source {
			continue
		}
		if components.Enemy.Get(enemyEntry).State == cfg.EnemyDead {
			continue
		}
		target := math2.Vec2{
			X: gamemath.ClampFloat(event.Target.X+(rng.Float64()*2-1)*jitter, level.Left, level.Width),
			Y: gamemath.ClampFloat(event.Target.Y+(rng.Float64()*2-1)*jitter, level.Top, level.Height),
		}
		EnemyGoTo(enemyEntry, target)
	}
}

// UpdateWaves spawns the first wave immediately and another one every
// wave interval after that.
func UpdateWaves(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil || level.Finished {
		return
	}
	if level.EnemyWaveCount == 0 || Now(ecs)-level.LastEnemyAddTime >= cfg.Level.WaveInterval {
		SpawnEnemyWave(ecs)
	}
}

// SpawnEnemyWave adds up to WaveSize enemies to random bands. The band the
// player is in is skipped; the first enemy of the first wave always goes
// to band 1.
func SpawnEnemyWave(ecs *ecs.ECS) []*donburi.Entry {
	level := getLevel(ecs)
	rng := getRandom(ecs)
	if level == nil || rng == nil {
		return nil
	}

	bands := BandCount(level)
	playerBand := -1
	if playerEntry, ok := getPlayer(ecs); ok {
		playerBand = RoomBand(level, components.Object.Get(playerEntry).Rect().CenterY())
	}

	var spawned []*donburi.Entry
	for i := 0; i < cfg.Level.WaveSize; i++ {
		var band int
		if level.EnemyWaveCount == 0 && i == 0 {
			band = min(1, bands-1)
		} else {
			band = rng.Intn(bands)
			if band == playerBand {
				continue
			}
		}

		area := BandArea(level, band)
		x := area.X + rng.Float64()*math.Max(area.W-cfg.Enemy.Width, 0)
		y := area.CenterY() - cfg.Enemy.Height/2

		level.EnemySerial++
		spawned = append(spawned, factory.CreateEnemy(ecs, x, y, area, level.EnemySerial))
	}

	level.EnemyWaveCount++
	level.LastEnemyAddTime = Now(ecs)
	return spawned
}

// UpdateLevelProgress marks the level finished once the player stands in
// the top band.
func UpdateLevelProgress(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil || level.Finished {
		return
	}
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	if components.Player.Get(playerEntry).State != cfg.OnPlatform {
		return
	}
	r := components.Object.Get(playerEntry).Rect()
	if RoomBand(level, r.CenterY()) < BandCount(level)-1 {
		return
	}

	level.Finished = true
	level.FinishedAt = Now(ecs)
	log.Printf("level %d finished, score %d", level.Number, level.Score)
}
