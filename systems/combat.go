package systems

import (
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves player/enemy contact after both have moved.
// Landing on an enemy from above kills it and scores; any other contact
// kills the player and ends the pass.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := getPlayer(ecs)
	if !ok || IsPlayerDead(playerEntry) {
		return
	}
	level := getLevel(ecs)
	if level == nil {
		return
	}

	pr := components.Object.Get(playerEntry).Rect()

	hits := queryRect(ecs, pr, tags.ResolvEnemy)
	sortBySerial(hits)

	for _, enemyEntry := range hits {
		if components.Enemy.Get(enemyEntry).State == cfg.EnemyDead {
			continue
		}
		er := components.Object.Get(enemyEntry).Rect()

		if !stompsFromAbove(pr, er) {
			KillPlayer(ecs, playerEntry)
			return
		}

		KillEnemy(ecs, enemyEntry)
		level.Score += ScoreMultiplier(level, RoomBand(level, pr.CenterY()))
		PlaySFX(ecs, cfg.SoundStomp)

		dir := cfg.DirectionRight
		if pr.CenterX() < er.CenterX() {
			dir = cfg.DirectionLeft
		}
		HitPlayer(playerEntry, dir*cfg.Player.StompKnockback)
	}
}

// stompsFromAbove is true when the player's vertical center is strictly
// above the enemy's top edge.
func stompsFromAbove(player, enemy gamemath.Rect) bool {
	return player.CenterY() < enemy.Y
}
