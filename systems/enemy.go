package systems

import (
	"sort"
	"time"

	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/automoto/ghostclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs every enemy's AI in creation order.
func UpdateEnemies(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	now := Now(ecs)
	scale := frameScale(ecs)
	playerPos, playerAlive := livePlayerCenter(ecs)

	for _, enemyEntry := range enemiesInOrder(ecs) {
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.State == cfg.EnemyDead {
			continue
		}

		obj := components.Object.Get(enemyEntry)
		r := obj.Rect()
		pos := math2.Vec2{X: r.CenterX(), Y: r.CenterY()}

		switch enemy.State {
		case cfg.Patrol:
			if playerAlive && gamemath.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y) < cfg.Enemy.AlarmRadius {
				raiseAlarm(ecs, enemyEntry, playerPos, now)
				break
			}
			patrol(enemy, r, scale)
		case cfg.Alarm:
			if now-enemy.StateStart >= cfg.Enemy.AlarmDuration {
				enemy.State = cfg.Patrol
				enemy.DX = cfg.Enemy.Speed
			}
		case cfg.Goto:
			if gamemath.Distance(pos.X, pos.Y, enemy.Target.X, enemy.Target.Y) < cfg.Enemy.ArriveRadius {
				enemy.State = cfg.Attack
				enemy.StateStart = now
				enemy.DX, enemy.DY = 0, 0
				break
			}
			enemy.DX, enemy.DY = gamemath.HomingVelocity(pos.X, pos.Y, enemy.Target.X, enemy.Target.Y, cfg.Enemy.Speed)
		case cfg.Attack:
			if playerAlive && gamemath.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y) < cfg.Enemy.AttackRadius {
				enemy.StateStart = now
				enemy.DX, enemy.DY = gamemath.HomingVelocity(pos.X, pos.Y, playerPos.X, playerPos.Y, cfg.Enemy.Speed)
				break
			}
			enemy.DX, enemy.DY = 0, 0
			if now-enemy.StateStart >= cfg.Enemy.AttackTimeout {
				enemy.State = cfg.Patrol
				enemy.DX = cfg.Enemy.Speed
			}
		}

		obj.X = gamemath.ClampFloat(obj.X+enemy.DX*scale, level.Left, level.Width-obj.W)
		obj.Y = gamemath.ClampFloat(obj.Y+enemy.DY*scale, level.Top, level.Height-obj.H)
		obj.Update()
	}
}

// patrol bounces horizontally inside the patrol area and drifts toward
// its vertical midline.
func patrol(enemy *components.EnemyData, r gamemath.Rect, scale float64) {
	area := enemy.PatrolArea
	speed := cfg.Enemy.Speed

	switch {
	case enemy.DX == 0:
		enemy.DX = speed
	case enemy.DX < 0 && r.X <= area.X:
		enemy.DX = speed
	case enemy.DX > 0 && r.Right() >= area.Right():
		enemy.DX = -speed
	}

	enemy.DY = 0
	if scale > 0 {
		enemy.DY = gamemath.ClampSpeed((area.CenterY()-r.CenterY())/scale, speed)
	}
}

func raiseAlarm(ecs *ecs.ECS, enemyEntry *donburi.Entry, target math2.Vec2, now time.Duration) {
	enemy := components.Enemy.Get(enemyEntry)
	enemy.State = cfg.Alarm
	enemy.StateStart = now
	enemy.DX, enemy.DY = 0, 0

	PlaySFX(ecs, cfg.SoundAlarm)
	components.EnemyAlarmed.Publish(ecs.World, components.EnemyAlarmedEvent{
		Source: enemyEntry.Entity(),
		Target: target,
	})
}

// EnemyGoTo sends an enemy toward target. Attacking and dead enemies
// ignore it.
func EnemyGoTo(enemyEntry *donburi.Entry, target math2.Vec2) bool {
	enemy := components.Enemy.Get(enemyEntry)
	switch enemy.State {
	case cfg.Patrol, cfg.Alarm, cfg.Goto:
		enemy.State = cfg.Goto
		enemy.Target = target
		return true
	}
	return false
}

// KillEnemy is terminal. The enemy leaves the collision space and is
// skipped by every later update. Returns false if it was already dead.
func KillEnemy(ecs *ecs.ECS, enemyEntry *donburi.Entry) bool {
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.State == cfg.EnemyDead {
		return false
	}
	enemy.State = cfg.EnemyDead
	enemy.DX, enemy.DY = 0, 0
	removeFromSpace(ecs, components.Object.Get(enemyEntry).Object)
	return true
}

func enemiesInOrder(ecs *ecs.ECS) []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	sortBySerial(enemies)
	return enemies
}

func sortBySerial(enemies []*donburi.Entry) {
	sort.Slice(enemies, func(i, j int) bool {
		return components.Enemy.Get(enemies[i]).Serial < components.Enemy.Get(enemies[j]).Serial
	})
}

func livePlayerCenter(ecs *ecs.ECS) (math2.Vec2, bool) {
	playerEntry, ok := getPlayer(ecs)
	if !ok || components.Player.Get(playerEntry).State == cfg.Dead {
		return math2.Vec2{}, false
	}
	r := components.Object.Get(playerEntry).Rect()
	return math2.Vec2{X: r.CenterX(), Y: r.CenterY()}, true
}
