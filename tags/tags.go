package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Ghost    = donburi.NewTag().SetName("Ghost")
	Platform = donburi.NewTag().SetName("Platform")
	Ladder   = donburi.NewTag().SetName("Ladder")
)

// Resolv tags for collision queries
const (
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvGhost    = "Ghost"
	ResolvPlatform = "platform"
	ResolvLadder   = "ladder"
)
