package components

import (
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
