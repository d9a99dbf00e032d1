package systems

import (
	"log"
	"sync"

	"github.com/automoto/ghostclimb/assets"
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and renders every sound effect.
// Until it is called, queued sounds are discarded.
func InitAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)

		for id := range cfg.Sound.Tones {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				log.Printf("audio: %v", err)
			}
		}
	})
}

// PlaySFX queues a sound effect for the end of the frame.
func PlaySFX(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio drains the pending SFX queue.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if globalAudioLoader != nil {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
