package assets

import (
	"fmt"
	"math/rand"

	cfg "github.com/automoto/ghostclimb/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM bytes for SFX
	context  *audio.Context
	rng      *rand.Rand
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}

	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate(), l.rng)
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
