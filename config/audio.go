package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDeath
	SoundStomp
	SoundAlarm
	SoundMenuSelect
)

// Waveform names for synthesized effects
const (
	WaveSine = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneConfig describes one synthesized sound: a frequency sweep with an
// attack/release envelope.
type ToneConfig struct {
	Wave      int
	StartFreq float64
	EndFreq   float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synth parameters
type SoundConfig struct {
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundJump: {
				Wave: WaveSquare, StartFreq: 330, EndFreq: 660,
				Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond,
			},
			SoundDeath: {
				Wave: WaveSaw, StartFreq: 440, EndFreq: 55,
				Duration: 700 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 300 * time.Millisecond,
			},
			SoundStomp: {
				Wave: WaveNoise, StartFreq: 0, EndFreq: 0,
				Duration: 150 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 100 * time.Millisecond,
			},
			SoundAlarm: {
				Wave: WaveSquare, StartFreq: 880, EndFreq: 990,
				Duration: 250 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond,
			},
			SoundMenuSelect: {
				Wave: WaveSine, StartFreq: 988, EndFreq: 1318,
				Duration: 100 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond,
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStomp: 1.5,
			SoundAlarm: 0.5,
		},
	}
}
