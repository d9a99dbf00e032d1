package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/ghostclimb/config"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sweep generates a waveform whose frequency moves linearly from start to end.
func sweep(wave int, start, end float64, samples, sampleRate int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := start + (end-start)*t

		switch wave {
		case cfg.WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case cfg.WaveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case cfg.WaveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case cfg.WaveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		phase += freq / float64(sampleRate)
		if phase >= 1.0 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSamples, releaseSamples int) {
	total := len(buf)
	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// toPCM converts mono samples to 16-bit little-endian stereo, the format
// ebiten's audio players consume.
func toPCM(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, s := range buf {
		v := s * gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}

// Synthesize renders a tone to PCM bytes at the given sample rate.
func Synthesize(tone cfg.ToneConfig, sampleRate int, rng *rand.Rand) []byte {
	samples := int(tone.Duration.Seconds() * float64(sampleRate))
	buf := sweep(tone.Wave, tone.StartFreq, tone.EndFreq, samples, sampleRate, rng)
	applyEnvelope(buf,
		int(tone.Attack.Seconds()*float64(sampleRate)),
		int(tone.Release.Seconds()*float64(sampleRate)))
	return toPCM(buf, 0.8)
}
