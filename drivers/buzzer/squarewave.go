package buzzer

import (
	"sync/atomic"

	"buzzer-go/x/mathx"
)

// SquareWave is a ToneDriver that renders the tone as signed 16-bit
// little-endian mono PCM. Read is meant for an audio callback goroutine;
// SetTone and Stop may be called concurrently with it.
type SquareWave struct {
	rate  uint32
	state atomic.Uint64 // phase increment << 16 | amplitude
	phase uint32        // owned by the reader
}

var _ ToneDriver = (*SquareWave)(nil)

const maxAmplitude = 12000

func NewSquareWave(sampleRate int) *SquareWave {
	return &SquareWave{rate: uint32(mathx.Max(sampleRate, 1))}
}

func (w *SquareWave) SampleRate() int { return int(w.rate) }

func (w *SquareWave) SetTone(freqHz uint16, volume uint8) {
	freqHz = mathx.Clamp(freqHz, MinFrequencyHz, MaxFrequencyHz)
	vol := mathx.Min(volume, MaxVolume)
	inc := uint32((uint64(freqHz) << 32) / uint64(w.rate))
	amp := uint64(vol) * maxAmplitude / uint64(MaxVolume)
	w.state.Store(uint64(inc)<<16 | amp)
}

func (w *SquareWave) Stop() { w.state.Store(0) }

func (w *SquareWave) Read(p []byte) (int, error) {
	st := w.state.Load()
	inc := uint32(st >> 16)
	amp := int16(st & 0xFFFF)
	for i := 0; i+1 < len(p); i += 2 {
		v := amp
		if w.phase >= 1<<31 {
			v = -amp
		}
		w.phase += inc
		p[i] = byte(v)
		p[i+1] = byte(uint16(v) >> 8)
	}
	if len(p)%2 == 1 {
		p[len(p)-1] = 0
	}
	return len(p), nil
}
