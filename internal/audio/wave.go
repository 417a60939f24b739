package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// squareWave is an endless stream of 32 bit float mono samples that is
// silent while switched off.
type squareWave struct {
	on     atomic.Bool
	period int // samples per wave period
	phase  int
	volume float32
}

func newSquareWave(rate, frequency int, volume float32) *squareWave {
	return &squareWave{
		period: rate / frequency,
		volume: volume,
	}
}

// Read implements io.Reader for the audio player.
func (w *squareWave) Read(p []byte) (int, error) {
	on := w.on.Load()
	samples := len(p) / 4

	for i := range samples {
		var sample float32
		if on {
			sample = w.volume
			if w.phase >= w.period/2 {
				sample = -w.volume
			}
		}
		w.phase = (w.phase + 1) % w.period
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(sample))
	}
	return samples * 4, nil
}
