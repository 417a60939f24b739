package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave_Silent(t *testing.T) {
	wave := newSquareWave(8, 2, 0.5)
	buf := make([]byte, 32)

	n, err := wave.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.Equal(t, make([]byte, 32), buf)
}

func TestSquareWave_Tone(t *testing.T) {
	wave := newSquareWave(8, 2, 0.5) // 4 samples per period
	wave.on.Store(true)
	buf := make([]byte, 8*4)

	_, err := wave.Read(buf)
	assert.NoError(t, err)

	expected := []float32{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i, want := range expected {
		sample := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		assert.Equal(t, want, sample)
	}
}

func TestSquareWave_PartialSample(t *testing.T) {
	wave := newSquareWave(8, 2, 0.5)
	n, err := wave.Read(make([]byte, 6))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
