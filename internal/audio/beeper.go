//go:build !headless

// Package audio implements the beeper that sounds while the sound timer of
// the machine is active.
package audio

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate  = 44100
	toneHz      = 440
	volume      = 0.15
	bufferDelay = 50 * time.Millisecond
)

// Beeper plays a square wave tone while it is switched on.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *squareWave
}

// New opens the audio device and starts the silent beeper.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferDelay,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	wave := newSquareWave(sampleRate, toneHz, volume)
	player := ctx.NewPlayer(wave)
	player.Play()

	return &Beeper{
		ctx:    ctx,
		player: player,
		wave:   wave,
	}, nil
}

// SetTone implements runner.Audio. It is safe to call from any goroutine.
func (b *Beeper) SetTone(on bool) {
	b.wave.on.Store(on)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	b.wave.on.Store(false)
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
