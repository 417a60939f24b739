//go:build headless

// Package audio implements the beeper that sounds while the sound timer of
// the machine is active.
package audio

// Beeper is a silent placeholder in builds without audio device support.
type Beeper struct {
	on bool
}

// New returns a silent beeper.
func New() (*Beeper, error) {
	return &Beeper{}, nil
}

// SetTone implements runner.Audio.
func (b *Beeper) SetTone(on bool) {
	b.on = on
}

// Close implements io.Closer.
func (b *Beeper) Close() error {
	b.on = false
	return nil
}
