// Package runner drives a CHIP-8 machine in real time: it paces instructions
// and timers, moves frames to a display, feeds host input into the keypad
// and toggles the beeper.
package runner

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/vm"
)

// ErrQuit is returned by an Input when the user asked to end the emulation.
var ErrQuit = errors.New("quit requested")

// Display presents frames of the machine display buffer.
type Display interface {
	// Render is called with the display buffer whenever it changed.
	Render(frame vm.Frame) error
}

// Input moves host key state into the machine keypad.
type Input interface {
	// Poll is called once per frame before instructions execute. It returns
	// ErrQuit to end the emulation.
	Poll(keypad *vm.Keypad) error
}

// Audio is a beeper that sounds while the sound timer is active.
type Audio interface {
	SetTone(on bool)
}

// Frontend owns the host side of an emulation run until it ends.
type Frontend interface {
	Run(ctx context.Context, sched *Scheduler, audio Audio) error
}

// Silent is an Audio that never makes a sound.
type Silent struct{}

// SetTone implements Audio.
func (Silent) SetTone(bool) {}
