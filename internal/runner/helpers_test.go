package runner

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMachine(t *testing.T, words ...uint16) *vm.VM {
	t.Helper()

	machine := vm.New(vm.Config{
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Logger: log.NewTestLogger(t),
	})

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}
	assert.NoError(t, machine.Load(program))
	return machine
}

type recordingDisplay struct {
	frames []vm.Frame
}

func (d *recordingDisplay) Render(frame vm.Frame) error {
	d.frames = append(d.frames, frame)
	return nil
}

type scriptedInput struct {
	polls  int
	quitAt int // poll number returning ErrQuit, 0 for never
	press  map[int]uint8
}

func (in *scriptedInput) Poll(keypad *vm.Keypad) error {
	in.polls++
	if in.quitAt > 0 && in.polls >= in.quitAt {
		return ErrQuit
	}
	if key, ok := in.press[in.polls]; ok {
		keypad.Press(key)
	}
	return nil
}

type recordingAudio struct {
	tones []bool
}

func (a *recordingAudio) SetTone(on bool) {
	a.tones = append(a.tones, on)
}
