package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testFrame = time.Second / FrameRate

func TestFrame(t *testing.T) {
	// LD F, V0; DRW V0, V0, 5; LD V1, 3; LD ST, V1; JP $208
	machine := newTestMachine(t, 0xF029, 0xD005, 0x6103, 0xF118, 0x1208)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))
	display := &recordingDisplay{}
	input := &scriptedInput{}
	audio := &recordingAudio{}

	assert.NoError(t, Frame(sched, display, input, audio, testFrame))
	assert.Equal(t, 1, input.polls)
	assert.Len(t, display.frames, 1)
	assert.Equal(t, uint8(1), display.frames[0].At(0, 0))
	assert.Equal(t, []bool{true}, audio.tones)

	// no display change, the sound timer runs out
	for range 2 {
		assert.NoError(t, Frame(sched, display, input, audio, testFrame))
	}
	assert.Len(t, display.frames, 1)
	assert.Equal(t, []bool{true, true, false}, audio.tones)
}

func TestFrame_InputBeforeInstructions(t *testing.T) {
	// SKP V0; JP $200; LD V1, 1; JP $206
	machine := newTestMachine(t, 0xE09E, 0x1200, 0x6101, 0x1206)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))
	input := &scriptedInput{press: map[int]uint8{2: 0x0}}

	assert.NoError(t, Frame(sched, &recordingDisplay{}, input, Silent{}, testFrame))
	assert.Equal(t, uint8(0), machine.Registers().V[1])

	assert.NoError(t, Frame(sched, &recordingDisplay{}, input, Silent{}, testFrame))
	assert.Equal(t, uint8(1), machine.Registers().V[1])
}

func TestFrame_Fault(t *testing.T) {
	machine := newTestMachine(t, 0x00EE)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))
	audio := &recordingAudio{}

	err := Frame(sched, &recordingDisplay{}, &scriptedInput{}, audio, testFrame)
	assert.True(t, errors.Is(err, vm.ErrStackUnderflow))
	assert.Equal(t, []bool{false}, audio.tones)
}

func TestLoop_Quit(t *testing.T) {
	machine := newTestMachine(t, 0x1200)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))
	input := &scriptedInput{quitAt: 3}
	audio := &recordingAudio{}

	err := Loop(context.Background(), sched, &recordingDisplay{}, input, audio, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 3, input.polls)
	assert.False(t, audio.tones[len(audio.tones)-1])
}

func TestLoop_Cancel(t *testing.T) {
	machine := newTestMachine(t, 0x1200)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Loop(ctx, sched, &recordingDisplay{}, &scriptedInput{}, Silent{}, 1000)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoop_Fault(t *testing.T) {
	machine := newTestMachine(t, 0xFFFF)
	sched := NewScheduler(machine, 600, false, log.NewTestLogger(t))

	err := Loop(context.Background(), sched, &recordingDisplay{}, &scriptedInput{}, Silent{}, 1000)
	assert.True(t, vm.IsDecodeFault(err))
}
