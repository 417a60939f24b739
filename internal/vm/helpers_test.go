package vm

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestVM returns a machine with a deterministic random source and the
// given instruction words loaded at ProgramStart.
func newTestVM(t *testing.T, quirks Quirks, words ...uint16) *VM {
	t.Helper()

	machine := New(Config{
		Quirks: quirks,
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Logger: log.NewTestLogger(t),
		Trace:  true,
	})

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}
	assert.NoError(t, machine.Load(program))
	return machine
}

// step executes the given number of instructions and fails the test on any error.
func step(t *testing.T, machine *VM, count int) {
	t.Helper()
	for range count {
		assert.NoError(t, machine.Step())
	}
}
