package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSnapshot_Restore(t *testing.T) {
	// CALL $206, LD V1 $01, -, LD DT V3, DRW V0 V0 1, ADD V2 1, JP $20A
	machine := newTestVM(t, ModernQuirks(), 0x2206, 0x6101, 0x0000, 0xF315, 0xD001, 0x7201, 0x120A)
	machine.regs.V[3] = 30
	machine.regs.I = FontStart
	step(t, machine, 3)
	machine.Keypad().Press(0x4)

	snapshot := machine.Snapshot()
	assert.Equal(t, 1, len(snapshot.Stack))
	assert.Equal(t, uint16(0x202), snapshot.Stack[0])
	assert.Equal(t, uint16(1<<0x4), snapshot.Keys)

	step(t, machine, 4)
	machine.TickTimers()
	machine.Keypad().Release(0x4)
	assert.Equal(t, uint8(2), machine.regs.V[2])

	assert.NoError(t, machine.Restore(snapshot))
	assert.Equal(t, snapshot, machine.Snapshot())
	assert.Equal(t, uint8(0), machine.Registers().V[2])
	assert.Equal(t, uint8(30), machine.Timers().Delay)
	assert.Equal(t, 1, machine.StackDepth())
	assert.True(t, machine.Keypad().IsPressed(0x4))

	_, changed := machine.TakeFrame()
	assert.True(t, changed)

	// the snapshot is independent of further execution
	step(t, machine, 1)
	assert.Equal(t, uint8(1), machine.Registers().V[2])
	assert.Equal(t, uint8(0), snapshot.Registers.V[2])
}

func TestSnapshot_RestoreAwaitingKey(t *testing.T) {
	machine := newTestVM(t, ModernQuirks(), 0xF70A)
	step(t, machine, 1)
	snapshot := machine.Snapshot()

	other := newTestVM(t, ModernQuirks())
	assert.NoError(t, other.Restore(snapshot))
	assert.True(t, other.Blocked())

	other.Keypad().Press(0xC)
	step(t, other, 1)
	assert.False(t, other.Blocked())
	assert.Equal(t, uint8(0xC), other.Registers().V[7])
}

func TestSnapshot_RestoreInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*State)
		errMsg string
	}{
		{"stack too deep", func(s *State) { s.Stack = make([]uint16, StackDepth+1) }, "stack overflow"},
		{"run state", func(s *State) { s.RunState = 5 }, "invalid run state"},
		{"wait register", func(s *State) { s.WaitRegister = RegisterCount }, "invalid awaiting register"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newTestVM(t, ModernQuirks(), 0x6001)
			state := machine.Snapshot()
			tt.modify(&state)

			err := machine.Restore(state)
			assert.ErrorContains(t, err, tt.errMsg)

			// the machine is left untouched
			step(t, machine, 1)
			assert.Equal(t, uint8(1), machine.Registers().V[0])
		})
	}
}
