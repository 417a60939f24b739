package vm

import "fmt"

// State is a copy of the complete machine state.
type State struct {
	Memory    [MemorySize]byte
	Registers Registers
	Stack     []uint16
	Display   Frame
	Timers    Timers
	Keys      uint16

	RunState     RunState
	WaitRegister uint8
	WaitBaseline uint16
	PrevKeys     uint16
}

// Snapshot returns a copy of the machine state that is not affected by
// further execution.
func (v *VM) Snapshot() State {
	stack := make([]uint16, v.stack.depth)
	copy(stack, v.stack.entries[:v.stack.depth])

	return State{
		Memory:       v.memory.data,
		Registers:    v.regs,
		Stack:        stack,
		Display:      v.display.pixels,
		Timers:       v.timers,
		Keys:         v.keypad.Mask(),
		RunState:     v.state,
		WaitRegister: v.waitRegister,
		WaitBaseline: v.waitBaseline,
		PrevKeys:     v.prevKeys,
	}
}

// Restore replaces the machine state with a previously taken snapshot.
// Quirks, random source and logger of the machine are kept.
func (v *VM) Restore(state State) error {
	if len(state.Stack) > StackDepth {
		return fmt.Errorf("%w: snapshot holds %d return addresses", ErrStackOverflow, len(state.Stack))
	}
	if state.RunState != Running && state.RunState != AwaitingKey {
		return fmt.Errorf("invalid run state %d", state.RunState)
	}
	if state.WaitRegister >= RegisterCount {
		return fmt.Errorf("invalid awaiting register %d", state.WaitRegister)
	}

	v.memory.data = state.Memory
	v.regs = state.Registers
	v.stack = Stack{}
	v.stack.depth = copy(v.stack.entries[:], state.Stack)
	v.display.pixels = state.Display
	v.display.dirty = true
	v.timers = state.Timers
	v.keypad.Set(state.Keys)
	v.state = state.RunState
	v.waitRegister = state.WaitRegister
	v.waitBaseline = state.WaitBaseline
	v.prevKeys = state.PrevKeys
	return nil
}
