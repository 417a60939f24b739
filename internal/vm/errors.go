package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownInstruction is returned when an instruction word matches no known opcode.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrStackOverflow is returned when a call exceeds the maximum call depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrMemoryOutOfBounds is returned when an instruction accesses memory past MaxAddress.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")

	// ErrProgramTooLarge is returned when a program image does not fit into program memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// Fault describes an error that stopped the execution of an instruction.
// It carries the machine state needed to locate the failure and unwraps
// to one of the sentinel errors of this package.
type Fault struct {
	PC         uint16 // address the faulting instruction was fetched from
	Word       uint16 // raw instruction word
	StackDepth int    // call stack depth at the time of the fault
	Err        error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at $%03X (word $%04X, stack depth %d)", f.Err, f.PC, f.Word, f.StackDepth)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsDecodeFault returns whether the error is a fault caused by an unknown instruction word.
func IsDecodeFault(err error) bool {
	var fault *Fault
	return errors.As(err, &fault) && errors.Is(fault.Err, ErrUnknownInstruction)
}
