// Package vm implements a CHIP-8 virtual machine.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for
// simple games on early microcomputers. The machine consists of:
//   - 4KB of memory (0x000-MaxAddress), the font glyph table at FontStart
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - the index register I and the program counter
//   - a call stack of StackDepth return addresses
//   - a 64x32 monochrome display buffer
//   - delay and sound timers decrementing at 60 Hz
//   - a 16 key hex keypad
//
// # Execution Model
//
// A driver calls Step to execute one instruction and, independently of the
// instruction rate, TickTimers at TimerFrequency. The machine never reads
// wall-clock time.
//
// The Fx0A instruction suspends the machine until a key goes down: Blocked
// reports the suspension and Step only polls the keypad until a key press
// transition is seen. The keypad may be updated from another goroutine.
//
// # Quirks
//
// Several instructions behave differently across historical interpreters.
// The Quirks configuration selects the behavior at run time:
//   - 8xy6/8xyE shift Vy or Vx
//   - Bnnn jumps relative to V0 or Vx
//   - Fx1E masks I to 12 bits or lets it carry past $FFF
//   - Fx55/Fx65 leave I unchanged or advance it
//   - Ex9E/ExA1 test a held key or a key press transition
//   - Dxyn clips or wraps sprites at the display edge
//
// # Errors
//
// Unknown instruction words, call stack overflows and underflows and memory
// accesses past MaxAddress stop the instruction with a *Fault that unwraps
// to the matching sentinel error.
//
// # Usage Example
//
//	machine := vm.New(vm.Config{Quirks: vm.ModernQuirks()})
//	if err := machine.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := machine.Step(); err != nil {
//			return err
//		}
//	}
package vm
