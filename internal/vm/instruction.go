package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies one of the CHIP-8 instructions, distinguishing all operand
// variants that share a mnemonic.
type Op uint8

// Supported instructions, named after their mnemonic and operand variant.
const (
	OpInvalid  Op = iota
	OpCls         // 00E0
	OpRet         // 00EE
	OpJp          // 1nnn
	OpCall        // 2nnn
	OpSeImm       // 3xkk
	OpSneImm      // 4xkk
	OpSeReg       // 5xy0
	OpLdImm       // 6xkk
	OpAddImm      // 7xkk
	OpLdReg       // 8xy0
	OpOr          // 8xy1
	OpAnd         // 8xy2
	OpXor         // 8xy3
	OpAddReg      // 8xy4
	OpSub         // 8xy5
	OpShr         // 8xy6
	OpSubn        // 8xy7
	OpShl         // 8xyE
	OpSneReg      // 9xy0
	OpLdI         // Annn
	OpJpOffset    // Bnnn
	OpRnd         // Cxkk
	OpDrw         // Dxyn
	OpSkp         // Ex9E
	OpSknp        // ExA1
	OpLdVxDT      // Fx07
	OpLdVxK       // Fx0A
	OpLdDTVx      // Fx15
	OpLdSTVx      // Fx18
	OpAddI        // Fx1E
	OpLdF         // Fx29
	OpLdB         // Fx33
	OpLdStore     // Fx55
	OpLdLoad      // Fx65

	opCount
)

// opInstructions maps every operation to the instruction descriptor of its
// mnemonic, taken from the retrogolib opcode table.
var opInstructions = func() [opCount]*chip8.Instruction {
	var instructions [opCount]*chip8.Instruction
	for _, opcodes := range chip8.Opcodes {
		for _, opcode := range opcodes {
			instructions[opcodeOps[opcode.Info]] = opcode.Instruction
		}
	}
	instructions[OpInvalid] = nil
	return instructions
}()

// Instruction is a decoded instruction word with all operand fields extracted.
// Fields that the operation does not use are still filled from their bit positions.
type Instruction struct {
	Op   Op
	Word uint16 // raw instruction word
	X    uint8  // bits 8-11, register index
	Y    uint8  // bits 4-7, register index
	N    uint8  // bits 0-3, 4 bit immediate
	KK   uint8  // bits 0-7, 8 bit immediate
	Addr uint16 // bits 0-11, 12 bit address
}

// descriptor returns the retrogolib instruction descriptor, nil for invalid operations.
func (i Instruction) descriptor() *chip8.Instruction {
	if i.Op >= opCount {
		return nil
	}
	return opInstructions[i.Op]
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	ins := i.descriptor()
	if ins == nil {
		return ""
	}
	return ins.Name
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	ins := i.descriptor()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// String returns the instruction formatted as assembly text with the default quirks.
func (i Instruction) String() string {
	return i.Format(Quirks{})
}

// Format returns the instruction formatted as assembly text. The quirks
// select the operands that are shown for instructions depending on them.
func (i Instruction) Format(quirks Quirks) string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf("unknown $%04X", i.Word)
	}
	if params := i.formatParams(quirks); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operands of the instruction.
func (i Instruction) formatParams(quirks Quirks) string {
	switch i.Op {
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.Addr)
	case OpJpOffset:
		if quirks.JumpOffsetUsesVX {
			return fmt.Sprintf("V%X, $%03X", i.X, i.Addr)
		}
		return fmt.Sprintf("V0, $%03X", i.Addr)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", i.X)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.Addr)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpLdStore:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLdLoad:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
