package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeOps maps the opcode patterns of the retrogolib CHIP-8 table to the
// operand variant they decode to. Patterns that share a mnemonic, like the
// many forms of ld, decode to different operations.
var opcodeOps = map[chip8.OpcodeInfo]Op{
	chip8.Opcode00E0: OpCls,
	chip8.Opcode00EE: OpRet,
	chip8.Opcode1000: OpJp,
	chip8.Opcode2000: OpCall,
	chip8.Opcode3000: OpSeImm,
	chip8.Opcode4000: OpSneImm,
	chip8.Opcode5000: OpSeReg,
	chip8.Opcode6000: OpLdImm,
	chip8.Opcode7000: OpAddImm,
	chip8.Opcode8000: OpLdReg,
	chip8.Opcode8001: OpOr,
	chip8.Opcode8002: OpAnd,
	chip8.Opcode8003: OpXor,
	chip8.Opcode8004: OpAddReg,
	chip8.Opcode8005: OpSub,
	chip8.Opcode8006: OpShr,
	chip8.Opcode8007: OpSubn,
	chip8.Opcode800E: OpShl,
	chip8.Opcode9000: OpSneReg,
	chip8.OpcodeA000: OpLdI,
	chip8.OpcodeB000: OpJpOffset,
	chip8.OpcodeC000: OpRnd,
	chip8.OpcodeD000: OpDrw,
	chip8.OpcodeE09E: OpSkp,
	chip8.OpcodeE0A1: OpSknp,
	chip8.OpcodeF007: OpLdVxDT,
	chip8.OpcodeF00A: OpLdVxK,
	chip8.OpcodeF015: OpLdDTVx,
	chip8.OpcodeF018: OpLdSTVx,
	chip8.OpcodeF01E: OpAddI,
	chip8.OpcodeF029: OpLdF,
	chip8.OpcodeF033: OpLdB,
	chip8.OpcodeF055: OpLdStore,
	chip8.OpcodeF065: OpLdLoad,
}

// Decode decodes an instruction word. It has no side effects and returns an
// error wrapping ErrUnknownInstruction if the word matches no known opcode.
// The operand fields of the returned instruction are filled in either case.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		Word: word,
		X:    uint8(word >> 8 & 0xF),
		Y:    uint8(word >> 4 & 0xF),
		N:    uint8(word & 0xF),
		KK:   uint8(word),
		Addr: word & 0x0FFF,
	}

	firstNibble := word >> 12
	for _, opcode := range chip8.Opcodes[firstNibble] {
		if word&opcode.Info.Mask != opcode.Info.Value {
			continue
		}
		if op, ok := opcodeOps[opcode.Info]; ok {
			ins.Op = op
			return ins, nil
		}
		break
	}

	return ins, fmt.Errorf("%w: $%04X", ErrUnknownInstruction, word)
}
