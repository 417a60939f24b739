package vm

import "fmt"

// execute applies the semantics of a decoded instruction. All results are
// computed from the register values before the instruction, flags are
// written to VF last.
func (v *VM) execute(ins Instruction) error {
	if ins.IsSkip() {
		if v.skipCondition(ins) {
			v.regs.PC += opcodeSize
		}
		return nil
	}

	r := &v.regs
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		v.display.Clear()

	case OpRet:
		address, err := v.stack.pop()
		if err != nil {
			return err
		}
		r.PC = address

	case OpJp:
		r.PC = ins.Addr

	case OpCall:
		if err := v.stack.push(r.PC); err != nil {
			return err
		}
		r.PC = ins.Addr

	case OpLdImm:
		r.V[x] = ins.KK

	case OpAddImm:
		r.V[x] += ins.KK

	case OpLdReg:
		r.V[x] = r.V[y]

	case OpOr:
		r.V[x] |= r.V[y]

	case OpAnd:
		r.V[x] &= r.V[y]

	case OpXor:
		r.V[x] ^= r.V[y]

	case OpAddReg:
		sum := uint16(r.V[x]) + uint16(r.V[y])
		r.commit(x, uint8(sum), flag(sum > 0xFF))

	case OpSub:
		vx, vy := r.V[x], r.V[y]
		r.commit(x, vx-vy, flag(vx >= vy))

	case OpSubn:
		vx, vy := r.V[x], r.V[y]
		r.commit(x, vy-vx, flag(vy >= vx))

	case OpShr:
		src := v.shiftSource(ins)
		r.commit(x, src>>1, src&0x01)

	case OpShl:
		src := v.shiftSource(ins)
		r.commit(x, src<<1, src>>7)

	case OpLdI:
		r.I = ins.Addr

	case OpJpOffset:
		offset := r.V[0]
		if v.quirks.JumpOffsetUsesVX {
			offset = r.V[x]
		}
		r.PC = (ins.Addr + uint16(offset)) & MaxAddress

	case OpRnd:
		r.V[x] = uint8(v.rand.UintN(256)) & ins.KK

	case OpDrw:
		return v.drawSprite(ins)

	case OpLdVxDT:
		r.V[x] = v.timers.Delay

	case OpLdVxK:
		v.state = AwaitingKey
		v.waitRegister = x
		v.waitBaseline = v.keypad.Mask()

	case OpLdDTVx:
		v.timers.Delay = r.V[x]

	case OpLdSTVx:
		v.timers.Sound = r.V[x]

	case OpAddI:
		index := r.I + uint16(r.V[x])
		if !v.quirks.IndexOverflowWraps {
			index &= MaxAddress
		}
		r.I = index

	case OpLdF:
		r.I = FontStart + GlyphSize*uint16(r.V[x]&0x0F)

	case OpLdB:
		mem, err := v.memory.block(r.I, 3)
		if err != nil {
			return err
		}
		value := r.V[x]
		mem[0] = value / 100
		mem[1] = value / 10 % 10
		mem[2] = value % 10

	case OpLdStore:
		count := int(x) + 1
		mem, err := v.memory.block(r.I, count)
		if err != nil {
			return err
		}
		copy(mem, r.V[:count])
		v.advanceIndex(count)

	case OpLdLoad:
		count := int(x) + 1
		mem, err := v.memory.block(r.I, count)
		if err != nil {
			return err
		}
		copy(r.V[:count], mem)
		v.advanceIndex(count)

	default:
		return fmt.Errorf("%w: $%04X", ErrUnknownInstruction, ins.Word)
	}

	return nil
}

// skipCondition evaluates the condition of a conditional skip instruction.
func (v *VM) skipCondition(ins Instruction) bool {
	r := &v.regs
	switch ins.Op {
	case OpSeImm:
		return r.V[ins.X] == ins.KK
	case OpSneImm:
		return r.V[ins.X] != ins.KK
	case OpSeReg:
		return r.V[ins.X] == r.V[ins.Y]
	case OpSneReg:
		return r.V[ins.X] != r.V[ins.Y]
	case OpSkp:
		return v.keyDown(r.V[ins.X])
	case OpSknp:
		return !v.keyDown(r.V[ins.X])
	default:
		return false
	}
}

// keyDown returns whether the key is held down, or in edge triggered mode
// whether it went down since the previous step.
func (v *VM) keyDown(key uint8) bool {
	if !v.keypad.IsPressed(key) {
		return false
	}
	if v.quirks.KeySkipEdgeTriggered {
		return v.prevKeys&(1<<key) == 0
	}
	return true
}

func (v *VM) shiftSource(ins Instruction) uint8 {
	if v.quirks.ShiftUsesVY {
		return v.regs.V[ins.Y]
	}
	return v.regs.V[ins.X]
}

// drawSprite draws the N byte sprite at I to (Vx, Vy) and sets VF on collision.
func (v *VM) drawSprite(ins Instruction) error {
	r := &v.regs
	sprite, err := v.memory.block(r.I, int(ins.N))
	if err != nil {
		return err
	}

	collision := v.display.Draw(r.V[ins.X], r.V[ins.Y], sprite, v.quirks.DrawWraps)
	r.V[flagRegister] = flag(collision)
	return nil
}

func (v *VM) advanceIndex(count int) {
	if v.quirks.StoreLoadAdvancesIndex {
		v.regs.I += uint16(count)
	}
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
