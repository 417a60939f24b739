package vm

// Registers is the register file of the machine.
type Registers struct {
	V  [RegisterCount]uint8 // general purpose registers, VF doubles as flag register
	I  uint16               // index register
	PC uint16               // program counter
}

// commit writes value to Vx and then the flag to VF. The flag is always the
// last register write of an instruction, so an instruction using VF as its
// target ends up with the flag value.
func (r *Registers) commit(x, value, flag uint8) {
	r.V[x] = value
	r.V[flagRegister] = flag
}
