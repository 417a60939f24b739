package vm

import "fmt"

// Memory is the flat 4KB addressable memory of the machine.
type Memory struct {
	data [MemorySize]byte
}

// newMemory returns a zeroed memory with the font glyph table installed at FontStart.
func newMemory() Memory {
	var m Memory
	copy(m.data[FontStart:], fontSet[:])
	return m
}

// load copies a program image into memory starting at ProgramStart.
// Images that do not fit are rejected before any byte is written.
func (m *Memory) load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, %d bytes available", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at the given address masked to 12 bits.
func (m *Memory) Read(address uint16) byte {
	return m.data[address&MaxAddress]
}

// readWord returns the big endian instruction word at the given address.
func (m *Memory) readWord(address uint16) uint16 {
	hi := m.Read(address)
	lo := m.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// block returns the writable memory range [address, address+length).
// The range must lie completely inside memory, no wrapping is applied.
func (m *Memory) block(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if end > MemorySize {
		return nil, fmt.Errorf("%w: $%04X+%d", ErrMemoryOutOfBounds, address, length)
	}
	return m.data[address:end], nil
}
