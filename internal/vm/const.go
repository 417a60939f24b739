package vm

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, the font glyph table lives at FontStart
//	0x200-0xFFF: Program space
//
// The display buffer and the call stack are kept outside of the
// 4KB main memory address space.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the reserved address of the font glyph table.
	FontStart = 0x050

	// GlyphSize is the number of bytes of one font glyph.
	GlyphSize = 5
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	displaySize   = DisplayWidth * DisplayHeight
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// KeyCount is the number of keys of the logical hex keypad.
	KeyCount = 16

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// TimerFrequency is the rate in Hz at which the delay and sound timers decrement.
	TimerFrequency = 60

	flagRegister = 0xF
	opcodeSize   = 2
)

// fontSet contains the hex digit glyphs 0-F, 5 bytes each.
var fontSet = [KeyCount * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
