package vm

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// RunState is the control flow state of the machine.
type RunState uint8

const (
	// Running means the machine fetches the next instruction on every step.
	Running RunState = iota
	// AwaitingKey means the machine is suspended by Fx0A until a key goes down.
	AwaitingKey
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return "unknown"
	}
}

// Config contains the settings of a machine.
type Config struct {
	Quirks Quirks

	// Rand is the source for the RND instruction, a randomly seeded source is used if nil.
	Rand *rand.Rand

	// Logger receives instruction traces if Trace is set.
	Logger *log.Logger
	Trace  bool
}

// VM is a CHIP-8 virtual machine. Except for the keypad it is not safe for
// concurrent use, a single driver goroutine is expected to call Step and
// TickTimers.
type VM struct {
	memory  Memory
	regs    Registers
	stack   Stack
	display Display
	timers  Timers
	keypad  Keypad

	quirks Quirks
	rand   *rand.Rand
	logger *log.Logger
	trace  bool

	state        RunState
	waitRegister uint8  // register receiving the key while awaiting a key
	waitBaseline uint16 // key mask last seen while awaiting a key
	prevKeys     uint16 // key mask seen by the previous step, for edge triggered skips
}

// New returns a new machine with zeroed state, the font table installed
// and the program counter at ProgramStart.
func New(cfg Config) *VM {
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	v := &VM{
		memory: newMemory(),
		quirks: cfg.Quirks,
		rand:   rnd,
		logger: cfg.Logger,
		trace:  cfg.Trace && cfg.Logger != nil,
	}
	v.regs.PC = ProgramStart
	return v
}

// Load copies a program image to ProgramStart. Nothing besides the program
// memory is reset, an image that is too large is rejected without modifying memory.
func (v *VM) Load(program []byte) error {
	return v.memory.load(program)
}

// Step fetches, decodes and executes a single instruction. While the machine
// is awaiting a key it only checks for a newly pressed key.
// A returned error is a *Fault describing the failed instruction, the
// program counter has already moved past it.
func (v *VM) Step() error {
	if v.state == AwaitingKey {
		v.pollAwaitedKey()
		v.prevKeys = v.keypad.Mask()
		return nil
	}

	pc := v.regs.PC
	word := v.memory.readWord(pc)
	v.regs.PC = pc + opcodeSize

	ins, err := Decode(word)
	if err == nil {
		if v.trace {
			v.logger.Debug("Executing instruction",
				log.Hex("pc", pc),
				log.Hex("word", word),
				log.String("instruction", ins.Format(v.quirks)))
		}
		err = v.execute(ins)
	}
	v.prevKeys = v.keypad.Mask()

	if err != nil {
		return &Fault{
			PC:         pc,
			Word:       word,
			StackDepth: v.stack.Depth(),
			Err:        err,
		}
	}
	return nil
}

// TickTimers decrements the delay and sound timers, it has to be called at TimerFrequency.
func (v *VM) TickTimers() {
	v.timers.tick()
}

// pollAwaitedKey resumes execution if a key went down since the last poll and
// stores the lowest such key in the awaiting register.
func (v *VM) pollAwaitedKey() {
	keys := v.keypad.Mask()
	pressed := keys &^ v.waitBaseline
	v.waitBaseline = keys
	if pressed == 0 {
		return
	}

	v.regs.V[v.waitRegister] = lowestKey(pressed)
	v.state = Running
}

// Blocked returns whether the machine is suspended awaiting a key press.
func (v *VM) Blocked() bool {
	return v.state == AwaitingKey
}

// State returns the control flow state of the machine.
func (v *VM) State() RunState {
	return v.state
}

// Keypad returns the keypad that input sources update.
func (v *VM) Keypad() *Keypad {
	return &v.keypad
}

// Registers returns a copy of the register file.
func (v *VM) Registers() Registers {
	return v.regs
}

// Timers returns a copy of the timer values.
func (v *VM) Timers() Timers {
	return v.timers
}

// StackDepth returns the current call depth.
func (v *VM) StackDepth() int {
	return v.stack.Depth()
}

// ReadMemory returns the byte at the given address.
func (v *VM) ReadMemory(address uint16) byte {
	return v.memory.Read(address)
}

// SoundActive returns whether a tone should be audible.
func (v *VM) SoundActive() bool {
	return v.timers.Sound > 0
}

// Frame returns a copy of the display buffer.
func (v *VM) Frame() Frame {
	return v.display.pixels
}

// TakeFrame returns a copy of the display buffer and whether it was
// modified since the previous call of TakeFrame.
func (v *VM) TakeFrame() (Frame, bool) {
	changed := v.display.dirty
	v.display.dirty = false
	return v.display.pixels, changed
}

// Quirks returns the quirk configuration of the machine.
func (v *VM) Quirks() Quirks {
	return v.quirks
}
