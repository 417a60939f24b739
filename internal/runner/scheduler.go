package runner

import (
	"time"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

const (
	// MaxElapsed is the longest span of wall time a single Advance call replays.
	MaxElapsed = 250 * time.Millisecond

	// MaxClockHz is the highest supported instruction clock rate.
	MaxClockHz = 1_000_000
)

// Scheduler replays elapsed wall time on a machine as two independent clocks:
// instruction ticks at the configured clock rate and timer ticks at
// vm.TimerFrequency. Ticks of both clocks are executed in the order of their
// virtual timestamps, on equal timestamps the timer tick runs first.
type Scheduler struct {
	machine *vm.VM
	logger  *log.Logger
	lenient bool

	instructionPeriod time.Duration
	timerPeriod       time.Duration

	now             time.Duration // virtual time replayed so far
	nextInstruction time.Duration
	nextTimer       time.Duration

	instructions uint64
	skipped      uint64
}

// NewScheduler returns a scheduler executing clockHz instructions per second.
// The clock rate is limited to the range 1 to MaxClockHz. In lenient mode
// unknown instructions are logged and skipped instead of stopping the run.
func NewScheduler(machine *vm.VM, clockHz int, lenient bool, logger *log.Logger) *Scheduler {
	clockHz = min(max(clockHz, 1), MaxClockHz)
	instructionPeriod := time.Second / time.Duration(clockHz)
	timerPeriod := time.Second / vm.TimerFrequency

	return &Scheduler{
		machine:           machine,
		logger:            logger,
		lenient:           lenient,
		instructionPeriod: instructionPeriod,
		timerPeriod:       timerPeriod,
		nextInstruction:   instructionPeriod,
		nextTimer:         timerPeriod,
	}
}

// Machine returns the driven machine.
func (s *Scheduler) Machine() *vm.VM {
	return s.machine
}

// Instructions returns the number of instruction ticks executed so far.
// Ticks spent awaiting a key are included.
func (s *Scheduler) Instructions() uint64 {
	return s.instructions
}

// Skipped returns the number of unknown instructions skipped in lenient mode.
func (s *Scheduler) Skipped() uint64 {
	return s.skipped
}

// Advance executes all instruction and timer ticks that fall into the next
// elapsed span of time. Elapsed time above MaxElapsed is clamped.
// The first machine fault stops the replay and is returned.
func (s *Scheduler) Advance(elapsed time.Duration) error {
	if elapsed <= 0 {
		return nil
	}
	if elapsed > MaxElapsed {
		elapsed = MaxElapsed
	}
	target := s.now + elapsed

	for {
		if s.nextTimer <= s.nextInstruction {
			if s.nextTimer > target {
				break
			}
			s.machine.TickTimers()
			s.nextTimer += s.timerPeriod
			continue
		}

		if s.nextInstruction > target {
			break
		}
		s.nextInstruction += s.instructionPeriod
		s.instructions++
		if err := s.step(); err != nil {
			s.now = target
			return err
		}
	}

	s.now = target
	return nil
}

func (s *Scheduler) step() error {
	err := s.machine.Step()
	if err == nil {
		return nil
	}

	if s.lenient && vm.IsDecodeFault(err) {
		s.skipped++
		s.logger.Warn("Skipping unknown instruction", log.Err(err))
		return nil
	}
	return err
}
