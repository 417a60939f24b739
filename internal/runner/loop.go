package runner

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// FrameRate is the rate in Hz at which frontends present frames.
const FrameRate = 60

// Frame runs one host frame: it polls the input, replays the elapsed time on
// the machine, renders the display if it changed and updates the beeper.
func Frame(sched *Scheduler, display Display, input Input, audio Audio, elapsed time.Duration) error {
	machine := sched.Machine()

	if err := input.Poll(machine.Keypad()); err != nil {
		return err
	}

	if err := sched.Advance(elapsed); err != nil {
		audio.SetTone(false)
		return err
	}

	if frame, changed := machine.TakeFrame(); changed {
		if err := display.Render(frame); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
	}

	audio.SetTone(machine.SoundActive())
	return nil
}

// Loop runs frames at the given frame rate until the context is cancelled,
// the input requests to quit or the machine faults. A quit request ends the
// loop without error.
func Loop(ctx context.Context, sched *Scheduler, display Display, input Input, audio Audio, frameRate int) error {
	if frameRate <= 0 {
		frameRate = FrameRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()
	defer audio.SetTone(false)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("emulation loop: %w", ctx.Err())

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now

			if err := Frame(sched, display, input, audio, elapsed); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}
