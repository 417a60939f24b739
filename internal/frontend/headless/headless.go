// Package headless implements a frontend without any host display or input
// device. It runs a fixed number of frames with scripted key events and can
// write the final frame to a PNG file.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

const frameDuration = time.Second / runner.FrameRate

// Config contains the settings of the headless frontend.
type Config struct {
	Frames     int     // number of frames to run
	Events     []Event // scripted key events, sorted by frame
	Screenshot string  // PNG file to write the final frame to, optional
	Scale      int     // pixel size of the screenshot
}

// Frontend runs the machine as fast as possible for a fixed number of frames.
type Frontend struct {
	cfg    Config
	logger *log.Logger

	frame   int // index of the running frame
	next    int // index of the next scripted event
	last    vm.Frame
	renders int
}

// New returns a new headless frontend.
func New(logger *log.Logger, cfg Config) *Frontend {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Frontend{
		cfg:    cfg,
		logger: logger,
	}
}

// Run implements runner.Frontend. Every frame replays exactly 1/60 second
// of machine time without waiting for the wall clock.
func (f *Frontend) Run(ctx context.Context, sched *runner.Scheduler, audio runner.Audio) error {
	defer audio.SetTone(false)

	var runErr error
	for f.frame = 0; f.frame < f.cfg.Frames; f.frame++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("headless run: %w", err)
		}

		if err := runner.Frame(sched, f, f, audio, frameDuration); err != nil {
			if !errors.Is(err, runner.ErrQuit) {
				runErr = err
			}
			break
		}
	}

	f.logger.Debug("Headless run finished",
		log.Int("frames", f.frame),
		log.Int("renders", f.renders),
	)

	if f.cfg.Screenshot != "" {
		// the final frame is written also after a fault for inspection
		f.last = sched.Machine().Frame()
		if err := f.writeScreenshot(); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

// Poll implements runner.Input by applying all scripted events of the running frame.
func (f *Frontend) Poll(keypad *vm.Keypad) error {
	for f.next < len(f.cfg.Events) && f.cfg.Events[f.next].Frame <= f.frame {
		event := f.cfg.Events[f.next]
		if event.Down {
			keypad.Press(event.Key)
		} else {
			keypad.Release(event.Key)
		}
		f.next++
	}
	return nil
}

// Render implements runner.Display by keeping the frame.
func (f *Frontend) Render(frame vm.Frame) error {
	f.last = frame
	f.renders++
	return nil
}

// LastFrame returns the most recently rendered frame.
func (f *Frontend) LastFrame() vm.Frame {
	return f.last
}

// Frames returns the number of frames that were run.
func (f *Frontend) Frames() int {
	return f.frame
}

func (f *Frontend) writeScreenshot() error {
	file, err := os.Create(f.cfg.Screenshot)
	if err != nil {
		return fmt.Errorf("creating screenshot file %s: %w", f.cfg.Screenshot, err)
	}

	if err := WritePNG(file, f.last, f.cfg.Scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing screenshot file: %w", err)
	}

	f.logger.Info("Screenshot written", log.String("file", f.cfg.Screenshot))
	return nil
}

// WritePNG encodes the frame as black and white PNG image with each pixel
// scaled to a square of scale pixels.
func WritePNG(writer io.Writer, frame vm.Frame, scale int) error {
	if scale <= 0 {
		scale = 1
	}

	palette := color.Palette{color.Black, color.White}
	img := image.NewPaletted(image.Rect(0, 0, vm.DisplayWidth*scale, vm.DisplayHeight*scale), palette)
	for y := range vm.DisplayHeight * scale {
		for x := range vm.DisplayWidth * scale {
			img.SetColorIndex(x, y, frame.At(x/scale, y/scale))
		}
	}

	if err := png.Encode(writer, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
