// Package terminal implements a frontend that renders the display with
// half block characters and reads keys from a terminal in raw mode.
package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const statusLine = "1234 QWER ASDF ZXCV  esc: quit"

// Frontend runs the machine inside a terminal.
type Frontend struct {
	logger *log.Logger
	in     io.Reader
	out    io.Writer
	inFd   int
	outFd  int
}

// New returns a terminal frontend using the standard input and output of the process.
func New(logger *log.Logger) *Frontend {
	return &Frontend{
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
	}
}

// Run implements runner.Frontend.
func (f *Frontend) Run(ctx context.Context, sched *runner.Scheduler, audio runner.Audio) error {
	if term.IsTerminal(f.inFd) {
		oldState, err := term.MakeRaw(f.inFd)
		if err != nil {
			return fmt.Errorf("setting terminal raw mode: %w", err)
		}
		defer func() { _ = term.Restore(f.inFd, oldState) }()
	}

	if width, height, err := term.GetSize(f.outFd); err == nil && (width < vm.DisplayWidth || height <= Rows) {
		f.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width),
			log.Int("height", height),
		)
	}

	if _, err := io.WriteString(f.out, escClear+escHideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	defer func() { _, _ = io.WriteString(f.out, escResetColor+escShowCursor+"\r\n") }()

	disp := &display{
		out:     f.out,
		machine: sched.Machine(),
	}
	in := newInput(f.in)
	defer in.Close()

	return runner.Loop(ctx, sched, disp, in, audio, runner.FrameRate)
}

// display writes frames to the terminal.
type display struct {
	out     io.Writer
	machine *vm.VM
	buf     bytes.Buffer
}

// Render implements runner.Display.
func (d *display) Render(frame vm.Frame) error {
	status := statusLine
	if d.machine.Blocked() {
		status += "  waiting for key"
	}

	d.buf.Reset()
	renderFrame(&d.buf, &frame, status)
	if _, err := d.out.Write(d.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
