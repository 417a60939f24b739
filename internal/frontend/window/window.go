//go:build !headless

// Package window implements a desktop frontend based on ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// statusHeight is the height in screen pixels of the status line below the display.
const statusHeight = 16

var (
	colorOn     = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorOff    = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
	colorStatus = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colorFault  = color.RGBA{R: 230, G: 80, B: 60, A: 255}
)

// Frontend runs the machine in a desktop window.
type Frontend struct {
	logger *log.Logger
	scale  int
	title  string
}

// New returns a window frontend drawing each display pixel as a square of scale pixels.
func New(logger *log.Logger, scale int, title string) *Frontend {
	if scale <= 0 {
		scale = 1
	}
	return &Frontend{
		logger: logger,
		scale:  scale,
		title:  title,
	}
}

// Run implements runner.Frontend. It blocks until the window is closed, the
// context is cancelled or the machine faults.
func (f *Frontend) Run(ctx context.Context, sched *runner.Scheduler, audio runner.Audio) error {
	g := newGame(ctx, sched, audio, f.scale)

	ebiten.SetWindowSize(vm.DisplayWidth*f.scale, vm.DisplayHeight*f.scale+statusHeight)
	ebiten.SetWindowTitle(f.title)
	ebiten.SetTPS(runner.FrameRate)

	err := ebiten.RunGame(g)
	audio.SetTone(false)

	switch {
	case g.err != nil:
		return g.err
	case err != nil && !errors.Is(err, ebiten.Termination):
		return fmt.Errorf("running window: %w", err)
	default:
		return nil
	}
}

// game implements ebiten.Game.
type game struct {
	ctx   context.Context
	sched *runner.Scheduler
	audio runner.Audio
	scale int

	screen *ebiten.Image
	pixels []byte // RGBA pixels of the display
	err    error  // error that ended the emulation
}

func newGame(ctx context.Context, sched *runner.Scheduler, audio runner.Audio, scale int) *game {
	g := &game{
		ctx:    ctx,
		sched:  sched,
		audio:  audio,
		scale:  scale,
		pixels: make([]byte, vm.DisplayWidth*vm.DisplayHeight*4),
	}
	_ = g.Render(sched.Machine().Frame())
	return g
}

// Update runs one frame of the machine.
func (g *game) Update() error {
	if g.err != nil {
		// keep the window open to show the fault until it is closed
		if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	if err := g.ctx.Err(); err != nil {
		g.err = fmt.Errorf("window loop: %w", err)
		return ebiten.Termination
	}

	err := runner.Frame(g.sched, g, g, g.audio, ebitenFrameDuration())
	switch {
	case errors.Is(err, runner.ErrQuit):
		return ebiten.Termination
	case err != nil:
		g.err = err
		g.audio.SetTone(false)
	}
	return nil
}

// Poll implements runner.Input.
func (g *game) Poll(keypad *vm.Keypad) error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return runner.ErrQuit
	}

	for key, hostKey := range keys {
		if ebiten.IsKeyPressed(hostKey) {
			keypad.Press(uint8(key))
		} else {
			keypad.Release(uint8(key))
		}
	}
	return nil
}

// Render implements runner.Display by converting the frame to RGBA pixels.
func (g *game) Render(frame vm.Frame) error {
	framePixels(g.pixels, &frame)
	return nil
}

// Draw draws the display and the status line.
func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(vm.DisplayWidth, vm.DisplayHeight)
	}
	g.screen.WritePixels(g.pixels)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, opts)

	label, c := g.status()
	text.Draw(screen, label, basicfont.Face7x13, 4, vm.DisplayHeight*g.scale+statusHeight-4, c)
}

// Layout returns the fixed logical screen size.
func (g *game) Layout(_, _ int) (int, int) {
	return vm.DisplayWidth * g.scale, vm.DisplayHeight*g.scale + statusHeight
}

func (g *game) status() (string, color.Color) {
	if g.err != nil {
		return g.err.Error(), colorFault
	}

	machine := g.sched.Machine()
	label := fmt.Sprintf("%d instructions", g.sched.Instructions())
	if machine.Blocked() {
		label += "  waiting for key"
	}
	if machine.SoundActive() {
		label += "  beep"
	}
	return label, colorStatus
}

// framePixels converts the frame to RGBA pixels.
func framePixels(pixels []byte, frame *vm.Frame) {
	for i, on := range frame {
		c := colorOff
		if on != 0 {
			c = colorOn
		}
		offset := i * 4
		pixels[offset] = c.R
		pixels[offset+1] = c.G
		pixels[offset+2] = c.B
		pixels[offset+3] = c.A
	}
}

// ebitenFrameDuration returns the time between two Update calls.
func ebitenFrameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
