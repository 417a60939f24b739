package terminal

import (
	"bytes"

	"github.com/retroenv/retrochip8/internal/vm"
)

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escResetColor = "\x1b[0m"
)

// Rows is the number of terminal lines used by the display, two pixel rows
// are combined into one character cell.
const Rows = vm.DisplayHeight / 2

// halfBlocks is indexed by top pixel | bottom pixel<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// renderFrame draws the frame as half block characters starting at the top
// left corner of the terminal. Lines are terminated with CR LF as the
// terminal is in raw mode.
func renderFrame(buf *bytes.Buffer, frame *vm.Frame, status string) {
	buf.WriteString(escHome)
	for row := range Rows {
		y := row * 2
		for x := range vm.DisplayWidth {
			cell := frame.At(x, y) | frame.At(x, y+1)<<1
			buf.WriteString(halfBlocks[cell])
		}
		buf.WriteString("\r\n")
	}

	buf.WriteString(escResetColor)
	buf.WriteString(status)
	buf.WriteString("\x1b[K") // clear the rest of the status line
}
