package terminal

import (
	"errors"
	"io"

	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
)

// holdFrames is the number of frames a key stays down after its character
// was received. Terminals report no key releases, a held key is seen as a
// stream of repeated characters.
const holdFrames = 10

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// input translates characters read from the terminal into key state.
type input struct {
	chars chan byte
	stop  chan struct{}
	done  chan struct{}
	err   error

	frame     int
	heldUntil [vm.KeyCount]int
}

// newInput starts a goroutine reading characters from the reader until it
// returns an error or the input is closed. A goroutine blocked in Read only
// notices the close after the next character arrives.
func newInput(reader io.Reader) *input {
	in := &input{
		chars: make(chan byte, 64),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(in.done)
		buf := make([]byte, 16)
		for {
			n, err := reader.Read(buf)
			for _, b := range buf[:n] {
				select {
				case in.chars <- b:
				case <-in.stop:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					in.err = err
				}
				return
			}
		}
	}()

	return in
}

// Close stops the reader goroutine. It must be called once after the last Poll.
func (in *input) Close() {
	close(in.stop)
}

// Poll implements runner.Input.
func (in *input) Poll(keypad *vm.Keypad) error {
	in.frame++

	if err := in.drain(); err != nil {
		return err
	}

	for key := range uint8(vm.KeyCount) {
		if in.heldUntil[key] > in.frame {
			keypad.Press(key)
		} else {
			keypad.Release(key)
		}
	}
	return nil
}

// drain processes all characters received since the previous poll.
func (in *input) drain() error {
	for {
		select {
		case b := <-in.chars:
			if b == keyCtrlC || b == keyEscape {
				return runner.ErrQuit
			}
			if key, ok := keymap.Key(rune(b)); ok {
				in.heldUntil[key] = in.frame + holdFrames
			}

		case <-in.done:
			// characters buffered before the reader ended are still delivered
			if len(in.chars) > 0 {
				continue
			}
			return in.err

		default:
			return nil
		}
	}
}
