// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Loader handles loading raw CHIP-8 program images from disk.
type Loader struct {
	maxSize int
}

// New creates a new program loader accepting images of up to vm.MaxProgramSize bytes.
func New() *Loader {
	return &Loader{maxSize: vm.MaxProgramSize}
}

// Load reads the program image of the given file. Images that do not fit
// into program memory are rejected with an error wrapping vm.ErrProgramTooLarge.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a program image from the reader.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images without
	// buffering arbitrarily large inputs
	data, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", vm.ErrProgramTooLarge, l.maxSize)
	}
	if len(data) == 0 {
		return nil, errors.New("program is empty")
	}
	return data, nil
}
