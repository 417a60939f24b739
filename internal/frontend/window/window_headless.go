//go:build headless

// Package window implements a desktop frontend based on ebiten.
package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when running a window in a build without desktop support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Frontend is a placeholder in builds without desktop support.
type Frontend struct{}

// New returns a window frontend that fails to run.
func New(_ *log.Logger, _ int, _ string) *Frontend {
	return &Frontend{}
}

// Run implements runner.Frontend.
func (f *Frontend) Run(_ context.Context, _ *runner.Scheduler, _ runner.Audio) error {
	return ErrUnavailable
}
