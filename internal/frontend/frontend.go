// Package frontend creates the host frontend selected by the program options.
package frontend

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// New returns the frontend selected by the options.
func New(logger *log.Logger, opts options.Program) (runner.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendWindow, "":
		return window.New(logger, opts.Scale, "retrochip8 - "+opts.Input), nil

	case options.FrontendTerminal:
		return terminal.New(logger), nil

	case options.FrontendHeadless:
		events, err := headless.ParseScript(opts.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing key script: %w", err)
		}
		return headless.New(logger, headless.Config{
			Frames:     opts.Frames,
			Events:     events,
			Screenshot: opts.Screenshot,
			Scale:      opts.Scale,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

// UsesAudio returns whether the frontend selected by the options plays sound.
func UsesAudio(opts options.Program) bool {
	return !opts.Mute && opts.Frontend != options.FrontendHeadless
}
