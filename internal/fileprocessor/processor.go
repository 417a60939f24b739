// Package fileprocessor handles the program run workflow of the command line tool
package fileprocessor

import (
	"context"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile runs the program file of the options on the selected frontend.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	fe, err := frontend.New(logger, opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}

	beeper, closeAudio := openAudio(logger, opts)
	defer closeAudio()

	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, fe, beeper); err != nil {
		return fmt.Errorf("emulating: %w", err)
	}
	return nil
}

// openAudio opens the beeper if the options ask for sound. A missing audio
// device is not fatal, the program runs silent.
func openAudio(logger *log.Logger, opts options.Program) (runner.Audio, func()) {
	if !frontend.UsesAudio(opts) {
		return runner.Silent{}, func() {}
	}

	beeper, err := audio.New()
	if err != nil {
		logger.Warn("Audio device not available, running without sound", log.Err(err))
		return runner.Silent{}, func() {}
	}

	return beeper, func() {
		if err := beeper.Close(); err != nil {
			logger.Error("Closing audio failed", log.Err(err))
		}
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// VersionString returns the full version text shown by the -version flag.
func VersionString(version, commit, date string) string {
	return buildinfo.Version(version, commit, date)
}
