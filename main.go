// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("version: %s\n", fileprocessor.VersionString(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}
