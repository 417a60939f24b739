// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/set"
)

var (
	frontends = []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}
	presets   = []string{options.PresetModern, options.PresetCOSMAC, options.PresetSCHIP}
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	if err == nil && opts.Version {
		return opts, nil
	}

	args := flags.Args()
	if err != nil || len(args) == 0 {
		usageErr := &UsageError{flags: flags}
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, usageErr
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one program file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	opts.Preset = strings.ToLower(opts.Preset)
	if opts.Preset == "chip48" || opts.Preset == "superchip" {
		opts.Preset = options.PresetSCHIP
	}

	if err := validateName("frontend", opts.Frontend, frontends); err != nil {
		return err
	}
	if err := validateName("quirk preset", opts.Preset, presets); err != nil {
		return err
	}

	if opts.ClockHz <= 0 || opts.ClockHz > runner.MaxClockHz {
		return fmt.Errorf("invalid clock rate %d, must be between 1 and %d", opts.ClockHz, runner.MaxClockHz)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid window scale %d, must be greater than 0", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.Frontend != options.FrontendHeadless && (opts.Keys != "" || opts.Screenshot != "") {
		return fmt.Errorf("-keys and -screenshot are only supported by the %s frontend", options.FrontendHeadless)
	}
	return nil
}

func validateName(kind, name string, valid []string) error {
	names := set.New[string]()
	for _, v := range valid {
		names.Add(v)
	}
	if names.Contains(name) {
		return nil
	}

	sorted := slices.Clone(valid)
	slices.Sort(sorted)
	return fmt.Errorf("unsupported %s: %s. Valid options: %s",
		kind, name, strings.Join(sorted, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "f", options.FrontendWindow, "frontend to use (window/terminal/headless)")
	flags.StringVar(&opts.Preset, "quirks", options.PresetModern, "quirk preset of the emulated interpreter (modern/cosmac/schip)")
	flags.IntVar(&opts.ClockHz, "hz", 500, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor")
	flags.IntVar(&opts.Frames, "frames", 600, "number of 60 Hz frames to run in headless mode")
	flags.StringVar(&opts.Keys, "keys", "", "scripted key events for headless mode, for example 30:5+,40:5-")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "PNG file to write the final frame to in headless mode")
	flags.BoolVar(&opts.Lenient, "lenient", false, "skip unknown instructions instead of halting")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the beeper")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version information and exit")

	flags.BoolVar(&opts.ShiftUsesVY, "shift-vy", false, "quirk: 8xy6/8xyE shift Vy into Vx")
	flags.BoolVar(&opts.JumpOffsetUsesVX, "jump-vx", false, "quirk: Bnnn jumps to nnn + Vx")
	flags.BoolVar(&opts.IndexOverflowWraps, "index-overflow", false, "quirk: Fx1E lets I carry past $FFF")
	flags.BoolVar(&opts.StoreLoadAdvancesIndex, "index-advance", false, "quirk: Fx55/Fx65 advance I")
	flags.BoolVar(&opts.KeySkipEdgeTriggered, "key-edge", false, "quirk: Ex9E/ExA1 test for a key press transition")
	flags.BoolVar(&opts.DrawWraps, "draw-wrap", false, "quirk: sprites wrap around the display edges")
}
