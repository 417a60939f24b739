// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the program file of the options and runs it on the frontend
// until the frontend ends the run.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, frontend runner.Frontend, audio runner.Audio) (*vm.VM, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	return p.ExecuteWithProgram(ctx, program, opts, frontend, audio)
}

// ExecuteWithProgram runs the pipeline with a program image that is already in memory.
// The machine is returned also on error for inspection of its final state.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program,
	frontend runner.Frontend, audio runner.Audio) (*vm.VM, error) {

	machine, err := p.createMachine(program, opts)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, len(program))

	sched := runner.NewScheduler(machine, opts.ClockHz, opts.Lenient, p.logger)
	if err := frontend.Run(ctx, sched, audio); err != nil {
		p.logFault(err)
		return machine, fmt.Errorf("running program: %w", err)
	}

	p.logger.Debug("Emulation ended",
		log.Int("instructions", int(sched.Instructions())),
		log.Int("skipped", int(sched.Skipped())),
	)
	return machine, nil
}

// createMachine creates the machine with the configured quirks and loads the program.
func (p *Pipeline) createMachine(program []byte, opts options.Program) (*vm.VM, error) {
	quirks, err := config.Quirks(opts)
	if err != nil {
		return nil, fmt.Errorf("resolving quirks: %w", err)
	}

	machine := vm.New(vm.Config{
		Quirks: quirks,
		Logger: p.logger,
		Trace:  opts.Debug,
	})
	if err := machine.Load(program); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}
	return machine, nil
}

// printInfo prints information about the program being run.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
		log.String("quirks", opts.Preset),
		log.Int("clock_hz", opts.ClockHz),
	)
}

// logFault logs the machine state of a fault that stopped the run.
func (p *Pipeline) logFault(err error) {
	var fault *vm.Fault
	if !errors.As(err, &fault) {
		return
	}

	p.logger.Error("Machine fault",
		log.Hex("pc", fault.PC),
		log.Hex("word", fault.Word),
		log.Int("stack_depth", fault.StackDepth),
		log.Err(fault.Err),
	)
}
