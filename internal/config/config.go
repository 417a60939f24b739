// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Quirks returns the quirk configuration of the selected preset with all
// individually requested quirks enabled on top.
func Quirks(opts options.Program) (vm.Quirks, error) {
	var quirks vm.Quirks

	switch opts.Preset {
	case options.PresetModern, "":
		quirks = vm.ModernQuirks()
	case options.PresetCOSMAC:
		quirks = vm.COSMACQuirks()
	case options.PresetSCHIP:
		quirks = vm.SuperChipQuirks()
	default:
		return vm.Quirks{}, fmt.Errorf("unsupported quirk preset '%s'", opts.Preset)
	}

	f := opts.QuirkFlags
	quirks.ShiftUsesVY = quirks.ShiftUsesVY || f.ShiftUsesVY
	quirks.JumpOffsetUsesVX = quirks.JumpOffsetUsesVX || f.JumpOffsetUsesVX
	quirks.IndexOverflowWraps = quirks.IndexOverflowWraps || f.IndexOverflowWraps
	quirks.StoreLoadAdvancesIndex = quirks.StoreLoadAdvancesIndex || f.StoreLoadAdvancesIndex
	quirks.KeySkipEdgeTriggered = quirks.KeySkipEdgeTriggered || f.KeySkipEdgeTriggered
	quirks.DrawWraps = quirks.DrawWraps || f.DrawWraps
	return quirks, nil
}
