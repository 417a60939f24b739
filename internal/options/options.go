// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Quirk preset names.
const (
	PresetModern = "modern"
	PresetCOSMAC = "cosmac"
	PresetSCHIP  = "schip"
)

// Machine contains the emulation options.
type Machine struct {
	Preset  string `flag:"quirks" usage:"quirk preset: modern, cosmac, schip" default:"modern"`
	ClockHz int    `flag:"hz" usage:"instructions executed per second" default:"500"`
	Lenient bool   `flag:"lenient" usage:"skip unknown instructions instead of halting"`
}

// QuirkFlags force individual quirks on over the selected preset.
type QuirkFlags struct {
	ShiftUsesVY            bool `flag:"shift-vy" usage:"8xy6/8xyE shift Vy into Vx"`
	JumpOffsetUsesVX       bool `flag:"jump-vx" usage:"Bnnn jumps to nnn + Vx"`
	IndexOverflowWraps     bool `flag:"index-overflow" usage:"Fx1E lets I carry past $FFF"`
	StoreLoadAdvancesIndex bool `flag:"index-advance" usage:"Fx55/Fx65 advance I"`
	KeySkipEdgeTriggered   bool `flag:"key-edge" usage:"Ex9E/ExA1 test for a key press transition"`
	DrawWraps              bool `flag:"draw-wrap" usage:"sprites wrap around the display edges"`
}

// Output contains the frontend options.
type Output struct {
	Frontend   string `flag:"f" usage:"frontend: window, terminal, headless" default:"window"`
	Scale      int    `flag:"scale" usage:"window scale factor" default:"10"`
	Mute       bool   `flag:"mute" usage:"disable the beeper"`
	Frames     int    `flag:"frames" usage:"headless: number of 60 Hz frames to run" default:"600"`
	Keys       string `flag:"keys" usage:"headless: scripted key events frame:key[+|-],..."`
	Screenshot string `flag:"screenshot" usage:"headless: PNG file to write the final frame to"`
}

// Flags contains logging options.
type Flags struct {
	Debug   bool `flag:"debug" usage:"enable debug logging and instruction tracing"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
	Version bool `flag:"version" usage:"print version information and exit"`
}

// Program options of the emulator.
type Program struct {
	Input string

	Machine
	QuirkFlags
	Output
	Flags
}
