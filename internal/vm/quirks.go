package vm

// Quirks selects between historically divergent behaviors of ambiguous
// instructions. The zero value is the common modern behavior.
type Quirks struct {
	// ShiftUsesVY copies Vy into Vx before shifting (8xy6, 8xyE) as the
	// COSMAC VIP does. Otherwise Vy is ignored.
	ShiftUsesVY bool

	// JumpOffsetUsesVX makes Bnnn jump to nnn + Vx where x is the high
	// nibble of nnn, as CHIP-48 and SUPER-CHIP do. Otherwise V0 is used.
	JumpOffsetUsesVX bool

	// IndexOverflowWraps lets Fx1E carry I past $FFF into $1000 and above.
	// Otherwise the result is masked to 12 bits.
	IndexOverflowWraps bool

	// StoreLoadAdvancesIndex leaves I pointing past the last accessed byte
	// after Fx55 and Fx65 (I += x+1) as the COSMAC VIP does.
	StoreLoadAdvancesIndex bool

	// KeySkipEdgeTriggered makes Ex9E and ExA1 test for a key going down
	// since the previous instruction instead of the key being held.
	KeySkipEdgeTriggered bool

	// DrawWraps wraps sprite pixels that fall off the display edge to the
	// opposite side instead of clipping them.
	DrawWraps bool
}

// ModernQuirks returns the behavior of most modern interpreters.
func ModernQuirks() Quirks {
	return Quirks{}
}

// COSMACQuirks returns the behavior of the original COSMAC VIP interpreter.
func COSMACQuirks() Quirks {
	return Quirks{
		ShiftUsesVY:            true,
		StoreLoadAdvancesIndex: true,
	}
}

// SuperChipQuirks returns the behavior of the CHIP-48 and SUPER-CHIP interpreters.
func SuperChipQuirks() Quirks {
	return Quirks{
		JumpOffsetUsesVX: true,
	}
}
