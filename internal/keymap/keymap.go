// Package keymap maps host keyboard characters to the 16 logical CHIP-8 keys.
//
// The hex keypad of the COSMAC VIP is laid out on the left block of a QWERTY
// keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
package keymap

// Layout contains the host character of each logical key, indexed by key value.
var Layout = [16]rune{
	0x0: 'x',
	0x1: '1',
	0x2: '2',
	0x3: '3',
	0x4: 'q',
	0x5: 'w',
	0x6: 'e',
	0x7: 'a',
	0x8: 's',
	0x9: 'd',
	0xA: 'z',
	0xB: 'c',
	0xC: '4',
	0xD: 'r',
	0xE: 'f',
	0xF: 'v',
}

var byRune = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(Layout))
	for key, r := range Layout {
		m[r] = uint8(key)
	}
	return m
}()

// Key returns the logical key for a host character, letters are matched
// case insensitive.
func Key(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	key, ok := byRune[r]
	return key, ok
}

// Rune returns the host character of a logical key.
func Rune(key uint8) (rune, bool) {
	if int(key) >= len(Layout) {
		return 0, false
	}
	return Layout[key], true
}
