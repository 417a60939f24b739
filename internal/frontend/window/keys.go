//go:build !headless

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/vm"
)

// keys contains the host key of each logical key, matching keymap.Layout.
var keys = [vm.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.KeyDigit1,
	0x2: ebiten.KeyDigit2,
	0x3: ebiten.KeyDigit3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.KeyDigit4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}
