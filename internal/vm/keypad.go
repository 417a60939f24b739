package vm

import "sync/atomic"

// Keypad is the state of the 16 key hex keypad as a bitmask, bit k set
// meaning key k is held down. It is the only part of the machine that may
// be written from another goroutine than the one ticking the VM.
type Keypad struct {
	mask atomic.Uint32
}

// Press marks the key as held down. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Press(key uint8) {
	if key >= KeyCount {
		return
	}
	bit := uint32(1) << key
	for {
		old := k.mask.Load()
		if k.mask.CompareAndSwap(old, old|bit) {
			return
		}
	}
}

// Release marks the key as released. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Release(key uint8) {
	if key >= KeyCount {
		return
	}
	bit := uint32(1) << key
	for {
		old := k.mask.Load()
		if k.mask.CompareAndSwap(old, old&^bit) {
			return
		}
	}
}

// Set replaces the complete key state with the given bitmask.
func (k *Keypad) Set(mask uint16) {
	k.mask.Store(uint32(mask))
}

// Mask returns the current key state bitmask.
func (k *Keypad) Mask() uint16 {
	return uint16(k.mask.Load())
}

// IsPressed returns whether the key is currently held down.
func (k *Keypad) IsPressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.Mask()&(1<<key) != 0
}

// lowestKey returns the index of the lowest set bit of a non zero key mask.
func lowestKey(mask uint16) uint8 {
	for key := range uint8(KeyCount) {
		if mask&(1<<key) != 0 {
			return key
		}
	}
	return 0
}
