package vm

// Frame is a read-only copy of the display buffer, one byte per pixel in
// row major order with every value being 0 or 1.
type Frame [displaySize]uint8

// At returns the pixel at the given coordinates, 0 for coordinates outside the frame.
func (f *Frame) At(x, y int) uint8 {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return 0
	}
	return f[y*DisplayWidth+x]
}

// Display is the monochrome 64x32 pixel buffer.
type Display struct {
	pixels Frame
	dirty  bool
}

// Clear turns off all pixels.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// Pixel returns the pixel at the given coordinates.
func (d *Display) Pixel(x, y int) uint8 {
	return d.pixels.At(x, y)
}

// Draw XORs the sprite rows onto the buffer with the top-left corner at
// (ox, oy), both taken modulo the display size. Each sprite byte is one row,
// most significant bit leftmost. Pixels falling off the right or bottom edge
// are clipped, or wrapped to the opposite edge if wrap is set.
// It returns whether any pixel was turned off.
func (d *Display) Draw(ox, oy uint8, sprite []byte, wrap bool) bool {
	x0 := int(ox) % DisplayWidth
	y0 := int(oy) % DisplayHeight
	collision := false

	for row, bits := range sprite {
		y := y0 + row
		if y >= DisplayHeight {
			if !wrap {
				break
			}
			y %= DisplayHeight
		}

		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			x := x0 + col
			if x >= DisplayWidth {
				if !wrap {
					break
				}
				x %= DisplayWidth
			}

			i := y*DisplayWidth + x
			if d.pixels[i] == 1 {
				collision = true
			}
			d.pixels[i] ^= 1
		}
	}

	d.dirty = true
	return collision
}
