// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color holds small color helpers shared by the drawing
// surfaces.
package f32color

import "image/color"

// MulAlpha applies the alpha factor a in [0,1] to c.
func MulAlpha(c color.NRGBA, a float32) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a < 1:
		c.A = uint8(float32(c.A)*a + .5)
	}
	return c
}

// Premul returns c premultiplied by its alpha.
func Premul(c color.NRGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8((uint16(c.R)*a + 127) / 255),
		G: uint8((uint16(c.G)*a + 127) / 255),
		B: uint8((uint16(c.B)*a + 127) / 255),
		A: c.A,
	}
}
