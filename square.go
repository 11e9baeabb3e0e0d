// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"image"

	"golang.org/x/image/draw"
)

// squareKey identifies the inputs of a derived image.
type squareKey struct {
	gen     uint64
	size    image.Point
	padding int
	mode    ImageMode
}

// SquareImage returns the image masked into the circle: the source
// image scaled to the view size, or the source itself while the view
// has no size. It returns nil if there is no image.
func (v *View) SquareImage() image.Image {
	if v.img == nil {
		return nil
	}
	if v.size.X <= 0 || v.size.Y <= 0 {
		return v.img
	}
	key := squareKey{
		gen:     v.imgGen,
		size:    v.size,
		padding: v.cfg.ImagePadding,
		mode:    v.cfg.ImageMode,
	}
	if v.square.img == nil || v.square.key != key {
		v.square.img = deriveSquare(v.img, v.size, key.padding, key.mode)
		v.square.key = key
	}
	return v.square.img
}

// deriveSquare scales the part of src selected by mode into a new
// image of the given size, inset by padding on every side.
func deriveSquare(src image.Image, size image.Point, padding int, mode ImageMode) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	dr := image.Rectangle{
		Min: image.Pt(padding, padding),
		Max: size.Sub(image.Pt(padding, padding)),
	}
	sr := CropRect(src.Bounds(), mode)
	if dr.Empty() || sr.Empty() {
		return dst
	}
	draw.BiLinear.Scale(dst, dr, src, sr, draw.Src, nil)
	return dst
}
