// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"image"

	"gioui.org/f32"
	"github.com/circleview/circle/surface"
)

// startAngle is 12 o'clock.
const startAngle = 270

func (v *View) center() f32.Point {
	return f32.Pt(float32(v.size.X)/2, float32(v.size.Y)/2)
}

func (v *View) largestPadding() int {
	p := v.padding
	return max(p.Left, p.Top, p.Right, p.Bottom)
}

// discRadius is the radius of the background disc.
func (v *View) discRadius() float32 {
	return float32(min(v.size.X, v.size.Y))/2 - float32(v.largestPadding())
}

// imageRadius is the radius of the circle the image is masked into.
func (v *View) imageRadius() float32 {
	return v.discRadius() - float32(v.cfg.InsetPadding)
}

// arcRect is the rectangle the arc is inscribed in: the padded view
// shrunk by the inset padding. It is Empty when the paddings exceed
// the view.
func (v *View) arcRect() surface.Rect {
	in := v.cfg.InsetPadding
	p := v.padding
	return surface.FRect(image.Rectangle{
		Min: image.Pt(p.Left+in, p.Top+in),
		Max: image.Pt(v.size.X-p.Right-in, v.size.Y-p.Bottom-in),
	})
}

// Sweep returns the signed sweep of the arc in degrees.
func (v *View) Sweep() float32 {
	return float32(v.cfg.Direction) * 360 * v.Percentage()
}

// absolutePos is where an Absolute image is drawn to center it.
func (v *View) absolutePos(img image.Image) image.Point {
	sz := img.Bounds().Size()
	return image.Pt((v.size.X-sz.X)/2, (v.size.Y-sz.Y)/2)
}

// CropRect returns the part of an image with bounds b that is scaled
// onto the view in mode m: the centered maximal square for CenterCrop
// and all of b otherwise.
func CropRect(b image.Rectangle, m ImageMode) image.Rectangle {
	if m != CenterCrop {
		return b
	}
	w, h := b.Dx(), b.Dy()
	s := min(w, h)
	// The square keeps the full short side. An odd difference puts the
	// extra pixel after the square: 200x101 crops to [49,0]-[150,101].
	off := image.Pt((w-s)/2, (h-s)/2)
	r := image.Rectangle{Min: off, Max: off.Add(image.Pt(s, s))}
	return r.Add(b.Min)
}
