// SPDX-License-Identifier: Unlicense OR MIT

/*
Package surface defines the drawing capabilities a circle view needs
from its host.

A Surface fills circles and pie slices, blits images and masks images
into circles. Implementations exist for Gio operation lists (package
gioop) and for software rendering into an image.RGBA (package raster).
The Recorder implementation captures the calls for inspection.

Angles are in degrees. 0° points to 3 o'clock and positive sweeps turn
clockwise on screen, so 270° is 12 o'clock.
*/
package surface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"github.com/circleview/circle/internal/arc"
	"github.com/circleview/circle/internal/f32color"
)

// Surface is an immediate mode drawing target. Later calls paint over
// earlier calls.
type Surface interface {
	// FillCircle fills the circle at center with the paint, drawing
	// its shadow first if the paint has one.
	FillCircle(center f32.Point, radius float32, p Paint)
	// FillArc fills the pie slice inscribed in oval starting at
	// start degrees and sweeping sweep degrees.
	FillArc(oval Rect, start, sweep float32, c color.NRGBA)
	// DrawImageCircle draws img with its top-left corner at the
	// origin, masked by the circle at center.
	DrawImageCircle(img image.Image, center f32.Point, radius float32)
	// DrawImage draws img unscaled and unclipped with its top-left
	// corner at pos.
	DrawImage(img image.Image, pos image.Point)
}

// Paint describes how a filled shape is drawn.
type Paint struct {
	Color  color.NRGBA
	Shadow Shadow
}

// Shadow is a drop shadow. A Radius of zero or less disables it.
type Shadow struct {
	// Radius is the blur radius in pixels.
	Radius float32
	// Offset moves the shadow relative to the shape.
	Offset f32.Point
	Color  color.NRGBA
}

// Enabled reports whether the shadow is drawn at all.
func (s Shadow) Enabled() bool {
	return s.Radius > 0 && s.Color.A > 0
}

// ShadowLayer is one of the translucent shapes that together make up
// a soft shadow.
type ShadowLayer struct {
	Offset f32.Point
	// Grow is added to the radius of the shadowed shape.
	Grow  float32
	Color color.NRGBA
}

const maxShadowLayers = 8

// Layers approximates the blurred shadow by a stack of translucent
// shapes, largest first. It returns nil for a disabled shadow.
func (s Shadow) Layers() []ShadowLayer {
	if !s.Enabled() {
		return nil
	}
	n := int(math.Ceil(float64(s.Radius) / 2))
	if n > maxShadowLayers {
		n = maxShadowLayers
	}
	// n layers of alpha a accumulate to about the shadow alpha at the
	// center: 1-(1-a)^n = 1/2.
	a := float32(1 - math.Pow(.5, 1/float64(n)))
	layers := make([]ShadowLayer, n)
	for i := range layers {
		layers[i] = ShadowLayer{
			Offset: s.Offset,
			Grow:   s.Radius * float32(n-i) / float32(n),
			Color:  f32color.MulAlpha(s.Color, a),
		}
	}
	return layers
}

// Rect is a rectangle with floating point coordinates.
type Rect struct {
	Min, Max f32.Point
}

// FRect converts r.
func FRect(r image.Rectangle) Rect {
	return Rect{
		Min: f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		Max: f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Oval returns the ellipse inscribed in r.
func (r Rect) Oval() arc.Oval {
	return arc.Oval{
		Center: f32.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2),
		Radius: f32.Pt(r.Dx()/2, r.Dy()/2),
	}
}

// Circle returns the oval of the circle at center.
func Circle(center f32.Point, radius float32) arc.Oval {
	return arc.Oval{Center: center, Radius: f32.Pt(radius, radius)}
}
