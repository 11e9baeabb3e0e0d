// SPDX-License-Identifier: Unlicense OR MIT

// Package arc approximates elliptical arcs with quadratic Bézier
// curves for the path builders of the drawing surfaces.
package arc

import (
	"math"

	"gioui.org/f32"
)

// Pather is the subset of a path builder used by the arc functions.
// Coordinates are absolute. A gioui.org/op/clip.Path satisfies it.
type Pather interface {
	MoveTo(to f32.Point)
	LineTo(to f32.Point)
	QuadTo(ctrl, to f32.Point)
}

// maxArcLen is the maximum length in pixels of a single curve
// segment. Shorter segments reduce the approximation error.
const maxArcLen = 20

// Oval describes an axis aligned ellipse by its center and radii.
type Oval struct {
	Center f32.Point
	Radius f32.Point
}

// Point returns the point on the oval at angle radians, where 0 is
// the positive x axis and positive angles turn clockwise on screen.
func (o Oval) Point(angle float64) f32.Point {
	sin, cos := math.Sincos(angle)
	return o.scale(cos, sin)
}

func (o Oval) scale(x, y float64) f32.Point {
	return f32.Point{
		X: o.Center.X + float32(x)*o.Radius.X,
		Y: o.Center.Y + float32(y)*o.Radius.Y,
	}
}

// Wedge adds a pie slice to p: from the center to the start of the
// arc, then along the arc. Angles are in degrees, 0 at 3
// o'clock and clockwise positive. Sweeps beyond a full turn are
// limited to one turn. The caller closes the path.
func Wedge(p Pather, o Oval, startDeg, sweepDeg float32) {
	start, sweep := radians(startDeg), radians(clampTurn(sweepDeg))
	p.MoveTo(o.Center)
	p.LineTo(o.Point(start))
	segments(p, o, start, sweep)
}

// Ellipse adds the full outline of o to p, starting at 3 o'clock.
func Ellipse(p Pather, o Oval) {
	p.MoveTo(o.Point(0))
	segments(p, o, 0, 2*math.Pi)
}

// segments adds curves along o from the angle start through sweep,
// assuming the pen is already at o.Point(start).
func segments(p Pather, o Oval, start, sweep float64) {
	if sweep == 0 {
		return
	}
	radius := math.Max(float64(o.Radius.X), float64(o.Radius.Y))
	// Keep each segment below a quarter turn; the control point
	// formula degenerates as the segment approaches half a turn.
	step := math.Pi / 4
	if radius > 0 {
		step = math.Min(step, maxArcLen/radius)
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	delta := sweep / float64(n)

	sins, coss := math.Sincos(start)
	for i := 1; i <= n; i++ {
		angle := start + delta*float64(i)
		sine, cose := math.Sincos(angle)
		// https://pomax.github.io/bezierinfo/#circles
		div := 1. / (coss*sine - cose*sins)
		ctrl := o.scale((sine-sins)*div, -(cose-coss)*div)
		p.QuadTo(ctrl, o.scale(cose, sine))
		sins, coss = sine, cose
	}
}

func clampTurn(deg float32) float32 {
	switch {
	case deg > 360:
		return 360
	case deg < -360:
		return -360
	}
	return deg
}

func radians(deg float32) float64 {
	return float64(deg) * math.Pi / 180
}
