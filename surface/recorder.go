// SPDX-License-Identifier: Unlicense OR MIT

package surface

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
)

// Kind identifies a recorded drawing call.
type Kind uint8

const (
	KindCircle Kind = iota
	KindArc
	KindImageCircle
	KindImage
)

// Call is a recorded drawing call. Only the fields relevant to its
// Kind are set.
type Call struct {
	Kind   Kind
	Center f32.Point
	Radius float32
	Paint  Paint
	Oval   Rect
	Start  float32
	Sweep  float32
	Color  color.NRGBA
	Image  image.Image
	Pos    image.Point
}

// Recorder is a Surface that records the calls made to it.
type Recorder struct {
	Calls []Call
}

var _ Surface = (*Recorder)(nil)

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) FillCircle(center f32.Point, radius float32, p Paint) {
	r.Calls = append(r.Calls, Call{Kind: KindCircle, Center: center, Radius: radius, Paint: p})
}

func (r *Recorder) FillArc(oval Rect, start, sweep float32, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: KindArc, Oval: oval, Start: start, Sweep: sweep, Color: c})
}

func (r *Recorder) DrawImageCircle(img image.Image, center f32.Point, radius float32) {
	r.Calls = append(r.Calls, Call{Kind: KindImageCircle, Image: img, Center: center, Radius: radius})
}

func (r *Recorder) DrawImage(img image.Image, pos image.Point) {
	r.Calls = append(r.Calls, Call{Kind: KindImage, Image: img, Pos: pos})
}

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindArc:
		return "Arc"
	case KindImageCircle:
		return "ImageCircle"
	case KindImage:
		return "Image"
	default:
		panic("invalid Kind")
	}
}

func (c Call) String() string {
	switch c.Kind {
	case KindCircle:
		return fmt.Sprintf("Circle(%v, %v, %v)", c.Center, c.Radius, c.Paint.Color)
	case KindArc:
		return fmt.Sprintf("Arc(%v-%v, %v, %v, %v)", c.Oval.Min, c.Oval.Max, c.Start, c.Sweep, c.Color)
	case KindImageCircle:
		return fmt.Sprintf("ImageCircle(%v, %v, %v)", c.Image.Bounds(), c.Center, c.Radius)
	default:
		return fmt.Sprintf("Image(%v, %v)", c.Image.Bounds(), c.Pos)
	}
}
