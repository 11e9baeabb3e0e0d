// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gioop implements surface.Surface with Gio operations.

Shapes become clip paths filled with paint.FillShape; images become
paint.ImageOps, cached across frames so the GPU texture of an unchanged
image is reused.
*/
package gioop

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/circleview/circle/internal/arc"
	"github.com/circleview/circle/surface"
)

// Surface adds drawing operations to Ops. Images passed to it must be
// comparable, which all the standard image types are.
type Surface struct {
	Ops *op.Ops

	images map[image.Image]paint.ImageOp
	prev   map[image.Image]paint.ImageOp
}

var _ surface.Surface = (*Surface)(nil)

// Begin prepares the surface for a frame drawn into ops. Cached images
// not used since the previous Begin are released.
func (s *Surface) Begin(ops *op.Ops) {
	s.Ops = ops
	s.prev, s.images = s.images, s.prev
	for k := range s.images {
		delete(s.images, k)
	}
}

func (s *Surface) imageOp(img image.Image) paint.ImageOp {
	if s.images == nil {
		s.images = make(map[image.Image]paint.ImageOp)
	}
	if o, ok := s.images[img]; ok {
		return o
	}
	o, ok := s.prev[img]
	if !ok {
		o = paint.NewImageOp(img)
		o.Filter = paint.FilterLinear
	}
	s.images[img] = o
	return o
}

func (s *Surface) ellipse(o arc.Oval) clip.Op {
	var p clip.Path
	p.Begin(s.Ops)
	arc.Ellipse(&p, o)
	p.Close()
	return clip.Outline{Path: p.End()}.Op()
}

func (s *Surface) FillCircle(center f32.Point, radius float32, pt surface.Paint) {
	if radius <= 0 {
		return
	}
	for _, l := range pt.Shadow.Layers() {
		c := f32.Pt(center.X+l.Offset.X, center.Y+l.Offset.Y)
		paint.FillShape(s.Ops, l.Color, s.ellipse(surface.Circle(c, radius+l.Grow)))
	}
	paint.FillShape(s.Ops, pt.Color, s.ellipse(surface.Circle(center, radius)))
}

func (s *Surface) FillArc(oval surface.Rect, start, sweep float32, c color.NRGBA) {
	if sweep == 0 || oval.Empty() {
		return
	}
	var p clip.Path
	p.Begin(s.Ops)
	arc.Wedge(&p, oval.Oval(), start, sweep)
	p.Close()
	paint.FillShape(s.Ops, c, clip.Outline{Path: p.End()}.Op())
}

func (s *Surface) DrawImageCircle(img image.Image, center f32.Point, radius float32) {
	if img == nil || radius <= 0 {
		return
	}
	defer s.ellipse(surface.Circle(center, radius)).Push(s.Ops).Pop()
	s.imageOp(img).Add(s.Ops)
	paint.PaintOp{}.Add(s.Ops)
}

func (s *Surface) DrawImage(img image.Image, pos image.Point) {
	if img == nil {
		return
	}
	defer op.Offset(pos).Push(s.Ops).Pop()
	s.imageOp(img).Add(s.Ops)
	paint.PaintOp{}.Add(s.Ops)
}
