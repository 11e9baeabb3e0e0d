// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software surface.Surface that paints
into an image.RGBA. It is useful for tests, thumbnails and hosts
without a GPU.
*/
package raster

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"github.com/circleview/circle/internal/arc"
	"github.com/circleview/circle/internal/f32color"
	"github.com/circleview/circle/surface"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Surface paints into Dst.
type Surface struct {
	Dst *image.RGBA

	z vector.Rasterizer
}

var _ surface.Surface = (*Surface)(nil)

// New returns a Surface with a transparent destination of the given
// size.
func New(size image.Point) *Surface {
	return &Surface{Dst: image.NewRGBA(image.Rectangle{Max: size})}
}

// Clear fills the destination with c.
func (s *Surface) Clear(c color.NRGBA) {
	draw.Draw(s.Dst, s.Dst.Bounds(), uniform(c), image.Point{}, draw.Src)
}

// path adapts the rasterizer to arc.Pather.
type path struct {
	z *vector.Rasterizer
}

func (p path) MoveTo(to f32.Point) { p.z.MoveTo(to.X, to.Y) }
func (p path) LineTo(to f32.Point) { p.z.LineTo(to.X, to.Y) }
func (p path) QuadTo(ctrl, to f32.Point) {
	p.z.QuadTo(ctrl.X, ctrl.Y, to.X, to.Y)
}

func (s *Surface) begin() path {
	b := s.Dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	return path{z: &s.z}
}

// fill composites src through the current path.
func (s *Surface) fill(src image.Image, sp image.Point) {
	s.z.ClosePath()
	s.z.Draw(s.Dst, s.Dst.Bounds(), src, sp)
}

func (s *Surface) FillCircle(center f32.Point, radius float32, p surface.Paint) {
	if radius <= 0 {
		return
	}
	for _, l := range p.Shadow.Layers() {
		c := f32.Pt(center.X+l.Offset.X, center.Y+l.Offset.Y)
		arc.Ellipse(s.begin(), surface.Circle(c, radius+l.Grow))
		s.fill(uniform(l.Color), image.Point{})
	}
	arc.Ellipse(s.begin(), surface.Circle(center, radius))
	s.fill(uniform(p.Color), image.Point{})
}

func (s *Surface) FillArc(oval surface.Rect, start, sweep float32, c color.NRGBA) {
	if sweep == 0 || oval.Empty() {
		return
	}
	arc.Wedge(s.begin(), oval.Oval(), start, sweep)
	s.fill(uniform(c), image.Point{})
}

func (s *Surface) DrawImageCircle(img image.Image, center f32.Point, radius float32) {
	if img == nil || radius <= 0 {
		return
	}
	arc.Ellipse(s.begin(), surface.Circle(center, radius))
	s.fill(img, img.Bounds().Min)
}

func (s *Surface) DrawImage(img image.Image, pos image.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r := image.Rectangle{Min: pos, Max: pos.Add(b.Size())}
	draw.Draw(s.Dst, r, img, b.Min, draw.Over)
}

// At returns the non-premultiplied color at (x, y).
func (s *Surface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.Dst.At(x, y)).(color.NRGBA)
}

func uniform(c color.NRGBA) *image.Uniform {
	return image.NewUniform(f32color.Premul(c))
}
