// SPDX-License-Identifier: Unlicense OR MIT

/*
Package circle implements a circular view: a background disc, a
pie-shaped progress arc over it and an optional image masked into the
circle.

A View holds the state. The host reports its size and padding with
SetBounds, pushes new values through the setters and paints the view
with Draw onto any surface.Surface. CircleStyle does all three for a
Gio layout.

	v := circle.New()
	v.SetImage(img)
	v.AnimatePercentage(.75, 300*time.Millisecond)
	...
	circle.Circle(v).Layout(gtx)
*/
package circle

import (
	"fmt"
	"image"
	"image/color"

	"github.com/circleview/circle/anim"
	"github.com/circleview/circle/surface"
	"github.com/circleview/circle/surface/gioop"
	"golang.org/x/exp/constraints"
)

// Direction is the direction the arc grows in from 12 o'clock.
type Direction int8

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// ImageMode controls how the image maps onto the view.
type ImageMode uint8

const (
	// Fill stretches the whole image over the view and masks it
	// into the circle.
	Fill ImageMode = iota
	// CenterCrop takes the largest centered square of the image,
	// stretches it over the view and masks it into the circle.
	CenterCrop
	// Absolute draws the image unscaled and unmasked, centered in
	// the view.
	Absolute
)

// Padding is the layout padding of the view, in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Config is the appearance of a View.
type Config struct {
	Background color.NRGBA
	Foreground color.NRGBA
	// Shadow is drawn under the background disc. The zero Shadow
	// draws none.
	Shadow    surface.Shadow
	Direction Direction
	// InsetPadding shrinks the arc, and the image circle, inside
	// the background disc.
	InsetPadding int
	// ImagePadding shrinks the scaled image inside the view.
	ImagePadding int
	ImageMode    ImageMode
	// Interpolator shapes percentage animations. Nil means
	// anim.Linear.
	Interpolator anim.Interpolator
}

// DefaultConfig is the configuration of a new View.
var DefaultConfig = Config{
	Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Foreground: color.NRGBA{R: 0xff, A: 0xff},
	Direction:  CounterClockwise,
	ImageMode:  CenterCrop,
}

// View is the state of a circle view. The zero value is not usable;
// use New.
type View struct {
	cfg        Config
	percentage anim.Float

	size    image.Point
	padding Padding

	img    image.Image
	imgGen uint64
	square struct {
		key squareKey
		img *image.RGBA
	}

	dirty bool
	ops   gioop.Surface
}

// New returns a View with the DefaultConfig and a percentage of 0.
func New() *View {
	return &View{cfg: DefaultConfig, dirty: true}
}

// Config returns the current configuration.
func (v *View) Config() Config {
	return v.cfg
}

// SetConfig replaces the configuration. Out of range values are
// clamped like the individual setters do.
func (v *View) SetConfig(cfg Config) {
	cfg.InsetPadding = max(cfg.InsetPadding, 0)
	cfg.ImagePadding = max(cfg.ImagePadding, 0)
	if cfg.Direction != CounterClockwise {
		cfg.Direction = Clockwise
	}
	if cfg.ImageMode > Absolute {
		cfg.ImageMode = Fill
	}
	if cfg.Shadow.Radius < 0 {
		cfg.Shadow.Radius = 0
	}
	v.cfg = cfg
	v.invalidate()
}

// Percentage returns the fraction of the circle covered by the arc.
// During an animation it is the animated value, clamped to [0, 1] for
// curves that undershoot or overshoot.
func (v *View) Percentage() float32 {
	return clamp(v.percentage.Value(), 0, 1)
}

// SetPercentage sets the arc fraction, clamped to [0, 1], and stops
// any percentage animation.
func (v *View) SetPercentage(p float32) {
	v.percentage.Set(clamp(p, 0, 1))
	v.invalidate()
}

func (v *View) SetBackground(c color.NRGBA) {
	v.cfg.Background = c
	v.invalidate()
}

func (v *View) SetForeground(c color.NRGBA) {
	v.cfg.Foreground = c
	v.invalidate()
}

// SetShadow sets the shadow of the background disc. A radius of zero
// or less removes it.
func (v *View) SetShadow(s surface.Shadow) {
	cfg := v.cfg
	cfg.Shadow = s
	v.SetConfig(cfg)
}

// SetInsetPadding sets the inset of the arc. Negative values are
// treated as 0.
func (v *View) SetInsetPadding(px int) {
	cfg := v.cfg
	cfg.InsetPadding = px
	v.SetConfig(cfg)
}

// SetImagePadding sets the padding of the scaled image. Negative
// values are treated as 0.
func (v *View) SetImagePadding(px int) {
	cfg := v.cfg
	cfg.ImagePadding = px
	v.SetConfig(cfg)
}

func (v *View) SetImageMode(m ImageMode) {
	cfg := v.cfg
	cfg.ImageMode = m
	v.SetConfig(cfg)
}

func (v *View) SetDirection(d Direction) {
	cfg := v.cfg
	cfg.Direction = d
	v.SetConfig(cfg)
}

// SetInterpolator sets the curve of subsequent percentage animations.
func (v *View) SetInterpolator(i anim.Interpolator) {
	v.cfg.Interpolator = i
	v.invalidate()
}

// Image returns the source image, or nil.
func (v *View) Image() image.Image {
	return v.img
}

// SetImage sets the image drawn over the arc. A nil image is the same
// as ClearImage.
func (v *View) SetImage(img image.Image) {
	v.img = img
	v.imgGen++
	v.invalidate()
}

// ClearImage removes the image.
func (v *View) ClearImage() {
	v.SetImage(nil)
}

// Bounds returns the size and padding last reported by SetBounds.
func (v *View) Bounds() (image.Point, Padding) {
	return v.size, v.padding
}

// SetBounds reports the size and padding of the view. It is the
// layout callback of the host.
func (v *View) SetBounds(size image.Point, pad Padding) {
	pad.Left = max(pad.Left, 0)
	pad.Top = max(pad.Top, 0)
	pad.Right = max(pad.Right, 0)
	pad.Bottom = max(pad.Bottom, 0)
	if size == v.size && pad == v.padding {
		return
	}
	v.size, v.padding = size, pad
	v.invalidate()
}

// Dirty reports whether the view changed since the last Draw.
func (v *View) Dirty() bool {
	return v.dirty
}

func (v *View) invalidate() {
	v.dirty = true
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v != v:
		// NaN.
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

func (m ImageMode) String() string {
	switch m {
	case Fill:
		return "Fill"
	case CenterCrop:
		return "CenterCrop"
	case Absolute:
		return "Absolute"
	default:
		return fmt.Sprintf("ImageMode(%d)", uint8(m))
	}
}
