// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// CircleStyle lays out a View with Gio.
type CircleStyle struct {
	View *View
	// Padding is the padding of the view. The largest side determines
	// how far the disc is inset.
	Padding layout.Inset
	// Size is the diameter used when the constraints do not set a
	// minimum size.
	Size unit.Dp
}

func Circle(v *View) CircleStyle {
	return CircleStyle{
		View: v,
		Size: 48,
	}
}

func (c CircleStyle) Layout(gtx layout.Context) layout.Dimensions {
	diam := max(gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
	if diam == 0 {
		diam = gtx.Dp(c.Size)
	}
	sz := gtx.Constraints.Constrain(image.Pt(diam, diam))
	v := c.View
	v.SetBounds(sz, Padding{
		Left:   gtx.Dp(c.Padding.Left),
		Top:    gtx.Dp(c.Padding.Top),
		Right:  gtx.Dp(c.Padding.Right),
		Bottom: gtx.Dp(c.Padding.Bottom),
	})
	v.Step(gtx.Now)
	if v.Animating() {
		gtx.Execute(op.InvalidateCmd{})
	}
	v.ops.Begin(gtx.Ops)
	v.Draw(&v.ops)
	return layout.Dimensions{Size: sz}
}
