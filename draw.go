// SPDX-License-Identifier: Unlicense OR MIT

package circle

import "github.com/circleview/circle/surface"

// Draw paints the view onto s: the background disc, the arc and the
// image, in that order. It clears the dirty flag.
func (v *View) Draw(s surface.Surface) {
	v.dirty = false
	center := v.center()
	s.FillCircle(center, v.discRadius(), surface.Paint{
		Color:  v.cfg.Background,
		Shadow: v.cfg.Shadow,
	})
	s.FillArc(v.arcRect(), startAngle, v.Sweep(), v.cfg.Foreground)
	if v.img == nil {
		return
	}
	if v.cfg.ImageMode == Absolute {
		s.DrawImage(v.img, v.absolutePos(v.img))
		return
	}
	s.DrawImageCircle(v.SquareImage(), center, v.imageRadius())
}
