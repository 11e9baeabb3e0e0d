// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/circleview/circle"
	"github.com/circleview/circle/surface"
)

const animDuration = 600 * time.Millisecond

type UI struct {
	theme *material.Theme
	list  widget.List
	rows  []*row
	all   widget.Clickable
}

type row struct {
	view    *circle.View
	shuffle widget.Clickable
	clear   widget.Clickable
	img     image.Image
}

func newUI(cfg circle.Config, img image.Image, n int) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &UI{theme: th}
	u.list.Axis = layout.Vertical
	for i := 0; i < n; i++ {
		c := cfg
		if i%2 == 1 {
			c.Direction = circle.Clockwise
		}
		if i%3 == 0 {
			c.Shadow = surface.Shadow{
				Radius: 4,
				Offset: f32.Pt(0, 2),
				Color:  color.NRGBA{A: 0x60},
			}
		}
		v := circle.New()
		v.SetConfig(c)
		v.SetPercentage(rand.Float32())
		if img != nil {
			v.SetImage(img)
		}
		u.rows = append(u.rows, &row{view: v, img: img})
	}
	return u
}

func (u *UI) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	if u.all.Clicked(gtx) {
		for _, r := range u.rows {
			r.view.AnimatePercentage(rand.Float32(), animDuration)
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(8).Layout(gtx,
				material.Button(u.theme, &u.all, "Shuffle all").Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(u.theme, &u.list).Layout(gtx, len(u.rows), u.layoutRow)
		}),
	)
}

func (u *UI) layoutRow(gtx layout.Context, i int) layout.Dimensions {
	r := u.rows[i]
	if r.shuffle.Clicked(gtx) {
		r.view.AnimatePercentage(rand.Float32(), animDuration)
	}
	if r.clear.Clicked(gtx) {
		if r.view.Image() != nil {
			r.view.ClearImage()
		} else if r.img != nil {
			r.view.SetImage(r.img)
		}
	}
	in := layout.UniformInset(8)
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			c := circle.Circle(r.view)
			c.Size = 96
			c.Padding = layout.UniformInset(4)
			return in.Layout(gtx, c.Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			label := fmt.Sprintf("%.0f%% %v", r.view.Percentage()*100, r.view.Config().Direction)
			return in.Layout(gtx, material.Body1(u.theme, label).Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return in.Layout(gtx, material.Button(u.theme, &r.shuffle, "Shuffle").Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if r.img == nil {
				return layout.Dimensions{}
			}
			return in.Layout(gtx, material.Button(u.theme, &r.clear, "Image").Layout)
		}),
	)
}
