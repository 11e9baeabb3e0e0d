// SPDX-License-Identifier: Unlicense OR MIT

package surface

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/f32"
)

func TestShadowLayers(t *testing.T) {
	black := color.NRGBA{A: 0xff}
	tests := []struct {
		label  string
		shadow Shadow
		layers int
	}{
		{"disabled", Shadow{Color: black}, 0},
		{"negative", Shadow{Radius: -3, Color: black}, 0},
		{"transparent", Shadow{Radius: 4}, 0},
		{"small", Shadow{Radius: 1, Color: black}, 1},
		{"medium", Shadow{Radius: 6, Color: black}, 3},
		{"capped", Shadow{Radius: 100, Color: black}, maxShadowLayers},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			layers := tc.shadow.Layers()
			if len(layers) != tc.layers {
				t.Fatalf("got %d layers, expected %d", len(layers), tc.layers)
			}
			for i, l := range layers {
				if l.Offset != tc.shadow.Offset {
					t.Errorf("layer %d: offset %v, expected %v", i, l.Offset, tc.shadow.Offset)
				}
				if i > 0 && l.Grow >= layers[i-1].Grow {
					t.Errorf("layer %d: grow %v not smaller than %v", i, l.Grow, layers[i-1].Grow)
				}
				if l.Color.A == 0 || l.Color.A >= tc.shadow.Color.A {
					t.Errorf("layer %d: alpha %v out of range", i, l.Color.A)
				}
			}
			if n := len(layers); n > 0 && layers[0].Grow != tc.shadow.Radius {
				t.Errorf("outer layer grows %v, expected %v", layers[0].Grow, tc.shadow.Radius)
			}
		})
	}
}

func TestRectOval(t *testing.T) {
	r := FRect(image.Rect(10, 20, 110, 70))
	if r.Empty() {
		t.Fatal("non-empty rectangle reported empty")
	}
	o := r.Oval()
	if o.Center != f32.Pt(60, 45) {
		t.Errorf("center %v, expected (60, 45)", o.Center)
	}
	if o.Radius != f32.Pt(50, 25) {
		t.Errorf("radius %v, expected (50, 25)", o.Radius)
	}
	if !FRect(image.Rect(5, 5, 5, 10)).Empty() {
		t.Error("zero width rectangle not empty")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	r.FillCircle(f32.Pt(1, 2), 3, Paint{})
	r.FillArc(Rect{}, 270, 90, color.NRGBA{})
	r.DrawImageCircle(img, f32.Pt(2, 2), 2)
	r.DrawImage(img, image.Pt(1, 1))
	want := []Kind{KindCircle, KindArc, KindImageCircle, KindImage}
	if len(r.Calls) != len(want) {
		t.Fatalf("recorded %d calls, expected %d", len(r.Calls), len(want))
	}
	for i, k := range want {
		if r.Calls[i].Kind != k {
			t.Errorf("call %d: %v, expected %v", i, r.Calls[i].Kind, k)
		}
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("Reset left %d calls", len(r.Calls))
	}
}
