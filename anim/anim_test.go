// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"
	"testing"
	"time"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Interpolator{
		"linear":     Linear,
		"ease-in":    EaseIn,
		"ease-out":   EaseOut,
		"ease-inout": EaseInOut,
		"anticipate": Anticipate(2),
		"overshoot":  Overshoot(2),
		"bounce":     Bounce,
	}
	for name, c := range curves {
		if v := c(0); math.Abs(float64(v)) > 1e-3 {
			t.Errorf("%s(0) = %v, expected 0", name, v)
		}
		if v := c(1); math.Abs(float64(v-1)) > 1e-3 {
			t.Errorf("%s(1) = %v, expected 1", name, v)
		}
	}
	if v := Overshoot(2)(.8); v <= 1 {
		t.Errorf("overshoot(.8) = %v, expected > 1", v)
	}
	if v := Anticipate(2)(.2); v >= 0 {
		t.Errorf("anticipate(.2) = %v, expected < 0", v)
	}
}

func TestAnimateEndsExactly(t *testing.T) {
	curves := []Interpolator{nil, Linear, EaseIn, EaseOut, EaseInOut, Anticipate(2), Overshoot(1.5), Bounce}
	for i, c := range curves {
		var f Float
		f.Set(.1)
		f.Animate(.7, time.Second, c)
		for _, frac := range []float32{.1, .33, .5, .9, .999} {
			if f.Tick(frac) {
				t.Fatalf("curve %d: completed early at %v", i, frac)
			}
		}
		if !f.Tick(1.2) {
			t.Fatalf("curve %d: not completed", i)
		}
		if v := f.Value(); v != .7 {
			t.Errorf("curve %d: ended at %v, expected exactly .7", i, v)
		}
		if f.Active() {
			t.Errorf("curve %d: still active after completion", i)
		}
		if f.Tick(1) {
			t.Errorf("curve %d: completed twice", i)
		}
	}
}

func TestAnimateLinear(t *testing.T) {
	var f Float
	f.Animate(1, time.Second, nil)
	if got := f.Target(); got != 1 {
		t.Errorf("target %v, expected 1", got)
	}
	f.Tick(.25)
	if got := f.Value(); got != .25 {
		t.Errorf("value %v, expected .25", got)
	}
	f.Tick(-1)
	if got := f.Value(); got != 0 {
		t.Errorf("negative fraction gave %v, expected 0", got)
	}
}

func TestSupersede(t *testing.T) {
	var f Float
	f.Animate(1, time.Second, Linear)
	f.Tick(.4)
	mid := f.Value()

	f.Animate(0, time.Second, Linear)
	if f.Value() != mid {
		t.Fatalf("superseding moved the value from %v to %v", mid, f.Value())
	}
	f.Tick(0)
	if f.Value() != mid {
		t.Errorf("new animation starts at %v, expected %v", f.Value(), mid)
	}
	f.Tick(.5)
	if got, want := f.Value(), mid/2; math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("halfway value %v, expected %v", got, want)
	}
	if !f.Tick(1) || f.Value() != 0 {
		t.Errorf("superseding animation ended at %v, expected 0", f.Value())
	}
}

func TestSetCancels(t *testing.T) {
	var f Float
	f.Animate(1, time.Second, nil)
	f.Set(.3)
	if f.Active() {
		t.Error("Set did not cancel the animation")
	}
	if f.Tick(1) || f.Value() != .3 {
		t.Errorf("cancelled animation changed the value to %v", f.Value())
	}
	if f.Target() != .3 {
		t.Errorf("idle target %v, expected the value", f.Target())
	}
}

func TestStep(t *testing.T) {
	var f Float
	now := time.Unix(1000, 0)
	f.Animate(1, 100*time.Millisecond, Linear)
	if f.Step(now) {
		t.Fatal("first step completed the animation")
	}
	if f.Value() != 0 {
		t.Errorf("first step moved the value to %v", f.Value())
	}
	f.Step(now.Add(50 * time.Millisecond))
	if got := f.Value(); math.Abs(float64(got-.5)) > 1e-6 {
		t.Errorf("value at half time %v, expected .5", got)
	}
	if !f.Step(now.Add(120 * time.Millisecond)) {
		t.Fatal("animation not completed after its duration")
	}
	if f.Value() != 1 {
		t.Errorf("value %v after completion, expected 1", f.Value())
	}
}

func TestZeroDuration(t *testing.T) {
	var f Float
	f.Animate(.5, 0, nil)
	if !f.Active() {
		t.Fatal("zero duration animation not started")
	}
	if !f.Step(time.Now()) || f.Value() != .5 {
		t.Errorf("zero duration animation ended at %v, expected .5", f.Value())
	}
}

func TestTickNaN(t *testing.T) {
	var f Float
	f.Set(.4)
	f.Animate(1, time.Second, Overshoot(2))
	if f.Tick(float32(math.NaN())) {
		t.Fatal("NaN fraction completed the animation")
	}
	if f.Value() != .4 {
		t.Errorf("NaN fraction moved the value to %v, expected .4", f.Value())
	}
	if !f.Tick(1) || f.Value() != 1 {
		t.Errorf("animation ended at %v, expected 1", f.Value())
	}
}
