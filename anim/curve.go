// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "math"

// Interpolator maps the linear elapsed fraction of an animation, in
// [0, 1], to the fraction of the value change to apply. Curves map 0
// to 0 and 1 to 1 but may leave [0, 1] in between.
type Interpolator func(t float32) float32

// Linear is the identity curve.
func Linear(t float32) float32 { return t }

// EaseIn starts slowly and accelerates.
func EaseIn(t float32) float32 { return t * t }

// EaseOut starts quickly and decelerates.
func EaseOut(t float32) float32 {
	t = 1 - t
	return 1 - t*t
}

// EaseInOut accelerates through the first half and decelerates
// through the second.
func EaseInOut(t float32) float32 {
	return float32(math.Cos(float64(t+1)*math.Pi))/2 + .5
}

// Anticipate returns a curve that first moves backwards before
// flinging forward. Larger tensions move further back; 2 is a common
// choice.
func Anticipate(tension float32) Interpolator {
	return func(t float32) float32 {
		return t * t * ((tension+1)*t - tension)
	}
}

// Overshoot returns a curve that flings past the end and settles
// back. Larger tensions overshoot further.
func Overshoot(tension float32) Interpolator {
	return func(t float32) float32 {
		t -= 1
		return t*t*((tension+1)*t+tension) + 1
	}
}

// Bounce ends with a few decaying bounces.
func Bounce(t float32) float32 {
	bounce := func(t float32) float32 { return t * t * 8 }
	if t >= 1 {
		return 1
	}
	t *= 1.1226
	switch {
	case t < .3535:
		return bounce(t)
	case t < .7408:
		return bounce(t-.54719) + .7
	case t < .9644:
		return bounce(t-.8526) + .9
	default:
		return bounce(t-1.0435) + .95
	}
}
