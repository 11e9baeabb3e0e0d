// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim animates a single float32 value.

A Float is either idle or animating towards a target. The host drives
an animation by calling Tick with the linear elapsed fraction, or Step
with the current frame time; both report completion exactly once, on
the call that lands the value on its target.
*/
package anim

import "time"

// Float is an animated value. The zero value is idle at 0.
type Float struct {
	value  float32
	active bool

	start    float32
	target   float32
	duration time.Duration
	curve    Interpolator
	// began is the frame time of the first Step, or zero.
	began time.Time
}

// Value returns the current value.
func (f *Float) Value() float32 {
	return f.value
}

// Target returns the value the animation ends at, or the current
// value when idle.
func (f *Float) Target() float32 {
	if f.active {
		return f.target
	}
	return f.value
}

// Active reports whether an animation is in flight.
func (f *Float) Active() bool {
	return f.active
}

// Set stops any animation and sets the value.
func (f *Float) Set(v float32) {
	f.active = false
	f.value = v
}

// Animate starts an animation from the current value to target over
// duration, shaped by curve. A nil curve is Linear. An animation
// already in flight is abandoned; the new one starts from wherever the
// old one left the value.
func (f *Float) Animate(target float32, duration time.Duration, curve Interpolator) {
	if curve == nil {
		curve = Linear
	}
	f.start = f.value
	f.target = target
	f.duration = duration
	f.curve = curve
	f.began = time.Time{}
	f.active = true
}

// Tick advances the animation to the linear elapsed fraction. It
// reports whether this tick completed the animation. The value is set
// to the exact target on completion.
func (f *Float) Tick(fraction float32) (done bool) {
	if !f.active {
		return false
	}
	if fraction >= 1 || f.duration <= 0 {
		f.value = f.target
		f.active = false
		return true
	}
	if fraction != fraction || fraction < 0 {
		// NaN or before the start.
		fraction = 0
	}
	f.value = f.start + (f.target-f.start)*f.curve(fraction)
	return false
}

// Step advances the animation to the frame time now. The first Step
// after Animate marks the start of the animation.
func (f *Float) Step(now time.Time) (done bool) {
	if !f.active {
		return false
	}
	if f.began.IsZero() {
		f.began = now
	}
	var fraction float32 = 1
	if f.duration > 0 {
		fraction = float32(now.Sub(f.began)) / float32(f.duration)
	}
	return f.Tick(fraction)
}
