// SPDX-License-Identifier: Unlicense OR MIT

package circle

import "time"

// AnimatePercentage starts animating the percentage from its current
// value to target, clamped to [0, 1], over duration and shaped by the
// configured interpolator. An animation in flight is abandoned without
// notice; the new one continues from the current value.
func (v *View) AnimatePercentage(target float32, duration time.Duration) {
	v.percentage.Animate(clamp(target, 0, 1), duration, v.cfg.Interpolator)
	v.invalidate()
}

// Animating reports whether a percentage animation is in flight.
func (v *View) Animating() bool {
	return v.percentage.Active()
}

// Tick advances the percentage animation to the linear elapsed
// fraction and reports whether the animation completed. The percentage
// equals the target exactly after completion.
func (v *View) Tick(fraction float32) (done bool) {
	if !v.percentage.Active() {
		return false
	}
	v.invalidate()
	return v.percentage.Tick(fraction)
}

// Step advances the percentage animation to the frame time now and
// reports whether the animation completed.
func (v *View) Step(now time.Time) (done bool) {
	if !v.percentage.Active() {
		return false
	}
	v.invalidate()
	return v.percentage.Step(now)
}
