package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOutCubic decelerates toward the target.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
