// Package anim schedules time-driven value transitions for the view tree.
//
// A Transition moves a float64 subject from one value to a target over a
// duration with an easing curve. Schedule returns a Handle; the owner keeps
// the handle and cancels through it before mutating the subject again or
// before the owner goes away. A Timeline advances every live transition
// synchronously inside the frame tick, so callbacks never run concurrently
// with layout or draw.
package anim
