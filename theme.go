// theme.go re-exports style, theme and animation types from internal packages.
package borealis

import (
	"github.com/grindlemire/borealis/internal/anim"
	"github.com/grindlemire/borealis/internal/style"
)

// Style holds the numeric layout constants.
type Style = style.Style

// Theme holds the colors used while drawing.
type Theme = style.Theme

// Color is an RGB color with alpha.
type Color = style.Color

// StyleStore is a validated snapshot of style and theme values.
type StyleStore = style.Store

// Scheduler registers time-driven transitions.
type Scheduler = anim.Scheduler

// Transition describes a value change driven by a Scheduler.
type Transition = anim.Transition

// Handle controls a scheduled transition.
type Handle = anim.Handle

// Timeline is the frame-driven Scheduler used by App.
type Timeline = anim.Timeline

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return style.RGB(r, g, b)
}

// RGBA returns a color from 8-bit components and a [0,1] alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return style.RGBA(r, g, b, a)
}

// ParseColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	return style.ParseColor(s)
}

// DefaultStyle returns the built-in style.
func DefaultStyle() Style {
	return style.Default()
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return style.DarkTheme()
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return style.LightTheme()
}

// NewTimeline creates an empty Timeline.
func NewTimeline() *Timeline {
	return anim.NewTimeline()
}
