package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with a separate alpha channel in [0,1].
type Color struct {
	colorful.Color
	A float64
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color from 8-bit components and a [0,1] alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:     a,
	}
}

// Transparent is fully transparent black.
var Transparent = RGBA(0, 0, 0, 0)

// ParseColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q: missing leading #", s)
	}
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: invalid alpha: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{Color: c, A: alpha}, nil
}

// MustParseColor is ParseColor for literals. It panics on malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("borealis: " + err.Error())
	}
	return c
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Fade returns c with its alpha multiplied by f.
func (c Color) Fade(f float64) Color {
	c.A *= f
	return c
}

// Blend mixes c toward o by t in RGB space; alpha is interpolated linearly.
func (c Color) Blend(o Color, t float64) Color {
	return Color{
		Color: c.Color.BlendRgb(o.Color, t),
		A:     c.A + (o.A-c.A)*t,
	}
}

// Over composites c on top of an opaque background and returns the opaque
// result. Used by backends without alpha support.
func (c Color) Over(bg Color) Color {
	return Color{Color: bg.Color.BlendRgb(c.Color, c.A), A: 1}
}

// String formats the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) String() string {
	hex := c.Color.Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(clampUnit(c.A)*255+0.5))
}

// MarshalText encodes the color as its hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a hex string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as its hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
