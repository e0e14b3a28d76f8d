package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA color with channels in [0,1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Transparent = Color{}
)

// FromRGB returns an opaque color from float channels.
func FromRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromRGBA returns a color from float channels including alpha.
func FromRGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGB8 returns an opaque color from 8-bit channels.
func FromRGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(value string) (Color, error) {
	value = strings.TrimSpace(value)
	alpha := 1.0
	if len(value) == 9 && strings.HasPrefix(value, "#") {
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q: %w", value, err)
		}
		alpha = float64(a) / 255
		value = value[:7]
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustHex is ParseHex for package-level literals.
func MustHex(value string) Color {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String returns "#rrggbb", or "#rrggbbaa" when the color is not opaque.
func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(clamp01(c.A)*255)))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ScaleAlpha multiplies the alpha channel by factor.
func (c Color) ScaleAlpha(factor float64) Color {
	c.A *= factor
	return c
}

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = alpha
	return c
}

// Lighten adds delta to each color channel, clamped to 1. Alpha is kept.
func (c Color) Lighten(delta float64) Color {
	return Color{
		R: math.Min(c.R+delta, 1),
		G: math.Min(c.G+delta, 1),
		B: math.Min(c.B+delta, 1),
		A: c.A,
	}
}

// Darken subtracts delta from each color channel, clamped to 0. Alpha is kept.
func (c Color) Darken(delta float64) Color {
	return Color{
		R: math.Max(c.R-delta, 0),
		G: math.Max(c.G-delta, 0),
		B: math.Max(c.B-delta, 0),
		A: c.A,
	}
}

// Over composites c onto an opaque backdrop and returns an opaque color.
func (c Color) Over(backdrop Color) Color {
	blended := backdrop.colorful().BlendRgb(c.colorful(), clamp01(c.A)).Clamped()
	return Color{R: blended.R, G: blended.G, B: blended.B, A: 1}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
