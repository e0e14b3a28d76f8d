// Package theme resolves widget style records for the Modern light and dark
// themes.
//
// Every resolver is a pure function of its arguments: the palette is derived
// from the mode on each call and the returned records are comparable values.
package theme

import "encoding/json"

// Status is the interaction status a host toolkit reports for a widget.
// Widgets honour the subset that applies to them and treat any other value
// as Active.
type Status int

const (
	Active Status = iota
	Hovered
	Pressed
	Focused
	Opened
	Disabled
)

var statusNames = []string{"active", "hovered", "pressed", "focused", "opened", "disabled"}

func (s Status) String() string {
	return nameOf(statusNames, s)
}

// ParseStatus parses a status name such as "hovered".
func ParseStatus(value string) (Status, error) {
	return parseName[Status]("status", statusNames, value)
}

// Statuses lists every status.
func Statuses() []Status {
	return allOf[Status](statusNames)
}

// Vector is a 2D offset in logical pixels.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Background is an optional solid fill.
type Background struct {
	Color Color `json:"color" yaml:"color"`
	Valid bool  `json:"valid" yaml:"valid"`
}

// NoBackground leaves the widget unfilled.
var NoBackground = Background{}

// Fill returns a solid background.
func Fill(c Color) Background {
	return Background{Color: c, Valid: true}
}

// Map applies fn to the fill color, if any.
func (b Background) Map(fn func(Color) Color) Background {
	if !b.Valid {
		return b
	}
	return Fill(fn(b.Color))
}

// MarshalJSON encodes a fill as its color and no fill as null.
func (b Background) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(b.Color)
}

// MarshalYAML encodes a fill as its color and no fill as null.
func (b Background) MarshalYAML() (any, error) {
	if !b.Valid {
		return nil, nil
	}
	return b.Color.String(), nil
}

// Border describes a widget outline. The zero value draws nothing.
type Border struct {
	Width  float64 `json:"width" yaml:"width"`
	Radius float64 `json:"radius" yaml:"radius"`
	Color  Color   `json:"color" yaml:"color"`
}

// Shadow describes a drop shadow. The zero value draws nothing.
type Shadow struct {
	Color      Color   `json:"color" yaml:"color"`
	Offset     Vector  `json:"offset" yaml:"offset"`
	BlurRadius float64 `json:"blur_radius" yaml:"blur_radius"`
}

// IsZero reports whether the shadow is absent.
func (s Shadow) IsZero() bool {
	return s == Shadow{}
}

func dropShadow(alpha, x, y, blur float64) Shadow {
	return Shadow{
		Color:      Black.WithAlpha(alpha),
		Offset:     Vector{X: x, Y: y},
		BlurRadius: blur,
	}
}

const (
	hoverDelta   = 0.05
	pressedDelta = 0.10
)

// shift moves c toward white in dark mode and toward black in light mode.
func shift(c Color, mode Mode, delta float64) Color {
	if mode.IsDark() {
		return c.Lighten(delta)
	}
	return c.Darken(delta)
}
