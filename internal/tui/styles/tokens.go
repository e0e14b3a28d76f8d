package styles

import "github.com/opencode-ai/modern/internal/theme"

// ThemeTokens holds the terminal colors of a theme as opaque hex strings.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles terminal tokens with the mode they were derived from.
type Theme struct {
	Name   string
	Mode   theme.Mode
	Tokens ThemeTokens
}

// ThemeFor derives the terminal theme for mode.
func ThemeFor(mode theme.Mode) Theme {
	return Theme{
		Name:   mode.String(),
		Mode:   mode,
		Tokens: TokensFor(mode),
	}
}

// TokensFor flattens the palette of mode onto its own background.
func TokensFor(mode theme.Mode) ThemeTokens {
	p := theme.PaletteFor(mode)
	hex := func(c theme.Color) string {
		return c.Over(p.Background).Hex()
	}

	return ThemeTokens{
		Background: hex(p.Background),
		Panel:      hex(p.CardBackground),
		Text:       hex(p.Text),
		TextMuted:  hex(p.SecondaryText),
		Border:     hex(p.InactiveBorder),
		Accent:     hex(p.Blue),
		Focus:      hex(p.Indigo),
		Success:    hex(p.Green),
		Warning:    hex(p.Orange),
		Error:      hex(p.Red),
		Info:       hex(p.Teal),
	}
}

// Themes lists available terminal themes by name.
var Themes = map[string]Theme{
	"light": ThemeFor(theme.Light),
	"dark":  ThemeFor(theme.Dark),
}
