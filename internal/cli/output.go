// Package cli provides structured output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/modern/internal/theme"
)

// IsJSONOutput reports whether --format json is active.
func IsJSONOutput() bool {
	return outputFormat() == "json"
}

// IsYAMLOutput reports whether --format yaml is active.
func IsYAMLOutput() bool {
	return outputFormat() == "yaml"
}

// IsStructuredOutput reports whether output is machine readable.
func IsStructuredOutput() bool {
	return IsJSONOutput() || IsYAMLOutput()
}

// WriteOutput encodes v in the active structured format.
func WriteOutput(out io.Writer, v any) error {
	switch outputFormat() {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

var (
	colorGreen  = theme.SystemGreen
	colorRed    = theme.SystemRed
	colorYellow = theme.SystemOrange
	colorBlue   = theme.SystemBlue
)

// colorize paints text unless colors are disabled. lipgloss drops the color
// by itself when stdout is not a terminal.
func colorize(text string, color theme.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render(text)
}

// swatch renders a two-cell block of color followed by its hex code.
func swatch(c theme.Color, backdrop theme.Color) string {
	if noColor {
		return c.String()
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(c.Over(backdrop).Hex())).Render("  ")
	return block + " " + c.String()
}
