// Package cli provides status formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/modern/internal/audit"
	"github.com/opencode-ai/modern/internal/theme"
)

func formatCheckResult(result audit.Result) string {
	label, color := statusLabelForCheck(result)
	return colorize(formatStatusLabel(label, result.Check), color)
}

func statusLabelForCheck(result audit.Result) (string, theme.Color) {
	switch {
	case result.Evaluated == 0:
		return "WARN", colorYellow
	case result.Passed():
		return "OK", colorGreen
	default:
		return "ERR", colorRed
	}
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "-", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
