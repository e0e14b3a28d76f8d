// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/styles"
)

// RenderStatusBadge renders an interaction status with icon and color.
func RenderStatusBadge(styleSet styles.Styles, status theme.Status) string {
	icon, label, style := statusDescriptor(styleSet, status)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func statusDescriptor(styleSet styles.Styles, status theme.Status) (string, string, lipgloss.Style) {
	switch status {
	case theme.Active:
		return "*", "Active", styleSet.Success
	case theme.Hovered:
		return "~", "Hovered", styleSet.Info
	case theme.Pressed:
		return "v", "Pressed", styleSet.Accent
	case theme.Focused:
		return ">", "Focused", styleSet.Focus
	case theme.Opened:
		return "+", "Opened", styleSet.Accent
	case theme.Disabled:
		return "-", "Disabled", styleSet.Muted
	default:
		return "?", status.String(), styleSet.Muted
	}
}

// RenderModeBadge renders the active mode.
func RenderModeBadge(styleSet styles.Styles, mode theme.Mode) string {
	if mode.IsDark() {
		return styleSet.Focus.Render("● Dark")
	}
	return styleSet.Warning.Render("○ Light")
}
