// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/modern/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "d", "s")
	Label   string // Display label (e.g., "Dark", "Status")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "d:Light  s:Status  g:Next page  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		labelStyle := styleSet.Muted
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// GalleryQuickActions returns the gallery key bindings. The status key is
// disabled on pages whose widgets have no interaction status.
func GalleryQuickActions(dark, statusApplies bool) []QuickAction {
	modeLabel := "Dark"
	if dark {
		modeLabel = "Light"
	}
	return []QuickAction{
		{Key: "d", Label: modeLabel, Enabled: true},
		{Key: "s", Label: "Status", Enabled: statusApplies},
		{Key: "c", Label: "Check", Enabled: true},
		{Key: "g", Label: "Next page", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// RenderFooter renders the quick action bar centered in width.
func RenderFooter(styleSet styles.Styles, actions []QuickAction, width int) string {
	bar := RenderQuickActionBar(styleSet, actions)
	if bar == "" || width <= 0 {
		return bar
	}

	containerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styleSet.Theme.Tokens.TextMuted)).
		Width(width).
		Align(lipgloss.Center)

	return containerStyle.Render(bar)
}
