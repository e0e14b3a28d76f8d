// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the key or CLI command to run (e.g., "modern resolve button primary").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// StatusNotApplicable explains that a page's widgets ignore the selected status.
func StatusNotApplicable(page string, status theme.Status) EmptyState {
	return EmptyState{
		Icon:     "ℹ",
		Title:    fmt.Sprintf("%s ignore the %s status", page, status),
		Subtitle: "These widgets resolve the same style for every status.",
		Suggestions: []Suggestion{
			{Command: "g", Description: "go to the next page"},
		},
	}
}

// CheckPassed reports a clean contract check.
func CheckPassed(evaluated int) EmptyState {
	return EmptyState{
		Icon:     "✅",
		Title:    "All checks passed",
		Subtitle: fmt.Sprintf("%d style records evaluated.", evaluated),
		Suggestions: []Suggestion{
			{Command: "modern check --format json", Description: "full report"},
		},
	}
}

// CheckFailed reports contract violations.
func CheckFailed(failures int) EmptyState {
	return EmptyState{
		Icon:     "❌",
		Title:    fmt.Sprintf("%d check finding(s)", failures),
		Subtitle: "Run the check command for details.",
		Suggestions: []Suggestion{
			{Command: "modern check", Description: "list every finding"},
		},
	}
}
