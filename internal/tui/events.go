// Package tui implements the modern widget gallery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/modern/internal/audit"
)

// CheckResultMsg carries a finished contract check.
type CheckResultMsg struct {
	Report   audit.Report
	Finished time.Time
}

// Evaluated sums the records evaluated by every check.
func (m CheckResultMsg) Evaluated() int {
	total := 0
	for _, result := range m.Report.Results {
		total += result.Evaluated
	}
	return total
}

// Findings sums the findings of every check.
func (m CheckResultMsg) Findings() int {
	total := 0
	for _, result := range m.Report.Results {
		total += len(result.Findings)
	}
	return total
}

// RunCheck returns a tea.Cmd that runs every contract check off the update loop.
func RunCheck(run func() audit.Report) tea.Cmd {
	return func() tea.Msg {
		if run == nil {
			run = audit.Run
		}
		return CheckResultMsg{Report: run(), Finished: time.Now()}
	}
}

// ModeChangedMsg is sent after the gallery switches between light and dark.
type ModeChangedMsg struct {
	Dark bool
}
