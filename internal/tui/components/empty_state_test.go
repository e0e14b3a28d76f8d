package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/styles"
)

func TestEmptyStateRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{
			Title: "No items found",
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
	})

	t.Run("empty state with icon", func(t *testing.T) {
		es := EmptyState{
			Icon:  "📭",
			Title: "Empty page",
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "📭") {
			t.Errorf("Expected icon in output, got: %s", result)
		}
	})

	t.Run("empty state with suggestions", func(t *testing.T) {
		es := EmptyState{
			Title: "Nothing here",
			Suggestions: []Suggestion{
				{Command: "modern palette", Description: "list colors"},
			},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Try:") {
			t.Errorf("Expected 'Try:' header, got: %s", result)
		}
		if !strings.Contains(result, "modern palette") {
			t.Errorf("Expected command in output, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := styles.DefaultStyles()

	es := EmptyState{
		Title: "Empty",
		Suggestions: []Suggestion{
			{Command: "g"},
		},
	}
	result := es.RenderCompact(styleSet)
	if !strings.Contains(result, "Try: g") {
		t.Errorf("Expected suggestion hint in compact output, got: %s", result)
	}
}

func TestPrebuiltEmptyStates(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		name     string
		es       EmptyState
		expected []string
	}{
		{
			name:     "StatusNotApplicable",
			es:       StatusNotApplicable("Containers", theme.Hovered),
			expected: []string{"Containers ignore the hovered status"},
		},
		{
			name:     "CheckPassed",
			es:       CheckPassed(42),
			expected: []string{"All checks passed", "42 style records"},
		},
		{
			name:     "CheckFailed",
			es:       CheckFailed(3),
			expected: []string{"3 check finding(s)", "modern check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.es.Render(styleSet)
			for _, exp := range tt.expected {
				if !strings.Contains(result, exp) {
					t.Errorf("Expected %q in %s output, got: %s", exp, tt.name, result)
				}
			}
		})
	}
}
