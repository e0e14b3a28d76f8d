package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/modern/internal/tui/styles"
)

func TestRenderQuickActionBarSkipsDisabled(t *testing.T) {
	styleSet := styles.DefaultStyles()

	bar := RenderQuickActionBar(styleSet, GalleryQuickActions(false, false))
	assert.Contains(t, bar, "Dark")
	assert.NotContains(t, bar, "Status")
	assert.Contains(t, bar, "Quit")

	bar = RenderQuickActionBar(styleSet, GalleryQuickActions(true, true))
	assert.Contains(t, bar, "Light")
	assert.Contains(t, bar, "Status")
}

func TestRenderQuickActionBarEmpty(t *testing.T) {
	styleSet := styles.DefaultStyles()
	assert.Empty(t, RenderQuickActionBar(styleSet, nil))
	assert.Empty(t, RenderQuickActionBar(styleSet, []QuickAction{{Key: "x", Label: "Off"}}))
}
