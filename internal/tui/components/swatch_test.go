package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/modern/internal/theme"
)

func TestRenderButtonShowsLabel(t *testing.T) {
	canvas := theme.PaletteFor(theme.Dark).Background

	for _, variant := range theme.ButtonVariants() {
		out := RenderButton(theme.Button(theme.Dark, variant, theme.Hovered), variant.String(), canvas)
		assert.Contains(t, out, variant.String())
	}
}

func TestOutlinedButtonHasBorder(t *testing.T) {
	canvas := theme.PaletteFor(theme.Light).Background

	outlined := RenderButton(theme.Button(theme.Light, theme.ButtonSecondary, theme.Active), "Edit", canvas)
	filled := RenderButton(theme.Button(theme.Light, theme.ButtonPrimary, theme.Active), "Edit", canvas)

	assert.Equal(t, 3, lipgloss.Height(outlined))
	assert.Equal(t, 1, lipgloss.Height(filled))
	assert.Contains(t, outlined, "╭")
}

func TestFocusedInputUsesThickBorder(t *testing.T) {
	canvas := theme.PaletteFor(theme.Light).Background

	out := RenderTextInput(theme.TextInput(theme.Light, theme.TextInputDefault, theme.Focused), "Search", "", 20, canvas)
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "┏")
}

func TestRenderToggles(t *testing.T) {
	canvas := theme.PaletteFor(theme.Dark).Background

	checkbox := RenderCheckbox(theme.Checkbox(theme.Dark, theme.Active, true), true, "Sync", canvas)
	assert.Contains(t, checkbox, "✓")
	assert.Contains(t, checkbox, "Sync")

	radio := RenderRadio(theme.Radio(theme.Dark, theme.Active, false), false, "Weekly", canvas)
	assert.Contains(t, radio, "( )")
	assert.Contains(t, radio, "Weekly")
}

func TestRenderPickListAndMenu(t *testing.T) {
	canvas := theme.PaletteFor(theme.Dark).Background

	pick := RenderPickList(theme.PickList(theme.Dark, theme.Opened), "Medium", 16, canvas)
	assert.Contains(t, pick, "Medium")
	assert.Contains(t, pick, "▾")

	menu := RenderMenu(theme.ComboBoxMenu(theme.Dark), []string{"Small", "Medium", "Large"}, 1, canvas)
	for _, option := range []string{"Small", "Medium", "Large"} {
		assert.Contains(t, menu, option)
	}
	assert.Equal(t, 5, lipgloss.Height(menu))
}

func TestRenderContainerWidth(t *testing.T) {
	canvas := theme.PaletteFor(theme.Light).Background

	out := RenderContainer(theme.Container(theme.Light, theme.ContainerAccent), "body", 20, canvas)
	assert.Contains(t, out, "body")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 22, lipgloss.Width(line))
	}
}

func TestDescribeShadow(t *testing.T) {
	assert.Equal(t, "no shadow", DescribeShadow(theme.Shadow{}))

	card := theme.Container(theme.Dark, theme.ContainerCard)
	assert.Equal(t, "shadow #0000001a (0,2) blur 8", DescribeShadow(card.Shadow))
}
