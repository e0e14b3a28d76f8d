package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/modern/internal/tui/styles"
)

func samplePicker() *VariantPicker {
	return NewVariantPicker([]PickerSection{
		{Title: "Buttons", Items: []PickerItem{
			{Widget: "button", Variant: "primary", Tags: []string{"filled"}},
			{Widget: "button", Variant: "secondary", Tags: []string{"outlined"}},
			{Widget: "button", Variant: "danger", Tags: []string{"filled", "red"}},
		}},
		{Title: "Containers", Items: []PickerItem{
			{Widget: "container", Variant: "card"},
			{Widget: "container", Variant: "danger-tooltip", Tags: []string{"red"}},
		}},
	})
}

func TestVariantPickerMoveWraps(t *testing.T) {
	picker := samplePicker()

	picker.Move(-1)
	require.NotNil(t, picker.SelectedItem())
	assert.Equal(t, "button/danger", picker.SelectedItem().Label())

	picker.Move(1)
	assert.Equal(t, "button/primary", picker.SelectedItem().Label())
}

func TestVariantPickerFilterByTag(t *testing.T) {
	picker := samplePicker()
	picker.Type("red")

	assert.Equal(t, "button/danger", picker.SelectedItem().Label())

	picker.NextSection()
	assert.Equal(t, "container/danger-tooltip", picker.SelectedItem().Label())

	picker.Move(1)
	assert.Equal(t, "container/danger-tooltip", picker.SelectedItem().Label())
}

func TestVariantPickerNoMatches(t *testing.T) {
	picker := samplePicker()
	picker.Type("zzz")

	assert.Nil(t, picker.SelectedItem())
	lines := picker.Render(styles.DefaultStyles())
	assert.Contains(t, strings.Join(lines, "\n"), "No variants match.")
}

func TestVariantPickerBackspaceAndReset(t *testing.T) {
	picker := samplePicker()
	picker.Type("card")
	picker.NextSection()
	picker.Backspace()
	assert.Equal(t, "car", picker.Query)

	picker.Reset()
	assert.Empty(t, picker.Query)
	assert.Equal(t, 0, picker.Section)
	assert.Equal(t, "button/primary", picker.SelectedItem().Label())
}

func TestVariantPickerRenderMarksSelection(t *testing.T) {
	picker := samplePicker()
	picker.Move(1)

	out := strings.Join(picker.Render(styles.DefaultStyles()), "\n")
	assert.Contains(t, out, "> button/secondary")
	assert.Contains(t, out, "BUTTONS")
	assert.Contains(t, out, "CONTAINERS")
}
