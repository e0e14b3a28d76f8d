package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/modern/internal/theme"
)

type resolvedPayload struct {
	Widget  string         `json:"widget"`
	Variant string         `json:"variant"`
	Mode    string         `json:"mode"`
	Status  string         `json:"status"`
	Style   map[string]any `json:"style"`
}

func TestResolveButtonJSON(t *testing.T) {
	out, err := executeCommand(t, "resolve", "button", "primary", "--status", "hovered", "--mode", "dark", "-o", "json")
	require.NoError(t, err)

	var payload resolvedPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "button", payload.Widget)
	assert.Equal(t, "primary", payload.Variant)
	assert.Equal(t, "dark", payload.Mode)
	assert.Equal(t, "hovered", payload.Status)

	want := theme.Button(theme.Dark, theme.ButtonPrimary, theme.Hovered)
	assert.Equal(t, want.Background.Color.String(), payload.Style["background"])
	assert.Equal(t, want.TextColor.String(), payload.Style["text_color"])
}

func TestResolveDefaultsVariant(t *testing.T) {
	out, err := executeCommand(t, "resolve", "container", "--mode", "light", "-o", "yaml")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "card", payload["variant"])
}

func TestResolveTransparentContainerHasNoBackground(t *testing.T) {
	out, err := executeCommand(t, "resolve", "container", "transparent", "--mode", "dark", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "background: null")
}

func TestResolveSizedSelectedButton(t *testing.T) {
	out, err := executeCommand(t, "resolve", "button", "--size", "large", "--selected", "--mode", "light", "-o", "json")
	require.NoError(t, err)

	var payload resolvedPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	want := theme.Sized(theme.Selected(theme.ButtonFor(theme.ButtonPrimary)), theme.SizeLarge)(theme.Light, theme.Active)
	border, ok := payload.Style["border"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, want.Border.Radius, border["radius"], 1e-9)
	assert.Equal(t, want.Background.Color.String(), payload.Style["background"])
}

func TestResolveToggles(t *testing.T) {
	out, err := executeCommand(t, "resolve", "checkbox", "--checked", "--status", "disabled", "--mode", "light", "-o", "json")
	require.NoError(t, err)

	var payload resolvedPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	want := theme.Checkbox(theme.Light, theme.Disabled, true)
	assert.Equal(t, want.Background.String(), payload.Style["background"])

	out, err = executeCommand(t, "resolve", "radio", "--selected", "--mode", "dark", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, theme.PaletteFor(theme.Dark).Blue.String(), payload.Style["border_color"])
}

func TestResolveTextTable(t *testing.T) {
	out, err := executeCommand(t, "resolve", "text", "error", "--mode", "light")
	require.NoError(t, err)

	assert.Contains(t, out, "text/error (light, active)")
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, theme.PaletteFor(theme.Light).Red.String())
}

func TestResolveTooltip(t *testing.T) {
	out, err := executeCommand(t, "resolve", "tooltip", "error", "--mode", "dark", "-o", "json")
	require.NoError(t, err)

	var payload resolvedPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	want := theme.Container(theme.Dark, theme.ContainerDangerTooltip)
	assert.Equal(t, want.Background.Color.String(), payload.Style["background"])
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown widget", args: []string{"resolve", "slider"}, want: `unknown widget "slider"`},
		{name: "unexpected variant", args: []string{"resolve", "combo-box", "wide"}, want: "combo-box has no variants"},
		{name: "unknown variant", args: []string{"resolve", "button", "huge"}, want: "invalid button variant"},
		{name: "unknown status", args: []string{"resolve", "button", "--status", "asleep"}, want: "invalid status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, append(tt.args, "--mode", "light")...)

			var preflight *PreflightError
			require.ErrorAs(t, err, &preflight)
			assert.Contains(t, preflight.Message, tt.want)
		})
	}
}

func TestResolveUnknownVariantWrapsSentinel(t *testing.T) {
	_, err := executeCommand(t, "resolve", "text", "shouting", "--mode", "light")
	assert.ErrorIs(t, err, theme.ErrUnknownName)
}

func TestFlattenRecord(t *testing.T) {
	fields, err := flattenRecord(theme.Container(theme.Light, theme.ContainerCard))
	require.NoError(t, err)

	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = field.key
	}
	assert.Equal(t, []string{
		"text_color", "background",
		"border.width", "border.radius", "border.color",
		"shadow.color", "shadow.offset.x", "shadow.offset.y", "shadow.blur_radius",
	}, keys)

	fields, err = flattenRecord(theme.Container(theme.Light, theme.ContainerTransparent))
	require.NoError(t, err)
	assert.Equal(t, recordField{key: "background", value: "none"}, fields[1])
}
