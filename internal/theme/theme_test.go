package theme

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewTheme(t *testing.T) {
	dark := DarkTheme()
	assert.Equal(t, "Modern Dark", dark.Name)
	assert.Equal(t, Dark, dark.Mode)
	assert.Equal(t, White, dark.Base.Text)
	assert.Equal(t, FromRGB(0.11, 0.11, 0.12), dark.Base.Background)
	assert.Equal(t, SystemBlueDark, dark.Base.Primary)

	light := LightTheme()
	assert.Equal(t, "Modern Light", light.Name)
	assert.Equal(t, Black, light.Base.Text)
	assert.Equal(t, SystemOrange, light.Base.Warning)
}

func TestThemeMethodsDelegate(t *testing.T) {
	th := New(Dark)

	assert.Equal(t, Button(Dark, ButtonDanger, Hovered), th.Button(ButtonDanger, Hovered))
	assert.Equal(t, Container(Dark, ContainerCard), th.Container(ContainerCard))
	assert.Equal(t, Checkbox(Dark, Active, true), th.Checkbox(Active, true))
	assert.Equal(t, PickList(Dark, Opened), th.PickList(Opened))
	assert.Equal(t, PaletteFor(Dark), th.Palette())
}

func TestPaletteIsPure(t *testing.T) {
	for _, mode := range Modes() {
		assert.True(t, PaletteFor(mode) == PaletteFor(mode))
	}
	assert.NotEqual(t, PaletteFor(Light).Background, PaletteFor(Dark).Background)
}

func TestText(t *testing.T) {
	assert.Equal(t, White, Text(Dark, TextPrimary).Color)
	assert.Equal(t, PaletteFor(Light).SecondaryText, Text(Light, TextSecondary).Color)
	assert.Equal(t, SystemRed, Text(Light, TextError).Color)
	assert.Equal(t, SystemRedDark, Text(Dark, TextRed).Color)
	assert.Equal(t, SystemGreenDark, Text(Dark, TextSuccess).Color)
	assert.Equal(t, SystemOrange, Text(Light, TextWarning).Color)
	assert.Equal(t, Text(Dark, TextError), ValidatedText(Dark, true))
	assert.Equal(t, Text(Dark, TextSuccess), ValidatedText(Dark, false))
	assert.Equal(t, TextStyle{Color: SystemMint}, ColoredText(Light, SystemMint, SystemMintDark))
}

func TestParseNames(t *testing.T) {
	mode, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	variant, err := ParseContainerVariant("danger_tooltip")
	require.NoError(t, err)
	assert.Equal(t, ContainerDangerTooltip, variant)

	status, err := ParseStatus("opened")
	require.NoError(t, err)
	assert.Equal(t, Opened, status)

	_, err = ParseButtonVariant("fancy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Contains(t, err.Error(), "primary")
}

func TestEnumStringsRoundTrip(t *testing.T) {
	for _, v := range ButtonVariants() {
		parsed, err := ParseButtonVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range TextVariants() {
		parsed, err := ParseTextVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	assert.Equal(t, "42", Status(42).String())
}

func TestPaletteEntries(t *testing.T) {
	p := PaletteFor(Dark)
	entries := p.Entries()

	require.Len(t, entries, 26)
	assert.Equal(t, PaletteEntry{Name: "background", Color: p.Background}, entries[0])
	assert.Equal(t, PaletteEntry{Name: "brown", Color: p.Brown}, entries[len(entries)-1])

	seen := make(map[string]bool)
	for _, entry := range entries {
		assert.False(t, seen[entry.Name], entry.Name)
		seen[entry.Name] = true
	}
}

func TestStyleRecordEncoding(t *testing.T) {
	style := Container(Light, ContainerCard)

	data, err := json.Marshal(style)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"background":"#ffffff"`)
	assert.Contains(t, string(data), `"blur_radius":8`)

	data, err = json.Marshal(Container(Light, ContainerTransparent))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"background":null`)

	out, err := yaml.Marshal(style)
	require.NoError(t, err)
	assert.Contains(t, string(out), "background: '#ffffff'")
	assert.Contains(t, string(out), "color: '#0000001a'")
}
