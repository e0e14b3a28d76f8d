package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckboxChecked(t *testing.T) {
	p := PaletteFor(Dark)

	active := Checkbox(Dark, Active, true)
	assert.Equal(t, p.Blue, active.Background)
	assert.Equal(t, White, active.IconColor)
	assert.Equal(t, Border{Radius: TinyCornerRadius}, active.Border)

	assert.InDelta(t, 0.9, Checkbox(Dark, Hovered, true).Background.A, channelDelta)

	disabled := Checkbox(Dark, Disabled, true)
	assert.InDelta(t, 0.5, disabled.Background.A, channelDelta)
	assert.InDelta(t, 0.5, disabled.IconColor.A, channelDelta)
	assert.InDelta(t, 0.5, disabled.TextColor.A, channelDelta)
}

func TestCheckboxUnchecked(t *testing.T) {
	p := PaletteFor(Light)

	active := Checkbox(Light, Active, false)
	assert.Equal(t, Transparent, active.Background)
	assert.Equal(t, Transparent, active.IconColor)
	assert.Equal(t, Border{Width: 2, Radius: TinyCornerRadius, Color: p.InactiveBorder}, active.Border)

	assert.Equal(t, p.Blue.ScaleAlpha(0.5), Checkbox(Light, Hovered, false).Border.Color)

	disabled := Checkbox(Light, Disabled, false)
	assert.Equal(t, p.InactiveBorder.ScaleAlpha(0.5), disabled.Border.Color)
	assert.InDelta(t, 0.5, disabled.TextColor.A, channelDelta)
}

func TestRadio(t *testing.T) {
	p := PaletteFor(Dark)

	tests := []struct {
		name     string
		status   Status
		selected bool
		border   Color
	}{
		{"active selected", Active, true, p.Blue},
		{"hovered selected", Hovered, true, p.Blue},
		{"active unselected", Active, false, p.InactiveBorder},
		{"hovered unselected", Hovered, false, p.Blue.ScaleAlpha(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := Radio(Dark, tt.status, tt.selected)
			assert.Equal(t, tt.border, style.BorderColor)
			assert.Equal(t, 2.0, style.BorderWidth)
			assert.Equal(t, p.Blue, style.DotColor)
			assert.Equal(t, Transparent, style.Background)
		})
	}
}

func TestPickList(t *testing.T) {
	p := PaletteFor(Light)

	active := PickList(Light, Active)
	assert.Equal(t, p.InputBackground, active.Background)
	assert.Equal(t, p.Placeholder, active.HandleColor)
	assert.Equal(t, Border{Width: 1, Radius: SmallCornerRadius, Color: p.InputBorder}, active.Border)

	assert.Equal(t, p.Placeholder, PickList(Light, Hovered).Border.Color)

	opened := PickList(Light, Opened)
	assert.Equal(t, p.Blue, opened.Border.Color)
	assert.Equal(t, 1.5, opened.Border.Width)
	assert.Equal(t, p.Blue, opened.HandleColor)
}
