package theme

// CheckboxStyle is the appearance of a checkbox for one status.
type CheckboxStyle struct {
	Background Color  `json:"background" yaml:"background"`
	IconColor  Color  `json:"icon_color" yaml:"icon_color"`
	Border     Border `json:"border" yaml:"border"`
	TextColor  Color  `json:"text_color" yaml:"text_color"`
}

// Checkbox resolves a checkbox style. It honours Active, Hovered and Disabled.
func Checkbox(mode Mode, status Status, checked bool) CheckboxStyle {
	p := PaletteFor(mode)

	if checked {
		style := CheckboxStyle{
			Background: p.Blue,
			IconColor:  White,
			Border:     Border{Radius: TinyCornerRadius},
			TextColor:  p.Text,
		}
		switch status {
		case Hovered:
			style.Background = p.Blue.ScaleAlpha(0.9)
		case Disabled:
			style.Background = p.Blue.ScaleAlpha(0.5)
			style.IconColor = White.ScaleAlpha(0.5)
			style.TextColor = p.Text.ScaleAlpha(0.5)
		}
		return style
	}

	style := CheckboxStyle{
		Background: Transparent,
		IconColor:  Transparent,
		Border:     Border{Width: 2, Radius: TinyCornerRadius, Color: p.InactiveBorder},
		TextColor:  p.Text,
	}
	switch status {
	case Hovered:
		style.Border.Color = p.Blue.ScaleAlpha(0.5)
	case Disabled:
		style.Border.Color = p.InactiveBorder.ScaleAlpha(0.5)
		style.TextColor = p.Text.ScaleAlpha(0.5)
	}
	return style
}

// RadioStyle is the appearance of a radio button.
type RadioStyle struct {
	Background  Color   `json:"background" yaml:"background"`
	DotColor    Color   `json:"dot_color" yaml:"dot_color"`
	BorderWidth float64 `json:"border_width" yaml:"border_width"`
	BorderColor Color   `json:"border_color" yaml:"border_color"`
	TextColor   Color   `json:"text_color" yaml:"text_color"`
}

// Radio resolves a radio button style. It honours Active and Hovered.
func Radio(mode Mode, status Status, selected bool) RadioStyle {
	p := PaletteFor(mode)

	style := RadioStyle{
		Background:  Transparent,
		DotColor:    p.Blue,
		BorderWidth: 2,
		BorderColor: p.InactiveBorder,
		TextColor:   p.Text,
	}
	if selected {
		style.BorderColor = p.Blue
	} else if status == Hovered {
		style.BorderColor = p.Blue.ScaleAlpha(0.5)
	}
	return style
}

// PickListStyle is the appearance of a pick list.
type PickListStyle struct {
	TextColor        Color  `json:"text_color" yaml:"text_color"`
	PlaceholderColor Color  `json:"placeholder_color" yaml:"placeholder_color"`
	Background       Color  `json:"background" yaml:"background"`
	Border           Border `json:"border" yaml:"border"`
	HandleColor      Color  `json:"handle_color" yaml:"handle_color"`
}

// PickList resolves a pick list style. It honours Active, Hovered and Opened.
func PickList(mode Mode, status Status) PickListStyle {
	p := PaletteFor(mode)

	style := PickListStyle{
		TextColor:        p.Text,
		PlaceholderColor: p.Placeholder,
		Background:       p.InputBackground,
		Border:           Border{Width: 1, Radius: SmallCornerRadius, Color: p.InputBorder},
		HandleColor:      p.Placeholder,
	}

	switch status {
	case Hovered:
		style.Border.Color = p.Placeholder
	case Opened:
		style.Border.Color = p.Blue
		style.Border.Width = 1.5
		style.HandleColor = p.Blue
	}
	return style
}
