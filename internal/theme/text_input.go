package theme

// TextInputVariant selects a text input's appearance.
type TextInputVariant int

const (
	TextInputDefault TextInputVariant = iota
	TextInputSearch
	TextInputInline
	TextInputDanger
	TextInputWarning
)

var textInputVariantNames = []string{"default", "search", "inline", "danger", "warning"}

func (v TextInputVariant) String() string {
	return nameOf(textInputVariantNames, v)
}

// ParseTextInputVariant parses a text input variant name.
func ParseTextInputVariant(value string) (TextInputVariant, error) {
	return parseName[TextInputVariant]("text input variant", textInputVariantNames, value)
}

// TextInputVariants lists every text input variant.
func TextInputVariants() []TextInputVariant {
	return allOf[TextInputVariant](textInputVariantNames)
}

// TextInputStyle is the appearance of a text input for one status.
type TextInputStyle struct {
	Background  Color  `json:"background" yaml:"background"`
	Border      Border `json:"border" yaml:"border"`
	Icon        Color  `json:"icon" yaml:"icon"`
	Placeholder Color  `json:"placeholder" yaml:"placeholder"`
	Value       Color  `json:"value" yaml:"value"`
	Selection   Color  `json:"selection" yaml:"selection"`
}

// TextInputFunc resolves a text input style for a mode and status.
type TextInputFunc func(mode Mode, status Status) TextInputStyle

// TextInput resolves the style of a text input variant. It honours Active,
// Hovered, Focused and Disabled.
func TextInput(mode Mode, variant TextInputVariant, status Status) TextInputStyle {
	p := PaletteFor(mode)

	switch variant {
	case TextInputSearch:
		return searchInput(p, status)
	case TextInputInline:
		return inlineInput(p, status)
	case TextInputDanger:
		style := defaultInput(p, status)
		style.Border.Color = p.Red
		style.Border.Width = 1
		if mode.IsDark() {
			style.Background = FromRGBA(0.3, 0, 0, 0.2)
		} else {
			style.Background = FromRGB(1, 0.9, 0.9)
		}
		return style
	case TextInputWarning:
		style := defaultInput(p, status)
		style.Border.Color = p.Orange
		style.Border.Width = 1
		return style
	default:
		return defaultInput(p, status)
	}
}

func defaultInput(p Palette, status Status) TextInputStyle {
	style := TextInputStyle{
		Background:  p.InputBackground,
		Border:      Border{Width: 1, Radius: SmallCornerRadius, Color: p.InputBorder},
		Icon:        p.Text,
		Placeholder: p.Placeholder,
		Value:       p.Text,
		Selection:   p.Blue.ScaleAlpha(0.3),
	}

	switch status {
	case Hovered:
		style.Border.Color = p.Placeholder
	case Focused:
		style.Border.Color = p.Blue
		style.Border.Width = 2
	case Disabled:
		style.Background = p.InputBackground.ScaleAlpha(0.7)
		style.Border.Color = p.InputBorder.ScaleAlpha(0.5)
		style.Value = p.Text.ScaleAlpha(0.5)
	}
	return style
}

func searchInput(p Palette, status Status) TextInputStyle {
	style := TextInputStyle{
		Background:  p.SystemBackground,
		Border:      Border{Radius: CornerRadius},
		Icon:        p.TertiaryText,
		Placeholder: p.Placeholder,
		Value:       p.Text,
		Selection:   p.Selection,
	}

	switch status {
	case Focused:
		style.Background = p.TertiaryBackground
	case Disabled:
		style.Background = p.SystemBackground.ScaleAlpha(0.7)
		style.Value = p.Text.ScaleAlpha(0.5)
	}
	return style
}

func inlineInput(p Palette, status Status) TextInputStyle {
	style := TextInputStyle{
		Background:  Transparent,
		Border:      Border{Width: 1, Color: p.Separator},
		Icon:        p.Text,
		Placeholder: p.Placeholder,
		Value:       p.Text,
		Selection:   p.Selection,
	}

	switch status {
	case Hovered:
		style.Border.Color = p.TertiaryText
	case Focused:
		style.Border.Color = p.Blue
		style.Border.Width = 2
	case Disabled:
		style.Border.Color = p.Separator.ScaleAlpha(0.5)
		style.Value = p.Text.ScaleAlpha(0.5)
	}
	return style
}

// ConditionalTextInput picks a text input style for a validation state.
// Valid input gets the inline style.
func ConditionalTextInput(mode Mode, state ValidationState, status Status) TextInputStyle {
	switch state {
	case Invalid:
		return TextInput(mode, TextInputDanger, status)
	case Warning:
		return TextInput(mode, TextInputWarning, status)
	default:
		return TextInput(mode, TextInputInline, status)
	}
}

// ValidatedTextInput is ConditionalTextInput without the warning state.
func ValidatedTextInput(mode Mode, hasError bool, status Status) TextInputStyle {
	if hasError {
		return ConditionalTextInput(mode, Invalid, status)
	}
	return ConditionalTextInput(mode, Valid, status)
}

// TextInputFor returns the TextInputFunc of a variant.
func TextInputFor(variant TextInputVariant) TextInputFunc {
	return func(mode Mode, status Status) TextInputStyle {
		return TextInput(mode, variant, status)
	}
}

// ConditionalTextInputFunc picks whenTrue or whenFalse once, at construction.
func ConditionalTextInputFunc(condition bool, whenTrue, whenFalse TextInputFunc) TextInputFunc {
	if condition {
		return whenTrue
	}
	return whenFalse
}

// ComboBox styles the input field of a combo box, which is a default text input.
func ComboBox(mode Mode, status Status) TextInputStyle {
	return TextInput(mode, TextInputDefault, status)
}

// MenuStyle is the appearance of a dropdown menu overlay.
type MenuStyle struct {
	TextColor          Color  `json:"text_color" yaml:"text_color"`
	Background         Color  `json:"background" yaml:"background"`
	Border             Border `json:"border" yaml:"border"`
	SelectedTextColor  Color  `json:"selected_text_color" yaml:"selected_text_color"`
	SelectedBackground Color  `json:"selected_background" yaml:"selected_background"`
	Shadow             Shadow `json:"shadow" yaml:"shadow"`
}

// ComboBoxMenu styles the option list of a combo box.
func ComboBoxMenu(mode Mode) MenuStyle {
	p := PaletteFor(mode)
	return MenuStyle{
		TextColor:          p.Text,
		Background:         p.CardBackground,
		Border:             Border{Width: 1, Radius: TinyCornerRadius, Color: p.InputBorder},
		SelectedTextColor:  White,
		SelectedBackground: p.Blue,
	}
}
