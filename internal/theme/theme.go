package theme

// BasePalette is the six-color palette a host toolkit uses for widgets the
// Modern resolvers do not cover.
type BasePalette struct {
	Background Color
	Text       Color
	Primary    Color
	Success    Color
	Danger     Color
	Warning    Color
}

// Theme is a named Modern theme for one mode.
type Theme struct {
	Name string
	Mode Mode
	Base BasePalette
}

// New builds the Modern theme for mode.
func New(mode Mode) Theme {
	p := PaletteFor(mode)
	name := "Modern Light"
	if mode.IsDark() {
		name = "Modern Dark"
	}
	return Theme{
		Name: name,
		Mode: mode,
		Base: BasePalette{
			Background: p.Background,
			Text:       p.Text,
			Primary:    p.Blue,
			Success:    p.Green,
			Danger:     p.Red,
			Warning:    p.Orange,
		},
	}
}

// LightTheme is New(Light).
func LightTheme() Theme {
	return New(Light)
}

// DarkTheme is New(Dark).
func DarkTheme() Theme {
	return New(Dark)
}

// Palette returns the full semantic palette of the theme.
func (t Theme) Palette() Palette {
	return PaletteFor(t.Mode)
}

// Button resolves a button variant in the theme's mode.
func (t Theme) Button(variant ButtonVariant, status Status) ButtonStyle {
	return Button(t.Mode, variant, status)
}

// TintedButton resolves a tinted button in the theme's mode.
func (t Theme) TintedButton(tint Tint, status Status) ButtonStyle {
	return TintedButton(t.Mode, tint, status)
}

// Container resolves a container variant in the theme's mode.
func (t Theme) Container(variant ContainerVariant) ContainerStyle {
	return Container(t.Mode, variant)
}

// TextInput resolves a text input variant in the theme's mode.
func (t Theme) TextInput(variant TextInputVariant, status Status) TextInputStyle {
	return TextInput(t.Mode, variant, status)
}

// ComboBox resolves the combo box field in the theme's mode.
func (t Theme) ComboBox(status Status) TextInputStyle {
	return ComboBox(t.Mode, status)
}

// ComboBoxMenu resolves the combo box dropdown in the theme's mode.
func (t Theme) ComboBoxMenu() MenuStyle {
	return ComboBoxMenu(t.Mode)
}

// Checkbox resolves a checkbox in the theme's mode.
func (t Theme) Checkbox(status Status, checked bool) CheckboxStyle {
	return Checkbox(t.Mode, status, checked)
}

// Radio resolves a radio button in the theme's mode.
func (t Theme) Radio(status Status, selected bool) RadioStyle {
	return Radio(t.Mode, status, selected)
}

// PickList resolves a pick list in the theme's mode.
func (t Theme) PickList(status Status) PickListStyle {
	return PickList(t.Mode, status)
}

// Text resolves a text variant in the theme's mode.
func (t Theme) Text(variant TextVariant) TextStyle {
	return Text(t.Mode, variant)
}
