package theme

// ButtonVariant selects a button's base style.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonSuccess
	ButtonWarning
	ButtonDanger
	ButtonLink
	ButtonSystem
	ButtonPlain
	ButtonTeal
	ButtonIndigo
	ButtonPurple
	ButtonPink
	ButtonGray
)

var buttonVariantNames = []string{
	"primary", "secondary", "success", "warning", "danger", "link", "system", "plain",
	"teal", "indigo", "purple", "pink", "gray",
}

func (v ButtonVariant) String() string {
	return nameOf(buttonVariantNames, v)
}

// ParseButtonVariant parses a button variant name.
func ParseButtonVariant(value string) (ButtonVariant, error) {
	return parseName[ButtonVariant]("button variant", buttonVariantNames, value)
}

// ButtonVariants lists every button variant.
func ButtonVariants() []ButtonVariant {
	return allOf[ButtonVariant](buttonVariantNames)
}

// TextOnly reports whether the variant draws no visible fill. Status changes
// on these variants fade the text instead of shifting the background.
func (v ButtonVariant) TextOnly() bool {
	return v == ButtonLink || v == ButtonPlain
}

// Tint selects the accent of a tinted button.
type Tint int

const (
	TintBlue Tint = iota
	TintGreen
	TintRed
	TintOrange
	TintPurple
	TintTeal
	TintPink
	TintIndigo
)

var tintNames = []string{"blue", "green", "red", "orange", "purple", "teal", "pink", "indigo"}

func (t Tint) String() string {
	return nameOf(tintNames, t)
}

// ParseTint parses a tint name.
func ParseTint(value string) (Tint, error) {
	return parseName[Tint]("tint", tintNames, value)
}

// Tints lists every tint.
func Tints() []Tint {
	return allOf[Tint](tintNames)
}

func (t Tint) color(p Palette) Color {
	switch t {
	case TintGreen:
		return p.Green
	case TintRed:
		return p.Red
	case TintOrange:
		return p.Orange
	case TintPurple:
		return p.Purple
	case TintTeal:
		return p.Teal
	case TintPink:
		return p.Pink
	case TintIndigo:
		return p.Indigo
	default:
		return p.Blue
	}
}

// ButtonSize scales a button's corner radius.
type ButtonSize int

const (
	SizeSmall ButtonSize = iota
	SizeMedium
	SizeLarge
)

var buttonSizeNames = []string{"small", "medium", "large"}

func (s ButtonSize) String() string {
	return nameOf(buttonSizeNames, s)
}

// ParseButtonSize parses "small", "medium" or "large".
func ParseButtonSize(value string) (ButtonSize, error) {
	return parseName[ButtonSize]("button size", buttonSizeNames, value)
}

func (s ButtonSize) radius() float64 {
	switch s {
	case SizeSmall:
		return CornerRadius * 0.8
	case SizeLarge:
		return CornerRadius * 1.2
	default:
		return CornerRadius
	}
}

// ButtonStyle is the appearance of a button for one status.
type ButtonStyle struct {
	Background Background `json:"background" yaml:"background"`
	TextColor  Color      `json:"text_color" yaml:"text_color"`
	Border     Border     `json:"border" yaml:"border"`
	Shadow     Shadow     `json:"shadow" yaml:"shadow"`
}

// ButtonFunc resolves a button style for a mode and status. Host toolkits
// call it once per repaint.
type ButtonFunc func(mode Mode, status Status) ButtonStyle

// Button resolves the style of a button variant.
func Button(mode Mode, variant ButtonVariant, status Status) ButtonStyle {
	p := PaletteFor(mode)
	base := buttonBase(p, mode, variant)

	if !variant.TextOnly() {
		return applyButtonStatus(base, mode, status)
	}

	switch status {
	case Hovered:
		base.TextColor = base.TextColor.ScaleAlpha(0.8)
		return base
	case Pressed:
		base.TextColor = base.TextColor.ScaleAlpha(0.6)
		base.Shadow = Shadow{}
		return base
	case Disabled:
		return disabledButton(base)
	default:
		return base
	}
}

// TintedButton resolves a button with a translucent accent fill and accent text.
func TintedButton(mode Mode, tint Tint, status Status) ButtonStyle {
	accent := tint.color(PaletteFor(mode))

	base := filledButton(accent.WithAlpha(0.2), accent)
	base.Shadow = dropShadow(0.05, 0, 1, 2)

	return applyButtonStatus(base, mode, status)
}

func buttonBase(p Palette, mode Mode, variant ButtonVariant) ButtonStyle {
	switch variant {
	case ButtonSecondary:
		return outlinedButton(p.Blue, p.Blue)
	case ButtonSuccess:
		return filledButton(p.Green, White)
	case ButtonWarning:
		if mode.IsDark() {
			return filledButton(p.Orange, Black)
		}
		return filledButton(p.Orange, White)
	case ButtonDanger:
		return filledButton(p.Red, White)
	case ButtonLink:
		return transparentButton(p.Blue)
	case ButtonSystem:
		return filledButton(p.SystemBackground, p.Text)
	case ButtonPlain:
		return transparentButton(p.Text)
	case ButtonTeal:
		return filledButton(p.Teal, White)
	case ButtonIndigo:
		return filledButton(p.Indigo, White)
	case ButtonPurple:
		return filledButton(p.Purple, White)
	case ButtonPink:
		return filledButton(p.Pink, White)
	case ButtonGray:
		return filledButton(p.Gray, p.Text)
	default:
		return filledButton(p.Blue, White)
	}
}

func filledButton(fill, text Color) ButtonStyle {
	return ButtonStyle{
		Background: Fill(fill),
		TextColor:  text,
		Border:     Border{Radius: CornerRadius},
		Shadow:     dropShadow(0.1, 0, 1, 2),
	}
}

func outlinedButton(outline, text Color) ButtonStyle {
	return ButtonStyle{
		Background: Fill(Transparent),
		TextColor:  text,
		Border:     Border{Width: 1, Radius: CornerRadius, Color: outline},
	}
}

func transparentButton(text Color) ButtonStyle {
	return ButtonStyle{
		Background: Fill(Transparent),
		TextColor:  text,
	}
}

func applyButtonStatus(base ButtonStyle, mode Mode, status Status) ButtonStyle {
	switch status {
	case Hovered:
		return hoveredButton(base, mode)
	case Pressed:
		return pressedButton(base, mode)
	case Disabled:
		return disabledButton(base)
	default:
		return base
	}
}

func hoveredButton(base ButtonStyle, mode Mode) ButtonStyle {
	base.Background = base.Background.Map(func(c Color) Color {
		return shift(c, mode, hoverDelta)
	})
	return base
}

func pressedButton(base ButtonStyle, mode Mode) ButtonStyle {
	base.Shadow = Shadow{}
	base.Background = base.Background.Map(func(c Color) Color {
		return shift(c, mode, pressedDelta)
	})
	return base
}

func disabledButton(base ButtonStyle) ButtonStyle {
	return ButtonStyle{
		Background: base.Background.Map(func(c Color) Color { return c.ScaleAlpha(0.5) }),
		TextColor:  base.TextColor.ScaleAlpha(0.5),
		Border: Border{
			Width:  base.Border.Width,
			Radius: base.Border.Radius,
			Color:  base.Border.Color.ScaleAlpha(0.5),
		},
	}
}

// ButtonFor returns the ButtonFunc of a variant.
func ButtonFor(variant ButtonVariant) ButtonFunc {
	return func(mode Mode, status Status) ButtonStyle {
		return Button(mode, variant, status)
	}
}

// Tinted returns the ButtonFunc of a tinted button.
func Tinted(tint Tint) ButtonFunc {
	return func(mode Mode, status Status) ButtonStyle {
		return TintedButton(mode, tint, status)
	}
}

// Sized overrides the corner radius of fn for a button size.
func Sized(fn ButtonFunc, size ButtonSize) ButtonFunc {
	return func(mode Mode, status Status) ButtonStyle {
		style := fn(mode, status)
		style.Border.Radius = size.radius()
		return style
	}
}

// Selected renders the Active status of fn as if pressed, for marking the
// current item in navigation. Other statuses are unchanged.
func Selected(fn ButtonFunc) ButtonFunc {
	return func(mode Mode, status Status) ButtonStyle {
		if status == Active {
			return pressedButton(fn(mode, Active), mode)
		}
		return fn(mode, status)
	}
}

// ConditionalButton picks whenTrue or whenFalse once, at construction.
func ConditionalButton(condition bool, whenTrue, whenFalse ButtonFunc) ButtonFunc {
	if condition {
		return whenTrue
	}
	return whenFalse
}
