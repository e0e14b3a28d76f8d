package theme

// TextVariant selects a text label's color.
type TextVariant int

const (
	TextPrimary TextVariant = iota
	TextSecondary
	TextTertiary
	TextLink
	TextRed
	TextBlue
	TextGreen
	TextOrange
	TextYellow
	TextPurple
	TextPink
	TextTeal
	TextIndigo
	TextMint
	TextBrown
	TextSuccess
	TextWarning
	TextError
)

var textVariantNames = []string{
	"primary", "secondary", "tertiary", "link",
	"red", "blue", "green", "orange", "yellow", "purple", "pink", "teal", "indigo", "mint", "brown",
	"success", "warning", "error",
}

func (v TextVariant) String() string {
	return nameOf(textVariantNames, v)
}

// ParseTextVariant parses a text variant name.
func ParseTextVariant(value string) (TextVariant, error) {
	return parseName[TextVariant]("text variant", textVariantNames, value)
}

// TextVariants lists every text variant.
func TextVariants() []TextVariant {
	return allOf[TextVariant](textVariantNames)
}

// TextStyle is the appearance of a text label.
type TextStyle struct {
	Color Color `json:"color" yaml:"color"`
}

// Text resolves the style of a text variant.
func Text(mode Mode, variant TextVariant) TextStyle {
	p := PaletteFor(mode)

	switch variant {
	case TextSecondary:
		return TextStyle{Color: p.SecondaryText}
	case TextTertiary:
		return TextStyle{Color: p.TertiaryText}
	case TextLink:
		return TextStyle{Color: p.Link}
	case TextRed, TextError:
		return ColoredText(mode, SystemRed, SystemRedDark)
	case TextBlue:
		return ColoredText(mode, SystemBlue, SystemBlueDark)
	case TextGreen, TextSuccess:
		return ColoredText(mode, SystemGreen, SystemGreenDark)
	case TextOrange, TextWarning:
		return ColoredText(mode, SystemOrange, SystemOrangeDark)
	case TextYellow:
		return ColoredText(mode, SystemYellow, SystemYellowDark)
	case TextPurple:
		return ColoredText(mode, SystemPurple, SystemPurpleDark)
	case TextPink:
		return ColoredText(mode, SystemPink, SystemPinkDark)
	case TextTeal:
		return ColoredText(mode, SystemTeal, SystemTealDark)
	case TextIndigo:
		return ColoredText(mode, SystemIndigo, SystemIndigoDark)
	case TextMint:
		return ColoredText(mode, SystemMint, SystemMintDark)
	case TextBrown:
		return ColoredText(mode, SystemBrown, SystemBrownDark)
	default:
		return TextStyle{Color: p.Text}
	}
}

// ColoredText picks light or dark according to mode.
func ColoredText(mode Mode, light, dark Color) TextStyle {
	if mode.IsDark() {
		return TextStyle{Color: dark}
	}
	return TextStyle{Color: light}
}

// ValidatedText is error text when hasError is set and success text otherwise.
func ValidatedText(mode Mode, hasError bool) TextStyle {
	if hasError {
		return Text(mode, TextError)
	}
	return Text(mode, TextSuccess)
}
