package theme

// Mode selects the light or dark palette.
type Mode int

const (
	Light Mode = iota
	Dark
)

var modeNames = []string{"light", "dark"}

// ModeFromDark maps the light/dark flag to a Mode.
func ModeFromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool {
	return m == Dark
}

func (m Mode) String() string {
	return nameOf(modeNames, m)
}

// ParseMode parses "light" or "dark".
func ParseMode(value string) (Mode, error) {
	return parseName[Mode]("mode", modeNames, value)
}

// Modes lists every mode.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

// Palette is the set of semantic colors for one mode.
type Palette struct {
	Background         Color `json:"background" yaml:"background"`
	Text               Color `json:"text" yaml:"text"`
	SecondaryText      Color `json:"secondary_text" yaml:"secondary_text"`
	TertiaryText       Color `json:"tertiary_text" yaml:"tertiary_text"`
	Placeholder        Color `json:"placeholder" yaml:"placeholder"`
	Link               Color `json:"link" yaml:"link"`
	Selection          Color `json:"selection" yaml:"selection"`
	Separator          Color `json:"separator" yaml:"separator"`
	InputBackground    Color `json:"input_background" yaml:"input_background"`
	InputBorder        Color `json:"input_border" yaml:"input_border"`
	InactiveBorder     Color `json:"inactive_border" yaml:"inactive_border"`
	CardBackground     Color `json:"card_background" yaml:"card_background"`
	SystemBackground   Color `json:"system_background" yaml:"system_background"`
	TertiaryBackground Color `json:"tertiary_background" yaml:"tertiary_background"`
	Gray               Color `json:"gray" yaml:"gray"`

	Blue   Color `json:"blue" yaml:"blue"`
	Green  Color `json:"green" yaml:"green"`
	Red    Color `json:"red" yaml:"red"`
	Orange Color `json:"orange" yaml:"orange"`
	Yellow Color `json:"yellow" yaml:"yellow"`
	Purple Color `json:"purple" yaml:"purple"`
	Pink   Color `json:"pink" yaml:"pink"`
	Teal   Color `json:"teal" yaml:"teal"`
	Indigo Color `json:"indigo" yaml:"indigo"`
	Mint   Color `json:"mint" yaml:"mint"`
	Brown  Color `json:"brown" yaml:"brown"`
}

// PaletteFor derives the palette for mode. Nothing is cached.
func PaletteFor(mode Mode) Palette {
	if mode.IsDark() {
		return Palette{
			Background:         FromRGB(0.11, 0.11, 0.12),
			Text:               White,
			SecondaryText:      FromRGB8(235, 235, 245).WithAlpha(0.6),
			TertiaryText:       FromRGB8(235, 235, 245).WithAlpha(0.3),
			Placeholder:        FromRGB8(235, 235, 245).WithAlpha(0.3),
			Link:               SystemBlueDark,
			Selection:          SystemBlueDark.WithAlpha(0.3),
			Separator:          FromRGB8(84, 84, 88).WithAlpha(0.6),
			InputBackground:    Gray6Dark,
			InputBorder:        Gray4Dark,
			InactiveBorder:     Gray2Dark,
			CardBackground:     Gray5Dark,
			SystemBackground:   Gray4Dark,
			TertiaryBackground: Gray5Dark,
			Gray:               Gray3Dark,
			Blue:               SystemBlueDark,
			Green:              SystemGreenDark,
			Red:                SystemRedDark,
			Orange:             SystemOrangeDark,
			Yellow:             SystemYellowDark,
			Purple:             SystemPurpleDark,
			Pink:               SystemPinkDark,
			Teal:               SystemTealDark,
			Indigo:             SystemIndigoDark,
			Mint:               SystemMintDark,
			Brown:              SystemBrownDark,
		}
	}

	return Palette{
		Background:         FromRGB(0.95, 0.95, 0.97),
		Text:               Black,
		SecondaryText:      FromRGB8(60, 60, 67).WithAlpha(0.6),
		TertiaryText:       FromRGB8(60, 60, 67).WithAlpha(0.3),
		Placeholder:        FromRGB8(60, 60, 67).WithAlpha(0.3),
		Link:               SystemBlue,
		Selection:          SystemBlue.WithAlpha(0.3),
		Separator:          FromRGB8(60, 60, 67).WithAlpha(0.29),
		InputBackground:    White,
		InputBorder:        Gray4Light,
		InactiveBorder:     Gray3Light,
		CardBackground:     White,
		SystemBackground:   Gray5Light,
		TertiaryBackground: White,
		Gray:               Gray4Light,
		Blue:               SystemBlue,
		Green:              SystemGreen,
		Red:                SystemRed,
		Orange:             SystemOrange,
		Yellow:             SystemYellow,
		Purple:             SystemPurple,
		Pink:               SystemPink,
		Teal:               SystemTeal,
		Indigo:             SystemIndigo,
		Mint:               SystemMint,
		Brown:              SystemBrown,
	}
}

// PaletteEntry is one named palette color.
type PaletteEntry struct {
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
}

// Entries lists the palette colors in declaration order.
func (p Palette) Entries() []PaletteEntry {
	return []PaletteEntry{
		{"background", p.Background},
		{"text", p.Text},
		{"secondary_text", p.SecondaryText},
		{"tertiary_text", p.TertiaryText},
		{"placeholder", p.Placeholder},
		{"link", p.Link},
		{"selection", p.Selection},
		{"separator", p.Separator},
		{"input_background", p.InputBackground},
		{"input_border", p.InputBorder},
		{"inactive_border", p.InactiveBorder},
		{"card_background", p.CardBackground},
		{"system_background", p.SystemBackground},
		{"tertiary_background", p.TertiaryBackground},
		{"gray", p.Gray},
		{"blue", p.Blue},
		{"green", p.Green},
		{"red", p.Red},
		{"orange", p.Orange},
		{"yellow", p.Yellow},
		{"purple", p.Purple},
		{"pink", p.Pink},
		{"teal", p.Teal},
		{"indigo", p.Indigo},
		{"mint", p.Mint},
		{"brown", p.Brown},
	}
}
