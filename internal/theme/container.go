package theme

// ContainerVariant selects a container's appearance.
type ContainerVariant int

const (
	ContainerTransparent ContainerVariant = iota
	ContainerCard
	ContainerSheet
	ContainerGroup
	ContainerSidebar
	ContainerSeparated
	ContainerAccent
	ContainerToolbar
	ContainerFloating
	ContainerDangerTooltip
	ContainerWarningTooltip
)

var containerVariantNames = []string{
	"transparent", "card", "sheet", "group", "sidebar",
	"separated", "accent", "toolbar", "floating", "danger-tooltip", "warning-tooltip",
}

func (v ContainerVariant) String() string {
	return nameOf(containerVariantNames, v)
}

// ParseContainerVariant parses a container variant name.
func ParseContainerVariant(value string) (ContainerVariant, error) {
	return parseName[ContainerVariant]("container variant", containerVariantNames, value)
}

// ContainerVariants lists every container variant.
func ContainerVariants() []ContainerVariant {
	return allOf[ContainerVariant](containerVariantNames)
}

// ContainerStyle is the appearance of a container. Containers have no
// interaction status.
type ContainerStyle struct {
	TextColor  Color      `json:"text_color" yaml:"text_color"`
	Background Background `json:"background" yaml:"background"`
	Border     Border     `json:"border" yaml:"border"`
	Shadow     Shadow     `json:"shadow" yaml:"shadow"`
}

// ContainerFunc resolves a container style for a mode.
type ContainerFunc func(mode Mode) ContainerStyle

// Container resolves the style of a container variant.
func Container(mode Mode, variant ContainerVariant) ContainerStyle {
	p := PaletteFor(mode)
	dark := mode.IsDark()

	switch variant {
	case ContainerCard:
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(p.CardBackground),
			Border:     Border{Radius: 10},
			Shadow:     dropShadow(0.1, 0, 2, 8),
		}
	case ContainerSheet:
		bg := FromRGB(0.95, 0.95, 0.97)
		if dark {
			bg = FromRGB(0.22, 0.22, 0.23)
		}
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(bg),
			Border:     Border{Radius: 12},
			Shadow:     dropShadow(0.2, 0, 4, 16),
		}
	case ContainerGroup:
		bg := FromRGB(0.95, 0.95, 0.97)
		if dark {
			bg = FromRGB(0.17, 0.17, 0.18)
		}
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(bg),
			Border:     Border{Radius: 10},
		}
	case ContainerSidebar:
		bg := FromRGB(0.92, 0.92, 0.93)
		if dark {
			bg = FromRGB(0.15, 0.15, 0.16)
		}
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(bg),
			Shadow:     dropShadow(0.05, 1, 0, 3),
		}
	case ContainerSeparated:
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(p.Background),
		}
	case ContainerAccent:
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(p.Background),
			Border:     Border{Width: 2, Radius: 8, Color: p.Blue},
			Shadow:     dropShadow(0.1, 0, 2, 4),
		}
	case ContainerToolbar:
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(p.SystemBackground),
			Shadow:     dropShadow(0.05, 0, 1, 2),
		}
	case ContainerFloating:
		return ContainerStyle{
			TextColor:  p.Text,
			Background: Fill(p.CardBackground),
			Border:     Border{Radius: 10},
			Shadow:     dropShadow(0.25, 0, 4, 16),
		}
	case ContainerDangerTooltip:
		return dangerTooltip(dark)
	case ContainerWarningTooltip:
		return warningTooltip(p, dark)
	default:
		return ContainerStyle{TextColor: p.Text}
	}
}

func dangerTooltip(dark bool) ContainerStyle {
	if dark {
		return ContainerStyle{
			TextColor:  FromRGB(1, 0.6, 0.6),
			Background: Fill(FromRGB(0.4, 0.1, 0.1)),
			Border:     Border{Width: 1, Radius: 6, Color: FromRGB(0.8, 0.3, 0.3)},
			Shadow:     dropShadow(0.15, 0, 1, 3),
		}
	}
	return ContainerStyle{
		TextColor:  FromRGB(0.7, 0, 0),
		Background: Fill(FromRGB(1, 0.92, 0.92)),
		Border:     Border{Width: 1, Radius: 6, Color: FromRGB(0.9, 0.6, 0.6)},
		Shadow:     dropShadow(0.15, 0, 1, 3),
	}
}

func warningTooltip(p Palette, dark bool) ContainerStyle {
	bg := FromRGB(1, 0.96, 0.9)
	if dark {
		bg = FromRGBA(0.3, 0.15, 0, 0.7)
	}
	return ContainerStyle{
		TextColor:  p.Orange,
		Background: Fill(bg),
		Border:     Border{Width: 1, Radius: 6, Color: p.Orange},
		Shadow:     dropShadow(0.1, 0, 1, 2),
	}
}

// ValidationState is the outcome of validating user input.
type ValidationState int

const (
	Valid ValidationState = iota
	Warning
	Invalid
)

var validationNames = []string{"valid", "warning", "error"}

func (v ValidationState) String() string {
	return nameOf(validationNames, v)
}

// ParseValidationState parses "valid", "warning" or "error".
func ParseValidationState(value string) (ValidationState, error) {
	return parseName[ValidationState]("validation state", validationNames, value)
}

// ValidationStates lists every validation state.
func ValidationStates() []ValidationState {
	return allOf[ValidationState](validationNames)
}

// TooltipContainer picks a tooltip style for a validation state. Valid input
// gets a plain card.
func TooltipContainer(mode Mode, state ValidationState) ContainerStyle {
	switch state {
	case Invalid:
		return Container(mode, ContainerDangerTooltip)
	case Warning:
		return Container(mode, ContainerWarningTooltip)
	default:
		return Container(mode, ContainerCard)
	}
}

// ValidatedTooltip is TooltipContainer without the warning state.
func ValidatedTooltip(mode Mode, hasError bool) ContainerStyle {
	if hasError {
		return TooltipContainer(mode, Invalid)
	}
	return TooltipContainer(mode, Valid)
}

// ContainerFor returns the ContainerFunc of a variant.
func ContainerFor(variant ContainerVariant) ContainerFunc {
	return func(mode Mode) ContainerStyle {
		return Container(mode, variant)
	}
}

// ConditionalContainer picks whenTrue or whenFalse once, at construction.
func ConditionalContainer(condition bool, whenTrue, whenFalse ContainerFunc) ContainerFunc {
	if condition {
		return whenTrue
	}
	return whenFalse
}
