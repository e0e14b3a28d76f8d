package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/components"
)

type pageID int

const (
	pageButtons pageID = iota
	pageInputs
	pageContainers
	pageToggles
	pageText
)

var pageTitles = []string{"Buttons", "Inputs", "Containers", "Toggles", "Text"}

func (p pageID) String() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return "Unknown"
	}
	return pageTitles[p]
}

func nextPage(current pageID) pageID {
	return (current + 1) % pageID(len(pageTitles))
}

// statusApplies reports whether widgets on the page react to status.
func (p pageID) statusApplies() bool {
	switch p {
	case pageContainers, pageText:
		return false
	default:
		return true
	}
}

const labelWidth = 18

func (m model) row(label, swatch string) string {
	name := m.styles.Muted.Copy().Width(labelWidth).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Center, name, swatch)
}

func (m model) pageBlocks() []string {
	switch m.page {
	case pageInputs:
		return m.inputBlocks()
	case pageContainers:
		return m.containerBlocks()
	case pageToggles:
		return m.toggleBlocks()
	case pageText:
		return m.textBlocks()
	default:
		return m.buttonBlocks()
	}
}

func (m model) buttonBlocks() []string {
	canvas := m.styles.Canvas()
	var blocks []string
	for _, variant := range theme.ButtonVariants() {
		style := theme.Button(m.mode, variant, m.status)
		blocks = append(blocks, m.row(variant.String(), components.RenderButton(style, "Continue", canvas)))
	}
	blocks = append(blocks, "", m.styles.Accent.Render("Tinted"))
	for _, tint := range theme.Tints() {
		style := theme.TintedButton(m.mode, tint, m.status)
		blocks = append(blocks, m.row(tint.String(), components.RenderButton(style, "Continue", canvas)))
	}
	return blocks
}

func (m model) inputBlocks() []string {
	canvas := m.styles.Canvas()
	var blocks []string
	for _, variant := range theme.TextInputVariants() {
		style := theme.TextInput(m.mode, variant, m.status)
		blocks = append(blocks, m.row(variant.String(), components.RenderTextInput(style, "Placeholder", "", 24, canvas)))
	}

	blocks = append(blocks, "", m.styles.Accent.Render("Combo box"))
	blocks = append(blocks, m.row("field", components.RenderTextInput(theme.ComboBox(m.mode, m.status), "Choose size", "Medium", 24, canvas)))
	blocks = append(blocks, m.row("menu", components.RenderMenu(theme.ComboBoxMenu(m.mode), []string{"Small", "Medium", "Large"}, 1, canvas)))

	blocks = append(blocks, "", m.styles.Accent.Render("Pick list"))
	blocks = append(blocks, m.row("pick-list", components.RenderPickList(theme.PickList(m.mode, m.status), "Weekly", 24, canvas)))
	return blocks
}

func (m model) containerBlocks() []string {
	canvas := m.styles.Canvas()
	var blocks []string
	if m.status != theme.Active {
		blocks = append(blocks, components.StatusNotApplicable("Containers", m.status).RenderCompact(m.styles), "")
	}
	for _, variant := range theme.ContainerVariants() {
		style := theme.Container(m.mode, variant)
		body := components.DescribeShadow(style.Shadow)
		blocks = append(blocks, m.row(variant.String(), components.RenderContainer(style, body, 36, canvas)))
	}
	return blocks
}

func (m model) toggleBlocks() []string {
	canvas := m.styles.Canvas()
	return []string{
		m.row("checkbox", components.RenderCheckbox(theme.Checkbox(m.mode, m.status, false), false, "Sync over cellular", canvas)),
		m.row("checkbox (on)", components.RenderCheckbox(theme.Checkbox(m.mode, m.status, true), true, "Sync over cellular", canvas)),
		m.row("radio", components.RenderRadio(theme.Radio(m.mode, m.status, false), false, "Daily", canvas)),
		m.row("radio (on)", components.RenderRadio(theme.Radio(m.mode, m.status, true), true, "Weekly", canvas)),
	}
}

func (m model) textBlocks() []string {
	canvas := m.styles.Canvas()
	var blocks []string
	if m.status != theme.Active {
		blocks = append(blocks, components.StatusNotApplicable("Text styles", m.status).RenderCompact(m.styles), "")
	}
	for _, variant := range theme.TextVariants() {
		blocks = append(blocks, m.row(variant.String(), components.RenderText(theme.Text(m.mode, variant), "The quick brown fox", canvas)))
	}
	return blocks
}

// pickerSections lists every inspectable variant.
func pickerSections() []components.PickerSection {
	buttons := components.PickerSection{Title: "Buttons"}
	for _, variant := range theme.ButtonVariants() {
		kind := "filled"
		if variant.TextOnly() {
			kind = "text"
		}
		buttons.Items = append(buttons.Items, components.PickerItem{Widget: "button", Variant: variant.String(), Tags: []string{kind}})
	}
	for _, tint := range theme.Tints() {
		buttons.Items = append(buttons.Items, components.PickerItem{Widget: "tinted", Variant: tint.String(), Tags: []string{"tinted"}})
	}

	inputs := components.PickerSection{Title: "Inputs"}
	for _, variant := range theme.TextInputVariants() {
		inputs.Items = append(inputs.Items, components.PickerItem{Widget: "text-input", Variant: variant.String()})
	}

	containers := components.PickerSection{Title: "Containers"}
	for _, variant := range theme.ContainerVariants() {
		containers.Items = append(containers.Items, components.PickerItem{Widget: "container", Variant: variant.String()})
	}

	text := components.PickerSection{Title: "Text"}
	for _, variant := range theme.TextVariants() {
		text.Items = append(text.Items, components.PickerItem{Widget: "text", Variant: variant.String()})
	}

	return []components.PickerSection{buttons, inputs, containers, text}
}

// detailBlocks renders one variant under every status it honours.
func (m model) detailBlocks(item components.PickerItem) ([]string, error) {
	canvas := m.styles.Canvas()
	var blocks []string

	switch item.Widget {
	case "button":
		variant, err := theme.ParseButtonVariant(item.Variant)
		if err != nil {
			return nil, err
		}
		for _, status := range []theme.Status{theme.Active, theme.Hovered, theme.Pressed, theme.Disabled} {
			blocks = append(blocks, m.row(status.String(), components.RenderButton(theme.Button(m.mode, variant, status), "Continue", canvas)))
		}
	case "tinted":
		tint, err := theme.ParseTint(item.Variant)
		if err != nil {
			return nil, err
		}
		for _, status := range []theme.Status{theme.Active, theme.Hovered, theme.Pressed, theme.Disabled} {
			blocks = append(blocks, m.row(status.String(), components.RenderButton(theme.TintedButton(m.mode, tint, status), "Continue", canvas)))
		}
	case "text-input":
		variant, err := theme.ParseTextInputVariant(item.Variant)
		if err != nil {
			return nil, err
		}
		for _, status := range []theme.Status{theme.Active, theme.Hovered, theme.Focused, theme.Disabled} {
			blocks = append(blocks, m.row(status.String(), components.RenderTextInput(theme.TextInput(m.mode, variant, status), "Placeholder", "", 24, canvas)))
		}
	case "container":
		variant, err := theme.ParseContainerVariant(item.Variant)
		if err != nil {
			return nil, err
		}
		style := theme.Container(m.mode, variant)
		blocks = append(blocks, m.row("any", components.RenderContainer(style, components.DescribeShadow(style.Shadow), 36, canvas)))
	case "text":
		variant, err := theme.ParseTextVariant(item.Variant)
		if err != nil {
			return nil, err
		}
		style := theme.Text(m.mode, variant)
		blocks = append(blocks, m.row("any", components.RenderText(style, style.Color.String(), canvas)))
	default:
		return nil, fmt.Errorf("unknown widget %q", item.Widget)
	}
	return blocks, nil
}
