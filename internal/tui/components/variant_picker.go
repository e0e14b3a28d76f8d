// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/modern/internal/tui/styles"
)

// PickerItem is one selectable variant.
type PickerItem struct {
	Widget  string
	Variant string
	Tags    []string
}

// Label returns "widget/variant".
func (i PickerItem) Label() string {
	return fmt.Sprintf("%s/%s", i.Widget, i.Variant)
}

// PickerSection groups items under a heading.
type PickerSection struct {
	Title string
	Items []PickerItem
}

// VariantPicker stores state for the variant picker overlay.
type VariantPicker struct {
	Query    string
	Section  int
	Index    int
	Sections []PickerSection
}

// NewVariantPicker creates a picker over sections. Items keep their order.
func NewVariantPicker(sections []PickerSection) *VariantPicker {
	clone := make([]PickerSection, len(sections))
	for i, section := range sections {
		clone[i] = PickerSection{Title: section.Title, Items: append([]PickerItem(nil), section.Items...)}
	}
	return &VariantPicker{Sections: clone}
}

// Reset clears the query and selection.
func (p *VariantPicker) Reset() {
	p.Query = ""
	p.Section = 0
	p.Index = 0
}

// Type appends to the query and resets the selection.
func (p *VariantPicker) Type(text string) {
	p.Query += text
	p.Index = 0
	p.ClampIndex()
}

// Backspace removes the last query rune.
func (p *VariantPicker) Backspace() {
	if p.Query == "" {
		return
	}
	runes := []rune(p.Query)
	p.Query = string(runes[:len(runes)-1])
	p.ClampIndex()
}

// NextSection cycles the active section.
func (p *VariantPicker) NextSection() {
	if len(p.Sections) == 0 {
		return
	}
	p.Section = (p.Section + 1) % len(p.Sections)
	p.Index = 0
}

// Move shifts the selection within the active section, wrapping around.
func (p *VariantPicker) Move(delta int) {
	items := p.activeItems()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	p.Index = idx
}

// ClampIndex keeps the selection index in bounds.
func (p *VariantPicker) ClampIndex() {
	items := p.activeItems()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= len(items) {
		p.Index = len(items) - 1
	}
}

// SelectedItem returns the highlighted item, or nil.
func (p *VariantPicker) SelectedItem() *PickerItem {
	items := p.activeItems()
	if p.Index < 0 || p.Index >= len(items) {
		return nil
	}
	selected := items[p.Index]
	return &selected
}

// Render renders the picker lines.
func (p *VariantPicker) Render(styleSet styles.Styles) []string {
	lines := []string{
		styleSet.Accent.Render("Variants"),
		styleSet.Muted.Render("Type to filter. Enter to inspect. Esc to close. Tab switches sections."),
		styleSet.Text.Render(fmt.Sprintf("> %s", p.Query)),
	}

	total := 0
	for _, section := range p.Sections {
		total += len(p.filteredItems(section.Items))
	}
	if total == 0 {
		return append(lines, styleSet.Muted.Render("No variants match."))
	}

	for i, section := range p.Sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.renderSection(styleSet, section.Title, p.filteredItems(section.Items), i == p.Section)...)
	}
	return lines
}

func (p *VariantPicker) renderSection(styleSet styles.Styles, title string, items []PickerItem, active bool) []string {
	headingStyle := styleSet.Muted
	if active {
		headingStyle = styleSet.Accent
	}
	lines := []string{headingStyle.Render(strings.ToUpper(title))}
	if len(items) == 0 {
		return append(lines, styleSet.Muted.Render("  (none)"))
	}
	for idx, item := range items {
		if active && idx == p.Index {
			lines = append(lines, styleSet.Focus.Render("> "+item.Label()))
			continue
		}
		lines = append(lines, styleSet.Muted.Render("  "+item.Label()))
	}
	return lines
}

func (p *VariantPicker) filteredItems(items []PickerItem) []PickerItem {
	tokens := strings.Fields(strings.ToLower(p.Query))
	if len(tokens) == 0 {
		return items
	}
	filtered := make([]PickerItem, 0, len(items))
	for _, item := range items {
		haystack := strings.ToLower(item.Label() + " " + strings.Join(item.Tags, " "))
		if matchesTokens(haystack, tokens) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (p *VariantPicker) activeItems() []PickerItem {
	if p.Section < 0 || p.Section >= len(p.Sections) {
		return nil
	}
	return p.filteredItems(p.Sections[p.Section].Items)
}

func matchesTokens(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}
