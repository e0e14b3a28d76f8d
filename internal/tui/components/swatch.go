// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/styles"
)

// Swatches approximate resolved style records in a terminal. Translucent
// colors are composited onto the canvas because terminals have no alpha.

// RenderButton renders a button label with its fill, text and outline.
func RenderButton(style theme.ButtonStyle, label string, canvas theme.Color) string {
	fill := canvas
	if style.Background.Valid {
		fill = style.Background.Color.Over(canvas)
	}

	s := lipgloss.NewStyle().
		Padding(0, 2).
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(style.TextColor, fill))
	s = withBorder(s, style.Border, canvas)
	return s.Render(label)
}

// RenderContainer renders body inside a container's fill and outline.
func RenderContainer(style theme.ContainerStyle, body string, width int, canvas theme.Color) string {
	fill := canvas
	if style.Background.Valid {
		fill = style.Background.Color.Over(canvas)
	}

	s := lipgloss.NewStyle().
		Padding(0, 1).
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(style.TextColor, fill))
	if width > 0 {
		s = s.Width(width)
	}
	s = withBorder(s, style.Border, canvas)
	return s.Render(body)
}

// RenderTextInput renders an input field showing value, or the placeholder
// when value is empty.
func RenderTextInput(style theme.TextInputStyle, placeholder, value string, width int, canvas theme.Color) string {
	fill := style.Background.Over(canvas)

	text, color := value, style.Value
	if text == "" {
		text, color = placeholder, style.Placeholder
	}

	s := lipgloss.NewStyle().
		Padding(0, 1).
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(color, fill))
	if width > 0 {
		s = s.Width(width)
	}
	s = withBorder(s, style.Border, canvas)
	return s.Render(text)
}

// RenderCheckbox renders "[x] label" with the checkbox colors.
func RenderCheckbox(style theme.CheckboxStyle, checked bool, label string, canvas theme.Color) string {
	fill := style.Background.Over(canvas)
	mark := " "
	if checked {
		mark = "✓"
	}

	boxColor := style.Border.Color
	if style.Border.Width == 0 {
		boxColor = style.Background
	}

	box := lipgloss.NewStyle().
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(style.IconColor, fill)).
		Render(mark)
	bracket := lipgloss.NewStyle().Foreground(styles.Paint(boxColor, canvas))
	text := lipgloss.NewStyle().Foreground(styles.Paint(style.TextColor, canvas)).Render(label)

	return fmt.Sprintf("%s%s%s %s", bracket.Render("["), box, bracket.Render("]"), text)
}

// RenderRadio renders "(•) label" with the radio colors.
func RenderRadio(style theme.RadioStyle, selected bool, label string, canvas theme.Color) string {
	dot := " "
	if selected {
		dot = "•"
	}

	ring := lipgloss.NewStyle().Foreground(styles.Paint(style.BorderColor, canvas))
	inner := lipgloss.NewStyle().Foreground(styles.Paint(style.DotColor, canvas)).Render(dot)
	text := lipgloss.NewStyle().Foreground(styles.Paint(style.TextColor, canvas)).Render(label)

	return fmt.Sprintf("%s%s%s %s", ring.Render("("), inner, ring.Render(")"), text)
}

// RenderPickList renders the closed pick list with its handle.
func RenderPickList(style theme.PickListStyle, value string, width int, canvas theme.Color) string {
	fill := style.Background.Over(canvas)

	handle := lipgloss.NewStyle().
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(style.HandleColor, fill)).
		Render(" ▾")

	s := lipgloss.NewStyle().
		Padding(0, 1).
		Background(styles.Paint(fill, canvas)).
		Foreground(styles.Paint(style.TextColor, fill))
	if width > 0 {
		s = s.Width(width)
	}
	s = withBorder(s, style.Border, canvas)
	return s.Render(value + handle)
}

// RenderMenu renders a combo box menu with one highlighted option.
func RenderMenu(style theme.MenuStyle, options []string, selected int, canvas theme.Color) string {
	fill := style.Background.Over(canvas)
	highlight := style.SelectedBackground.Over(fill)

	lines := make([]string, 0, len(options))
	for i, option := range options {
		row := lipgloss.NewStyle().Padding(0, 1)
		if i == selected {
			row = row.Background(styles.Paint(highlight, canvas)).Foreground(styles.Paint(style.SelectedTextColor, highlight))
		} else {
			row = row.Background(styles.Paint(fill, canvas)).Foreground(styles.Paint(style.TextColor, fill))
		}
		lines = append(lines, row.Render(option))
	}

	s := withBorder(lipgloss.NewStyle().Background(styles.Paint(fill, canvas)), style.Border, canvas)
	return s.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderText renders a label in a text style.
func RenderText(style theme.TextStyle, text string, canvas theme.Color) string {
	return lipgloss.NewStyle().Foreground(styles.Paint(style.Color, canvas)).Render(text)
}

// DescribeShadow summarizes a shadow, which terminals cannot draw.
func DescribeShadow(shadow theme.Shadow) string {
	if shadow.IsZero() {
		return "no shadow"
	}
	return fmt.Sprintf("shadow %s (%g,%g) blur %g", shadow.Color, shadow.Offset.X, shadow.Offset.Y, shadow.BlurRadius)
}

func withBorder(s lipgloss.Style, border theme.Border, canvas theme.Color) lipgloss.Style {
	if border.Width <= 0 || border.Color.A == 0 {
		return s
	}

	shape := lipgloss.NormalBorder()
	switch {
	case border.Width >= 2:
		shape = lipgloss.ThickBorder()
	case border.Radius > 0:
		shape = lipgloss.RoundedBorder()
	}
	return s.Border(shape).BorderForeground(styles.Paint(border.Color, canvas))
}
