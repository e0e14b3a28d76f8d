// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/modern/internal/tui/styles"
)

// PageViewer displays gallery content that may be taller than the window.
type PageViewer struct {
	Lines        []string
	ScrollOffset int
	Height       int
}

// NewPageViewer creates a new page viewer.
func NewPageViewer() *PageViewer {
	return &PageViewer{Height: 20}
}

// SetBlocks replaces the content. Multi-line blocks such as bordered swatches
// are split so scrolling moves one terminal row at a time.
func (v *PageViewer) SetBlocks(blocks []string) {
	v.Lines = v.Lines[:0]
	for _, block := range blocks {
		v.Lines = append(v.Lines, strings.Split(block, "\n")...)
	}
	v.clampScroll()
}

// ScrollUp scrolls the view up by n lines.
func (v *PageViewer) ScrollUp(n int) {
	v.ScrollOffset -= n
	v.clampScroll()
}

// ScrollDown scrolls the view down by n lines.
func (v *PageViewer) ScrollDown(n int) {
	v.ScrollOffset += n
	v.clampScroll()
}

// ScrollToTop scrolls to the top.
func (v *PageViewer) ScrollToTop() {
	v.ScrollOffset = 0
}

// ScrollToBottom scrolls to the bottom.
func (v *PageViewer) ScrollToBottom() {
	v.ScrollOffset = v.maxOffset()
}

func (v *PageViewer) visibleLines() int {
	if v.Height <= 2 {
		return 1
	}
	return v.Height - 1 // footer
}

func (v *PageViewer) maxOffset() int {
	maxOffset := len(v.Lines) - v.visibleLines()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

func (v *PageViewer) clampScroll() {
	if v.ScrollOffset > v.maxOffset() {
		v.ScrollOffset = v.maxOffset()
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}
}

// Render renders the visible window and a scroll indicator.
func (v *PageViewer) Render(styleSet styles.Styles) string {
	if len(v.Lines) == 0 {
		return styleSet.Muted.Render("Nothing to show.")
	}
	v.clampScroll()

	endIdx := v.ScrollOffset + v.visibleLines()
	if endIdx > len(v.Lines) {
		endIdx = len(v.Lines)
	}

	rendered := append([]string(nil), v.Lines[v.ScrollOffset:endIdx]...)
	if info := v.scrollIndicator(styleSet); info != "" {
		rendered = append(rendered, info)
	}
	return strings.Join(rendered, "\n")
}

func (v *PageViewer) scrollIndicator(styleSet styles.Styles) string {
	total := len(v.Lines)
	visible := v.visibleLines()
	if total <= visible {
		return ""
	}

	endLine := v.ScrollOffset + visible
	if endLine > total {
		endLine = total
	}
	percent := (v.ScrollOffset * 100) / (total - visible)
	return styleSet.Muted.Render(fmt.Sprintf("─── %d-%d of %d (%d%%) j/k scroll ───", v.ScrollOffset+1, endLine, total, percent))
}

// RenderPagePanel renders a titled page panel.
func RenderPagePanel(styleSet styles.Styles, viewer *PageViewer, title string, width int) string {
	if viewer == nil {
		return styleSet.Muted.Render("No page.")
	}

	panelContent := styleSet.Accent.Render(title) + "\n" + viewer.Render(styleSet)
	panel := styleSet.Panel.Copy().Padding(0, 1)
	if width > 0 {
		panel = panel.Width(width)
	}
	return panel.Render(panelContent)
}
