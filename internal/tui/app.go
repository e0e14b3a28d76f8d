// Package tui implements the modern widget gallery.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/modern/internal/audit"
	"github.com/opencode-ai/modern/internal/logging"
	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui/components"
	"github.com/opencode-ai/modern/internal/tui/styles"
)

// Config controls the initial gallery state.
type Config struct {
	Mode   theme.Mode
	Status theme.Status
}

// RunWithConfig launches the gallery with cfg.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	mode   theme.Mode
	status theme.Status
	styles styles.Styles
	page   pageID
	viewer *components.PageViewer
	logger zerolog.Logger

	picker     *components.VariantPicker
	pickerOpen bool
	detail     *components.PickerItem

	checking    bool
	check       *CheckResultMsg
	runChecks   func() audit.Report
	lastUpdated time.Time
}

const (
	minWidth  = 60
	minHeight = 15
)

func initialModel(cfg Config) model {
	m := model{
		mode:      cfg.Mode,
		status:    cfg.Status,
		styles:    styles.BuildStyles(styles.ThemeFor(cfg.Mode)),
		page:      pageButtons,
		viewer:    components.NewPageViewer(),
		logger:    logging.Component("tui"),
		picker:    components.NewVariantPicker(pickerSections()),
		runChecks: audit.Run,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		return m.updateGallery(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
	case CheckResultMsg:
		m.checking = false
		m.check = &msg
		m.lastUpdated = msg.Finished
		m.logger.Debug().Int("evaluated", msg.Evaluated()).Int("findings", msg.Findings()).Msg("check finished")
	case ModeChangedMsg:
		m.logger.Debug().Bool("dark", msg.Dark).Msg("mode changed")
	}
	return m, nil
}

func (m model) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3", "4", "5":
		m.page = pageID(msg.String()[0] - '1')
		m.detail = nil
		m.viewer.ScrollToTop()
	case "g", "tab":
		m.page = nextPage(m.page)
		m.detail = nil
		m.viewer.ScrollToTop()
	case "d":
		m.setMode(theme.ModeFromDark(!m.mode.IsDark()))
		m.refresh()
		dark := m.mode.IsDark()
		return m, func() tea.Msg { return ModeChangedMsg{Dark: dark} }
	case "s":
		if m.page.statusApplies() || m.detail != nil {
			m.status = nextStatus(m.status)
		}
	case "c":
		if m.checking {
			return m, nil
		}
		m.checking = true
		return m, RunCheck(m.runChecks)
	case "/":
		m.picker.Reset()
		m.pickerOpen = true
		return m, nil
	case "j", "down":
		m.viewer.ScrollDown(1)
		return m, nil
	case "k", "up":
		m.viewer.ScrollUp(1)
		return m, nil
	case "esc":
		if m.detail != nil {
			m.detail = nil
			break
		}
		return m, tea.Quit
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	m.refresh()
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.pickerOpen = false
	case tea.KeyEnter:
		if item := m.picker.SelectedItem(); item != nil {
			m.detail = item
			m.viewer.ScrollToTop()
		}
		m.pickerOpen = false
	case tea.KeyTab:
		m.picker.NextSection()
	case tea.KeyUp:
		m.picker.Move(-1)
	case tea.KeyDown:
		m.picker.Move(1)
	case tea.KeyBackspace:
		m.picker.Backspace()
	case tea.KeySpace:
		m.picker.Type(" ")
	case tea.KeyRunes:
		m.picker.Type(string(msg.Runes))
	}
	m.refresh()
	return m, nil
}

func (m *model) setMode(mode theme.Mode) {
	m.mode = mode
	m.styles = styles.BuildStyles(styles.ThemeFor(mode))
}

func nextStatus(current theme.Status) theme.Status {
	all := theme.Statuses()
	for i, status := range all {
		if status == current {
			return all[(i+1)%len(all)]
		}
	}
	return theme.Active
}

// refresh re-renders the current page into the viewer.
func (m *model) refresh() {
	if m.height > 0 {
		m.viewer.Height = m.height - 8
	}

	if m.detail != nil {
		blocks, err := m.detailBlocks(*m.detail)
		if err != nil {
			m.logger.Warn().Err(err).Str("variant", m.detail.Label()).Msg("cannot render variant")
			m.detail = nil
		} else {
			m.viewer.SetBlocks(blocks)
			return
		}
	}
	m.viewer.SetBlocks(m.pageBlocks())
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	header := fmt.Sprintf("%s  %s  %s",
		m.styles.Title.Render("Modern widget gallery"),
		components.RenderModeBadge(m.styles, m.mode),
		components.RenderStatusBadge(m.styles, m.status),
	)
	lines := []string{header, m.tabLine(), ""}

	if m.pickerOpen {
		lines = append(lines, m.picker.Render(m.styles)...)
	} else {
		title := m.page.String()
		if m.detail != nil {
			title = m.detail.Label() + "  (esc to go back)"
		}
		lines = append(lines, components.RenderPagePanel(m.styles, m.viewer, title, m.width-2))
	}

	if line := m.checkLine(); line != "" {
		lines = append(lines, "", line)
	}

	statusApplies := m.page.statusApplies() || m.detail != nil
	lines = append(lines, "", components.RenderFooter(m.styles, components.GalleryQuickActions(m.mode.IsDark(), statusApplies), m.width))
	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) tabLine() string {
	parts := make([]string, 0, len(pageTitles))
	for i, title := range pageTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if pageID(i) == m.page {
			parts = append(parts, m.styles.Focus.Render(label))
			continue
		}
		parts = append(parts, m.styles.Muted.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m model) checkLine() string {
	switch {
	case m.checking:
		return m.styles.Info.Render("Checking…")
	case m.check == nil:
		return ""
	case m.check.Report.Passed():
		return components.CheckPassed(m.check.Evaluated()).RenderCompact(m.styles) + m.lastUpdatedSuffix()
	default:
		return components.CheckFailed(m.check.Findings()).RenderCompact(m.styles) + m.lastUpdatedSuffix()
	}
}

func (m model) lastUpdatedSuffix() string {
	if m.lastUpdated.IsZero() {
		return ""
	}
	return m.styles.Muted.Render(fmt.Sprintf(" (%s)", m.lastUpdated.Format("15:04:05")))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}
