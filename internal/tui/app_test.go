package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/modern/internal/audit"
	"github.com/opencode-ai/modern/internal/theme"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func sizedModel(t *testing.T) model {
	m := initialModel(Config{Mode: theme.Light})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	return m
}

func TestPageNavigation(t *testing.T) {
	m := sizedModel(t)
	assert.Equal(t, pageButtons, m.page)

	m, _ = update(t, m, keyMsg("g"))
	assert.Equal(t, pageInputs, m.page)

	m, _ = update(t, m, keyMsg("5"))
	assert.Equal(t, pageText, m.page)

	m, _ = update(t, m, keyMsg("g"))
	assert.Equal(t, pageButtons, m.page)
}

func TestModeToggleRebuildsStyles(t *testing.T) {
	m := sizedModel(t)

	m, cmd := update(t, m, keyMsg("d"))
	assert.Equal(t, theme.Dark, m.mode)
	assert.Equal(t, theme.Dark, m.styles.Theme.Mode)
	require.NotNil(t, cmd)
	assert.Equal(t, ModeChangedMsg{Dark: true}, cmd())
	assert.Contains(t, m.View(), "Dark")
}

func TestStatusCyclesOnlyWhereItApplies(t *testing.T) {
	m := sizedModel(t)

	m, _ = update(t, m, keyMsg("s"))
	assert.Equal(t, theme.Hovered, m.status)

	m, _ = update(t, m, keyMsg("3"))
	m, _ = update(t, m, keyMsg("s"))
	assert.Equal(t, theme.Hovered, m.status)
	assert.Contains(t, m.View(), "Containers ignore the hovered status")
}

func TestNextStatusWraps(t *testing.T) {
	assert.Equal(t, theme.Active, nextStatus(theme.Disabled))
	assert.Equal(t, theme.Pressed, nextStatus(theme.Hovered))
}

func TestCheckRunsAsync(t *testing.T) {
	m := sizedModel(t)
	m.runChecks = func() audit.Report {
		return audit.Report{Results: []audit.Result{{Check: "stub", Evaluated: 7}}}
	}

	m, cmd := update(t, m, keyMsg("c"))
	require.NotNil(t, cmd)
	assert.True(t, m.checking)
	assert.Contains(t, m.View(), "Checking")

	msg := cmd()
	result, ok := msg.(CheckResultMsg)
	require.True(t, ok)
	assert.Equal(t, 7, result.Evaluated())

	m, _ = update(t, m, msg)
	assert.False(t, m.checking)
	assert.Contains(t, m.View(), "All checks passed")
}

func TestCheckShowsFailures(t *testing.T) {
	m := sizedModel(t)
	msg := CheckResultMsg{Report: audit.Report{Results: []audit.Result{
		{Check: "stub", Evaluated: 1, Findings: []audit.Finding{{Subject: "a"}, {Subject: "b"}}},
	}}}

	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "2 check finding(s)")
}

func TestPickerSelectsDetail(t *testing.T) {
	m := sizedModel(t)

	m, _ = update(t, m, keyMsg("/"))
	require.True(t, m.pickerOpen)
	assert.Contains(t, m.View(), "BUTTONS")

	m, _ = update(t, m, keyMsg("danger"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.pickerOpen)
	require.NotNil(t, m.detail)
	assert.Equal(t, "button/danger", m.detail.Label())

	view := m.View()
	assert.Contains(t, view, "button/danger")
	assert.Contains(t, view, "disabled")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.detail)
}

func TestPickerEscCloses(t *testing.T) {
	m := sizedModel(t)
	m, _ = update(t, m, keyMsg("/"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.pickerOpen)
	assert.Nil(t, cmd)
}

func TestDetailBlocksCoverEveryVariant(t *testing.T) {
	m := sizedModel(t)
	for _, section := range pickerSections() {
		for _, item := range section.Items {
			blocks, err := m.detailBlocks(item)
			require.NoError(t, err, item.Label())
			assert.NotEmpty(t, blocks)
		}
	}
}

func TestEveryPageRenders(t *testing.T) {
	m := sizedModel(t)
	for range pageTitles {
		assert.NotEmpty(t, m.pageBlocks(), m.page.String())
		m, _ = update(t, m, keyMsg("g"))
	}
}

func TestSmallTerminal(t *testing.T) {
	m := initialModel(Config{Mode: theme.Dark})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), "Terminal too small (40x10).")
}

func TestQuitKeys(t *testing.T) {
	m := sizedModel(t)
	_, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
