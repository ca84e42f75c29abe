package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ubuntpunk/xenquotes/internal/logtail"
)

const logTailLines = 500

// logPanel holds the log viewer state.
type logPanel struct {
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsMsg{}
		}
		entries, err := logtail.Tail(path, logTailLines)
		return logsMsg{entries: entries, err: err}
	}
}

func (m *Model) handleLogs(msg logsMsg) {
	m.logs.entries = msg.entries
	m.logs.err = msg.err
	m.updateLogViewport()
	m.logs.viewport.GotoBottom()
}

func (m *Model) updateLogViewport() {
	m.logs.viewport.SetContent(m.renderLogLines())
}

// handleLogsKey processes keyboard input while the log viewer is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.panel = panelNone
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, loadLogsCmd(m.logPath)
	}
	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderLogLines() string {
	styles := m.theme.Styles()
	if m.logs.err != nil {
		return styles.DangerText.Render("Could not read log: " + m.logs.err.Error())
	}
	if len(m.logs.entries) == 0 {
		return styles.MutedText.Render("No log entries yet.")
	}

	lines := make([]string, 0, len(m.logs.entries))
	for _, e := range m.logs.entries {
		cols, ok := e.Columns()
		if !ok {
			lines = append(lines, styles.Text.Render(e.Raw))
			continue
		}
		var parts []string
		if cols.Time != "" {
			parts = append(parts, styles.FaintText.Render(cols.Time))
		}
		parts = append(parts, styles.LevelStyle(strings.ToLower(e.Level)).Render(cols.Level))
		if cols.Message != "" {
			parts = append(parts, styles.Text.Render(cols.Message))
		}
		if cols.Fields != "" {
			parts = append(parts, styles.MutedText.Render(cols.Fields))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLogs(width, height int) string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Log") +
		styles.MutedText.Render("  "+m.logPath+"  (r reload, esc close)")
	return styles.Panel.
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Render(title + "\n" + m.logs.viewport.View())
}
