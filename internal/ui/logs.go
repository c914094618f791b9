package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/logtail"
)

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsMsg{}
		}
		lines, err := logtail.Read(path, LogOverlayLines)
		return logsMsg{entries: logtail.Parse(lines), err: err}
	}
}

// renderLogs renders the newest log entries that fit the content area.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	box := styles.Overlay.Width(maxInt(m.width-2, 10))

	inner := maxInt(m.contentHeight()-3, 1)
	title := styles.AccentText.Bold(true).Render("Log") + " " + styles.FaintText.Render(truncateMiddle(m.logPath, 60))

	var lines []string
	switch {
	case m.logErr != nil:
		lines = []string{styles.DangerText.Render(m.logErr.Error())}
	case len(m.logEntries) == 0:
		lines = []string{styles.MutedText.Render("No log entries yet.")}
	default:
		entries := m.logEntries
		if len(entries) > inner {
			entries = entries[len(entries)-inner:]
		}
		width := maxInt(m.width-4, 10)
		for _, e := range entries {
			lines = append(lines, m.formatLogEntry(e, width))
		}
	}
	return box.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (m Model) formatLogEntry(e logtail.Entry, width int) string {
	styles := m.theme.Styles()
	if e.Raw != "" {
		return styles.MutedText.Render(truncate(e.Raw, width))
	}
	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
	}
	if e.Level != "" {
		parts = append(parts, styles.LevelStyle(e.Level).Render(padRight(strings.ToUpper(e.Level), 5)))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	if len(e.Fields) > 0 {
		kv := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			kv = append(kv, f.Key+"="+f.Value)
		}
		parts = append(parts, styles.MutedText.Render(strings.Join(kv, " ")))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, " "))
}
