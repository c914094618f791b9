package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/screens"
	"github.com/five82/gallery/internal/viewstate"
)

const (
	loadingListText   = "Loading photos..."
	loadingDetailText = "Loading photo details..."
)

// renderMain renders header, content and footer.
func (m Model) renderMain() string {
	content := m.renderContent()
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(content)
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) renderContent() string {
	if m.showLogs {
		return m.renderLogs()
	}
	if d := m.router.Top(); d != nil {
		snap := d.Snapshot()
		switch snap.Phase {
		case viewstate.Ready:
			return m.renderDetail(snap.Data)
		case viewstate.Failed:
			return m.renderError(snap.Error)
		default:
			return m.renderLoading(loadingDetailText)
		}
	}

	snap := m.list.Snapshot()
	switch snap.Phase {
	case viewstate.Ready:
		return m.renderList(snap.Data)
	case viewstate.Failed:
		return m.renderError(snap.Error)
	default:
		return m.renderLoading(loadingListText)
	}
}

// renderHeader shows the navigation path and when the visible screen last
// resolved a fetch.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	crumbs := []string{bg.Render(screens.ListTitle, styles.Text.Bold(m.router.Depth() == 0))}
	for i, frame := range m.router.stack {
		top := i == len(m.router.stack)-1
		crumbs = append(crumbs, bg.Render(frame.screen.Title(), styles.Text.Bold(top)))
	}

	parts := []string{
		bg.Render("gallery", styles.Logo),
		bg.Join(crumbs, " › "),
	}
	if updated := m.lastUpdated(); updated != "" {
		parts = append(parts, bg.Render(updated, styles.MutedText))
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) lastUpdated() string {
	at := m.list.Snapshot().LastUpdated
	if d := m.router.Top(); d != nil {
		at = d.Snapshot().LastUpdated
	}
	if at.IsZero() {
		return ""
	}
	return "updated " + humanize.Time(at)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(hints, "  "))
}

func (m Model) renderLoading(text string) string {
	styles := m.theme.Styles()
	line := m.spinner.View() + " " + styles.MutedText.Render(text)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, line)
}

func (m Model) renderError(pe *viewstate.PresentableError) string {
	styles := m.theme.Styles()
	if pe == nil {
		return ""
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render(pe.Header),
		"",
		styles.Text.Render(pe.Description),
		"",
		styles.Button.Render("[ "+pe.Button+" ]"),
	)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, block)
}

func (m Model) renderList(items []photos.Photo) string {
	styles := m.theme.Styles()
	if len(items) == 0 {
		return styles.MutedText.Render("No photos.")
	}

	visible := m.contentHeight()
	start := clamp(m.selected-visible/2, 0, len(items)-visible)
	end := minInt(start+visible, len(items))

	showURLs := m.prefs.ShowURLs && m.width >= LayoutCompactWidth
	urlWidth := 0
	if showURLs {
		urlWidth = m.width / 3
	}
	titleWidth := maxInt(m.width-idColumnWidth-urlWidth-2, 8)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := items[i]
		row := padRight(fmt.Sprintf("#%d", p.ID), idColumnWidth) +
			padRight(truncate(p.Title, titleWidth), titleWidth)
		if showURLs {
			row += "  " + truncateMiddle(p.URL, urlWidth)
		}
		if i == m.selected {
			lines = append(lines, styles.Selected.Width(m.width).Render(row))
			continue
		}
		lines = append(lines, styles.Text.Render(row))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail(d photos.PhotoDetail) string {
	styles := m.theme.Styles()
	label := styles.MutedText.Width(12)
	valueWidth := maxInt(m.width-14, 10)

	rows := []struct{ name, value string }{
		{"Title", d.Title},
		{"ID", fmt.Sprintf("%d", d.ID)},
		{"URL", truncateMiddle(d.URL, valueWidth)},
		{"Thumbnail", truncateMiddle(d.ThumbnailURL, valueWidth)},
	}
	var b strings.Builder
	for i, r := range rows {
		b.WriteString(label.Render(r.name))
		b.WriteString(styles.Text.Render(r.value))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
