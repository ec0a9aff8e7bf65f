package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status line at the top of the screen.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render("marquee")}

	switch {
	case !m.snapshot.HasCatalog && m.snapshot.LastError != nil:
		parts = append(parts,
			styles.Danger.Render("LIBRARY UNREACHABLE"),
			styles.Warning.Render("Retrying..."),
		)
	case !m.snapshot.HasCatalog:
		parts = append(parts, m.spin.View()+styles.Warning.Render("Connecting to library..."))
	default:
		parts = append(parts,
			styles.Muted.Render("Videos:")+" "+styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Catalog))),
		)
		if m.snapshot.IsOffline() {
			parts = append(parts, styles.Danger.Render("OFFLINE"))
		}
		if when := freshness(m.snapshot.LastUpdated); when != "" {
			parts = append(parts, styles.Muted.Render("updated "+when))
		}
	}

	if m.backend != nil {
		parts = append(parts, styles.Muted.Render("player:")+" "+styles.Text.Render(m.backend.Name()))
	}

	if now := m.renderNowPlaying(); now != "" {
		parts = append(parts, now)
	}

	return styles.Bar.Width(m.width).Render(strings.Join(parts, sep))
}

// renderNowPlaying summarizes the playback session for the header.
func (m Model) renderNowPlaying() string {
	styles := m.theme.Styles()
	name := truncate(m.session.name, 40)

	switch m.session.state {
	case sessionLoading:
		return styles.Warning.Render("⏵ loading ") + styles.Text.Render(name)
	case sessionPlaying:
		return styles.Success.Render("⏵ ") + styles.Text.Render(name)
	case sessionFailed:
		return styles.Danger.Render("✖ ") + styles.Muted.Render(name)
	default:
		return ""
	}
}

// renderFooter renders the notice (when visible) above the command hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var b strings.Builder
	if m.notice != "" {
		b.WriteString(styles.Notice.Render(truncate(m.notice, m.width)))
		b.WriteString("\n")
	}

	if m.filtering {
		b.WriteString(m.filterInput.View())
		return b.String()
	}

	type hint struct{ key, desc string }
	hints := []hint{
		{"j/k", "Navigate"},
		{"enter", "Play"},
		{"/", "Filter"},
		{"r", "Refresh"},
		{"x", "Stop"},
		{"l", "Logs"},
		{"T", m.theme.Name},
		{"?", "Help"},
		{"q", "Quit"},
	}
	if m.currentView == ViewLogs {
		hints = []hint{
			{"esc", "Back"},
			{"T", m.theme.Name},
			{"q", "Quit"},
		}
	}

	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, styles.Accent.Render(h.key)+styles.Muted.Render(":"+h.desc))
	}
	if q := strings.TrimSpace(m.filterInput.Value()); q != "" && m.currentView == ViewCatalog {
		segments = append(segments, styles.Accent.Render("/"+truncate(q, 18)))
	}

	b.WriteString(styles.Bar.Width(m.width).Render(strings.Join(segments, "  ")))
	return b.String()
}
