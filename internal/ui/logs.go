package ui

import (
	"strings"
)

// renderLogs shows the tail of marquee's own log file.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	maxRows := m.height - chromeRows
	if maxRows < 1 {
		maxRows = 1
	}

	lines := m.logLines
	if len(lines) == 0 {
		return styles.Muted.Render("  Nothing logged yet.")
	}
	if len(lines) > maxRows {
		lines = lines[len(lines)-maxRows:]
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = styles.Text.Render(truncate(line, m.width))
	}
	return strings.Join(out, "\n")
}
