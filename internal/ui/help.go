package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	bindings := []struct{ key, desc string }{
		{"j/k, ↓/↑", "Move the cursor"},
		{"g/G", "Jump to first/last video"},
		{"enter", "Play the highlighted video"},
		{"x", "Stop playback"},
		{"/", "Filter the catalog (esc clears)"},
		{"r", "Refresh the catalog now"},
		{"l", "Show marquee's log"},
		{"T", "Cycle color theme"},
		{"h, ?", "This help"},
		{"q, Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("marquee"))
	b.WriteString(styles.Muted.Render("  key bindings"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString("  ")
		b.WriteString(styles.Accent.Render(padRight(bind.key, 12)))
		b.WriteString(styles.Text.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  press any key to close"))

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
