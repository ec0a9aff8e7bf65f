package ui

import (
	"fmt"
	"strings"

	"github.com/marquee-tv/marquee/internal/library"
)

// chromeRows is the number of lines reserved for the header and footer.
const chromeRows = 4

// renderCatalog renders one row per visible video: name plus formatted size,
// with the cursor row highlighted.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	videos := m.visibleVideos()

	if len(videos) == 0 {
		if !m.snapshot.HasCatalog {
			return styles.Muted.Render("  Waiting for the library...")
		}
		if strings.TrimSpace(m.filterInput.Value()) != "" {
			return styles.Muted.Render("  No videos match the filter.")
		}
		return styles.Muted.Render("  The library is empty.")
	}

	maxRows := m.height - chromeRows
	if maxRows < 1 {
		maxRows = 1
	}

	// Keep the cursor on screen by scrolling the window, not the cursor.
	first := 0
	if m.selectedRow >= maxRows {
		first = m.selectedRow - maxRows + 1
	}
	last := first + maxRows
	if last > len(videos) {
		last = len(videos)
	}

	nameWidth := m.width - 16
	if nameWidth < 10 {
		nameWidth = 10
	}

	var b strings.Builder
	for i := first; i < last; i++ {
		v := videos[i]
		row := fmt.Sprintf("  %-*s %10s", nameWidth, truncate(v.Name, nameWidth), formatSize(v.Size))

		switch {
		case i == m.selectedRow:
			b.WriteString(styles.Selected.Width(m.width).Render(row))
		case m.session.url != "" && m.isSessionRow(v):
			b.WriteString(styles.Accent.Render(row))
		default:
			b.WriteString(styles.Text.Render(row))
		}
		if i < last-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// isSessionRow reports whether v is the entry the current session was
// selected from.
func (m Model) isSessionRow(v library.Video) bool {
	if m.client == nil {
		return v.URL == m.session.url
	}
	return m.client.ResolveURL(v.URL) == m.session.url
}
