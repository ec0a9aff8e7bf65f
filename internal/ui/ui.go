// Package ui implements the marquee terminal interface on Bubble Tea.
//
// The Bubble Tea update loop is the single writer of all interface state:
// the catalog view, the playback session, and the notice bar. Network fetches
// and playback starts run as commands off the loop and come back as messages,
// so nothing here ever blocks and no locking is needed beyond the state
// store's own.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/player"
	"github.com/marquee-tv/marquee/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *library.Client
	Store     *state.Store
	Player    player.Player
	LogPath   string
	ThemeName string
	PrefsPath string
	UITick    time.Duration // snapshot refresh cadence; zero uses default
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// noticeExpireMsg dismisses the notice it was scheduled for. Stale sequences
// are ignored so only the newest notice's timer ever takes effect.
type noticeExpireMsg struct {
	seq int
}

// playbackResultMsg reports the outcome of an asynchronous playback start.
type playbackResultMsg struct {
	url string
	err error
}

type logLinesMsg []string

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
