package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/logging"
	"github.com/marquee-tv/marquee/internal/player"
	"github.com/marquee-tv/marquee/internal/prefs"
	"github.com/marquee-tv/marquee/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewLogs
)

const (
	defaultUITick = time.Second
	logTailLines  = 200
)

// sessionState tracks the single playback session's lifecycle.
type sessionState int

const (
	sessionIdle sessionState = iota
	sessionLoading
	sessionPlaying
	sessionFailed
)

// playbackSession is the one active playback target. A new selection replaces
// it entirely; there is no queue.
type playbackSession struct {
	url   string
	name  string
	state sessionState
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *library.Client
	store     *state.Store
	backend   player.Player
	logPath   string
	prefsPath string
	uiTick    time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	spin        spinner.Model

	// Data state
	snapshot       state.Snapshot
	seenGeneration uint64
	seenFailures   uint64

	// Catalog state
	selectedRow  int
	autoSelected bool
	filterInput  textinput.Model
	filtering    bool

	// Playback state
	session playbackSession

	// Notice state
	notice    string
	noticeSeq int

	// Log view state
	logLines []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	uiTick := opts.UITick
	if uiTick == 0 {
		uiTick = defaultUITick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Midnight"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	filter := textinput.New()
	filter.Placeholder = "filter videos"
	filter.Prompt = "/"
	filter.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		backend:     opts.Player,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		uiTick:      uiTick,
		theme:       GetTheme(themeName),
		currentView: ViewCatalog,
		filterInput: filter,
		spin:        sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.uiTick),
		m.spin.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		if !m.snapshot.HasCatalog {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case snapshotMsg:
		return m.applySnapshot(state.Snapshot(msg))

	case noticeExpireMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case playbackResultMsg:
		return m.applyPlaybackResult(msg)

	case logLinesMsg:
		m.logLines = []string(msg)
		return m, nil
	}

	return m, nil
}

// applySnapshot folds a fresh store snapshot into the model. The catalog list
// is updated before any auto-select is issued.
func (m Model) applySnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if snap.Failures > m.seenFailures && snap.LastError != nil {
		m.seenFailures = snap.Failures
		cmds = append(cmds, m.showNotice("Error loading catalog: "+snap.LastError.Error()))
	}

	newCatalog := snap.Generation != m.seenGeneration
	m.seenGeneration = snap.Generation
	m.snapshot = snap

	if newCatalog {
		m.clampSelection()
		// Auto-play the first entry on the first non-empty catalog since
		// startup. Later refreshes never re-trigger this, even when the
		// catalog contents change.
		if !m.autoSelected && len(snap.Catalog) > 0 {
			m.autoSelected = true
			cmds = append(cmds, m.selectVideo(snap.Catalog[0]))
		}
	}

	return m, tea.Batch(cmds...)
}

// selectVideo replaces the playback session and starts playback of v
// asynchronously.
func (m *Model) selectVideo(v library.Video) tea.Cmd {
	url := v.URL
	if m.client != nil {
		url = m.client.ResolveURL(v.URL)
	}
	m.session = playbackSession{url: url, name: v.Name, state: sessionLoading}

	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		if backend == nil {
			return playbackResultMsg{url: url}
		}
		err := backend.Start(ctx, url)
		return playbackResultMsg{url: url, err: err}
	}
}

// applyPlaybackResult handles the outcome of an async playback start. A
// result for a superseded selection may still arrive; it is allowed to raise
// a notice but never to touch the current session's state.
func (m Model) applyPlaybackResult(msg playbackResultMsg) (tea.Model, tea.Cmd) {
	current := msg.url == m.session.url && m.session.state == sessionLoading

	if msg.err != nil {
		logging.L().WithError(msg.err).WithField("url", msg.url).Warn("playback start failed")
		cmd := m.showNotice("Error playing video: " + msg.err.Error())
		if current {
			m.session.state = sessionFailed
		}
		return m, cmd
	}

	if current {
		m.session.state = sessionPlaying
	}
	return m, nil
}

// showNotice displays a transient message. The newest call owns the one
// outstanding dismissal timer; expiry messages carry the sequence they were
// scheduled for and stale ones are dropped in Update.
func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

// handleTick processes the UI refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.uiTick))

	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "l":
		m.currentView = ViewLogs
		return m, readLogsCmd(m.logPath)

	case "r":
		// Out-of-band refresh; resolves into the store like any poll cycle.
		return m, refreshNowCmd(m.ctx, m.client, m.store)

	case "x":
		return m.stopPlayback()

	case "esc":
		if m.currentView == ViewLogs {
			m.currentView = ViewCatalog
			return m, nil
		}
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.clampSelection()
		}
		return m, nil
	}

	if m.currentView == ViewCatalog {
		return m.handleCatalogKey(msg)
	}
	return m, nil
}

// handleFilterKey routes input to the filter field while it has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.clampSelection()
	return m, cmd
}

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	videos := m.visibleVideos()
	count := len(videos)
	if count == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		m.selectedRow = count - 1
	case "enter":
		return m, m.selectVideo(videos[m.selectedRow])
	}

	return m, nil
}

// stopPlayback terminates the active playback, returning the session to Idle.
func (m Model) stopPlayback() (tea.Model, tea.Cmd) {
	if m.backend != nil {
		_ = m.backend.Stop()
	}
	m.session = playbackSession{}
	return m, nil
}

// visibleVideos returns the catalog filtered by the current query, preserving
// catalog order.
func (m Model) visibleVideos() []library.Video {
	query := strings.TrimSpace(m.filterInput.Value())
	if query == "" {
		return m.snapshot.Catalog
	}
	var out []library.Video
	for _, v := range m.snapshot.Catalog {
		if fuzzy.MatchFold(query, v.Name) {
			out = append(out, v)
		}
	}
	return out
}

// clampSelection keeps the cursor inside the visible list after the catalog
// or the filter changes.
func (m *Model) clampSelection() {
	count := len(m.visibleVideos())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func refreshNowCmd(ctx context.Context, client *library.Client, store *state.Store) tea.Cmd {
	if client == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		videos, err := client.FetchCatalog(ctx)
		store.Update(videos, err)
		return snapshotMsg(store.Snapshot())
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logging.Tail(path, logTailLines)
		if err != nil {
			return logLinesMsg{"unable to read log: " + err.Error()}
		}
		return logLinesMsg(lines)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderCatalog())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
