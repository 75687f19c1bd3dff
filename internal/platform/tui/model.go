// Package tui provides the Bubble Tea integration for term2048: the
// interactive game loop, paced playback of recorded sessions and the
// Wish SSH server.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/replay"
	"github.com/vovakirdan/term2048/internal/storage"
)

// playbackTickMsg paces playback so a human can follow the moves.
type playbackTickMsg time.Time

// RestartFunc builds a fresh session when the player restarts after a
// loss. A nil RestartFunc disables restarting, which is the case while
// recording or playing back: a restarted game would not belong to the
// log on disk.
type RestartFunc func() (*game.Session, error)

// Model is the Bubble Tea model for one play session.
type Model struct {
	session  *game.Session
	store    *storage.Store
	playback *replay.Reader
	restart  RestartFunc
	delay    time.Duration

	keys KeyMap
	help help.Model

	width  int
	height int

	status   game.Status
	err      error
	saved    bool
	quitting bool
}

// NewModel creates a model for live play. store may be nil.
func NewModel(session *game.Session, store *storage.Store) Model {
	return Model{
		session: session,
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// WithPlayback switches the model to paced playback: events come from
// the reader instead of the keyboard.
func (m Model) WithPlayback(r *replay.Reader, delayMS int) Model {
	m.playback = r
	m.delay = time.Duration(delayMS) * time.Millisecond
	return m
}

// WithRestart enables restarting after a loss.
func (m Model) WithRestart(f RestartFunc) Model {
	m.restart = f
	return m
}

// SetSize sets the viewport dimensions before the first resize message
// arrives (used by the SSH server, which knows the PTY size up front).
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Status returns the session status after the program has finished.
func (m Model) Status() game.Status {
	return m.status
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Summary returns the end-of-game line printed after the program exits.
func (m Model) Summary() string {
	g := m.session.Game()
	return fmt.Sprintf("You %s after scoring %d points in %d turns, with largest tile %d",
		m.status, g.Score, g.Turns, g.MaxTile())
}

// Init starts the playback ticker when in playback mode.
func (m Model) Init() tea.Cmd {
	if m.playback != nil {
		return m.playbackTick()
	}
	return nil
}

func (m Model) playbackTick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case playbackTickMsg:
		return m.handlePlaybackTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	// After a loss only quit and restart are meaningful.
	if m.status == game.StatusLost {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart) && m.restart != nil:
			return m.handleRestart()
		}
		return m, nil
	}

	// During playback the keyboard can only abort.
	if m.playback != nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	ev := m.keys.eventFor(msg)
	if ev == core.EventUnknown {
		return m, nil
	}
	return m.advance(ev)
}

// handlePlaybackTick feeds the next recorded event into the session.
func (m Model) handlePlaybackTick() (tea.Model, tea.Cmd) {
	if m.status != game.StatusPlaying {
		return m, nil
	}

	next, cmd := m.advance(m.playback.ReadEvent())
	model := next.(Model)
	if model.status == game.StatusPlaying && cmd == nil {
		return model, model.playbackTick()
	}
	return model, cmd
}

// handleRestart begins a new session after a loss.
func (m Model) handleRestart() (tea.Model, tea.Cmd) {
	session, err := m.restart()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.session = session
	m.status = game.StatusPlaying
	m.saved = false
	return m, nil
}

// advance runs one turn-loop iteration with the given event.
func (m Model) advance(ev core.Event) (tea.Model, tea.Cmd) {
	status, err := m.session.Step(ev)
	if err != nil {
		m.err = err
		m.status = status
		m.quitting = true
		return m, tea.Quit
	}
	m.status = status

	// The session only reports a locked board on its next iteration;
	// probe now so the overlay appears without waiting for a key.
	if m.status == game.StatusPlaying && m.session.Game().IsTerminal() {
		m.status, _ = m.session.Step(core.EventUnknown)
	}

	switch m.status {
	case game.StatusLost:
		m.saveResult()
		return m, nil
	case game.StatusQuit:
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

// saveResult persists the finished game once. Best effort: a storage
// failure never interrupts the player.
func (m *Model) saveResult() {
	if m.store == nil || m.saved {
		return
	}
	g := m.session.Game()
	if g.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session result is still shown
	m.store.SaveResult(storage.Result{
		Score:   g.Score,
		Turns:   g.Turns,
		MaxTile: g.MaxTile(),
		Outcome: m.status.String(),
	})
	m.saved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("error: %v\n\npress any key to exit\n", m.err)
	}

	g := m.session.Game()

	sections := []string{
		renderHUD(g),
		renderBoard(g),
	}

	switch {
	case m.status == game.StatusLost:
		lines := fmt.Sprintf("GAME OVER\n\nScore %d in %d turns\nLargest tile %d", g.Score, g.Turns, g.MaxTile())
		if m.restart != nil {
			lines += "\n\nr restart · q quit"
		} else {
			lines += "\n\nq quit"
		}
		sections = append(sections, overlayStyle.Render(lines))
	case m.playback != nil:
		sections = append(sections, hintStyle.Render("playback · q abort"))
	default:
		sections = append(sections, m.help.View(m.keys))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run drives a model to completion and returns its final state.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
