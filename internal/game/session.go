package game

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/core"
)

// Status is the session state machine: Playing until the board locks
// up (Lost) or the player quits (Quit).
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusQuit
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// EventSource supplies the next input event, blocking until one is
// available. An exhausted playback source yields EventQuit.
type EventSource interface {
	ReadEvent() core.Event
}

// RecordSink receives one (key, score-after-move) record per effective
// move. It is write-only; a recording is never read back within the
// session that produced it.
type RecordSink interface {
	Append(key byte, score int) error
}

// Session drives the turn loop: check for game over, take an event,
// apply the move, spawn a tile after an effective move, record it. The
// session owns the game state exclusively; nothing else mutates it.
type Session struct {
	game   *Game
	tiles  TileSource
	sink   RecordSink // nil when recording is off
	status Status
}

// NewSession creates a session with the board seeded by exactly two
// spawned tiles. sink may be nil.
func NewSession(size int, tiles TileSource, sink RecordSink) (*Session, error) {
	g := NewGame(size)
	for i := 0; i < 2; i++ {
		if err := g.Spawn(tiles); err != nil {
			return nil, fmt.Errorf("game: seeding initial tiles: %w", err)
		}
	}
	return &Session{game: g, tiles: tiles, sink: sink}, nil
}

// Game exposes the live state for rendering. Callers must not mutate it.
func (s *Session) Game() *Game {
	return s.game
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// Step runs one iteration of the turn loop with the given event.
// The terminal check runs before the event is considered, so a locked
// board transitions to Lost no matter what was pressed. Unrecognized
// events are not errors; the loop simply continues.
//
// A spawn failure after an effective move is impossible when the engine
// is correct: the terminal check guarantees a move was available, and
// an effective move always leaves at least one empty cell behind. It is
// therefore surfaced as a fatal error rather than masked, since
// swallowing it would desynchronize the board from any recording.
func (s *Session) Step(ev core.Event) (Status, error) {
	if s.status != StatusPlaying {
		return s.status, nil
	}

	if s.game.IsTerminal() {
		s.status = StatusLost
		return s.status, nil
	}

	if ev == core.EventQuit {
		s.status = StatusQuit
		return s.status, nil
	}

	dir, ok := directionFor(ev)
	if !ok {
		return s.status, nil
	}

	if !s.game.Move(dir) {
		return s.status, nil
	}

	if err := s.game.Spawn(s.tiles); err != nil {
		return s.status, fmt.Errorf("game: spawn after effective move: engine invariant violated: %w", err)
	}

	if s.sink != nil {
		if err := s.sink.Append(ev.Key(), s.game.Score); err != nil {
			return s.status, fmt.Errorf("game: recording move: %w", err)
		}
	}

	return s.status, nil
}

// Run consumes events until the session leaves the Playing state.
// Used for unattended playback; the interactive platform calls Step
// directly instead.
func (s *Session) Run(events EventSource) (Status, error) {
	for s.status == StatusPlaying {
		if s.game.IsTerminal() {
			s.status = StatusLost
			break
		}
		if _, err := s.Step(events.ReadEvent()); err != nil {
			return s.status, err
		}
	}
	return s.status, nil
}
