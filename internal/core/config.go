// Package core provides fundamental types shared by the game engine and
// the platform layer. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// DefaultGridSize is the classic 4x4 board.
const DefaultGridSize = 4

// DefaultDelayMS is the pacing delay between playback moves.
const DefaultDelayMS = 250

// SessionConfig carries everything one play session needs at
// construction time. It replaces process-wide mode flags: multiple
// independent sessions can run in one process (SSH serving, tests).
type SessionConfig struct {
	GridSize     int    // Board dimension (default 4)
	Seed         int64  // RNG seed; 0 means seed from the clock
	RecordPath   string // Record moves to this file ("" = recording off)
	PlaybackPath string // Read moves from this file ("" = live input)
	DelayMS      int    // Pacing delay between playback moves in ms
}

// DefaultSessionConfig returns a config with the reference settings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		GridSize: DefaultGridSize,
		DelayMS:  DefaultDelayMS,
	}
}

// Batch reports whether the session runs unattended. Inferred, never
// set directly: recording and playing back at the same time is only
// useful for silent regression runs, so that combination disables
// rendering and pacing.
func (c SessionConfig) Batch() bool {
	return c.RecordPath != "" && c.PlaybackPath != ""
}
