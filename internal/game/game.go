package game

import "github.com/vovakirdan/term2048/internal/core"

// Direction is one of the four moves.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// directionFor maps a direction event to a Direction. The second return
// is false for non-direction events.
func directionFor(ev core.Event) (Direction, bool) {
	switch ev {
	case core.EventLeft:
		return DirLeft, true
	case core.EventRight:
		return DirRight, true
	case core.EventUp:
		return DirUp, true
	case core.EventDown:
		return DirDown, true
	default:
		return DirLeft, false
	}
}

// Game is one live play state: the board, the score accumulator and the
// count of effective moves. It has exactly one owner, the session.
type Game struct {
	Board Board
	Score int
	Turns int
}

// NewGame creates an empty game on a size x size board.
func NewGame(size int) *Game {
	return &Game{Board: NewBoard(size)}
}

// Clone returns a deep copy used for disposable simulations. The clone
// never aliases the live state.
func (g *Game) Clone() *Game {
	return &Game{Board: g.Board.Clone(), Score: g.Score, Turns: g.Turns}
}

// MoveLeft shifts every row left: deflate, combine, then deflate again
// to close the gaps merges leave behind. The turns counter advances
// once iff any row changed. Reports whether the move was effective.
func (g *Game) MoveLeft() bool {
	changed := false
	for row := 0; row < g.Board.Size(); row++ {
		changed = g.Board.DeflateRowLeft(row) || changed
		changed = g.Board.CombineRowLeft(row, &g.Score) || changed
		changed = g.Board.DeflateRowLeft(row) || changed
	}
	if changed {
		g.Turns++
	}
	return changed
}

// The other three moves are rotations around MoveLeft, so all four
// directions share one merge implementation and cannot drift apart in
// tie-break or scoring behavior.

// MoveRight shifts every row right.
func (g *Game) MoveRight() bool {
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	changed := g.MoveLeft()
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	return changed
}

// MoveUp shifts every column up.
func (g *Game) MoveUp() bool {
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	changed := g.MoveLeft()
	g.Board.RotateClockwise()
	return changed
}

// MoveDown shifts every column down.
func (g *Game) MoveDown() bool {
	g.Board.RotateClockwise()
	changed := g.MoveLeft()
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	g.Board.RotateClockwise()
	return changed
}

// Move applies the given direction. Reports whether the board changed.
func (g *Game) Move(dir Direction) bool {
	switch dir {
	case DirLeft:
		return g.MoveLeft()
	case DirRight:
		return g.MoveRight()
	case DirUp:
		return g.MoveUp()
	case DirDown:
		return g.MoveDown()
	default:
		return false
	}
}

// Spawn places a new tile in a random empty cell.
func (g *Game) Spawn(src TileSource) error {
	return g.Board.SpawnTile(src)
}

// IsTerminal reports whether no move can change the board. It simulates
// all four moves on a throwaway clone and checks the turns counter;
// reusing the real move engine avoids a separate adjacency scan that
// could diverge from actual move behavior.
func (g *Game) IsTerminal() bool {
	probe := g.Clone()
	before := probe.Turns
	probe.MoveLeft()
	probe.MoveUp()
	probe.MoveDown()
	probe.MoveRight()
	return probe.Turns == before
}

// MaxTile returns the displayed value of the largest tile, or 0 for an
// empty board.
func (g *Game) MaxTile() int {
	rank := g.Board.MaxRank()
	if rank == 0 {
		return 0
	}
	return 1 << rank
}
