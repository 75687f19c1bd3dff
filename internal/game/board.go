// Package game implements the 2048 engine: the rank-based board, the
// four directional moves, tile spawning and the session state machine.
// It contains pure logic with no terminal dependencies.
package game

import "errors"

// ErrNoSpace is returned by SpawnTile when the board has no empty cell.
// Under correct sequencing the session never triggers it: game over is
// detected before a move is accepted, and an effective move always
// vacates at least one cell.
var ErrNoSpace = errors.New("game: no empty cell to spawn into")

// Board is a square grid of tile ranks. Rank 0 is an empty cell; a
// positive rank r displays as 1<<r. A 4x4 game never pushes ranks
// anywhere near the width of an int, so int is safe for both ranks and
// the 1<<rank score credit.
type Board struct {
	size  int
	cells [][]int
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) Board {
	if size < 2 {
		size = 2
	}
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return Board{size: size, cells: cells}
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// Rank returns the rank at (row, col).
func (b Board) Rank(row, col int) int {
	return b.cells[row][col]
}

// Clone returns a deep copy sharing no storage with the original.
func (b Board) Clone() Board {
	c := NewBoard(b.size)
	for r := range b.cells {
		copy(c.cells[r], b.cells[r])
	}
	return c
}

// eachCell visits every cell in row-major scan order.
func (b Board) eachCell(fn func(row, col, rank int)) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			fn(r, c, b.cells[r][c])
		}
	}
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	count := 0
	b.eachCell(func(_, _, rank int) {
		if rank == 0 {
			count++
		}
	})
	return count
}

// MaxRank returns the highest rank on the board, 0 for an empty board.
func (b Board) MaxRank() int {
	best := 0
	b.eachCell(func(_, _, rank int) {
		if rank > best {
			best = rank
		}
	})
	return best
}

// SpawnTile writes a freshly drawn rank into a random empty cell.
// The cell is chosen by drawing an index over the empty-cell count and
// walking the board in row-major order to the matching empty slot.
func (b *Board) SpawnTile(src TileSource) error {
	empty := b.EmptyCount()
	if empty == 0 {
		return ErrNoSpace
	}

	loc := src.EmptyIndex(empty)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] != 0 {
				continue
			}
			if loc == 0 {
				b.cells[r][c] = src.TileRank()
				return nil
			}
			loc--
		}
	}

	// Unreachable: loc was drawn below the empty count.
	return ErrNoSpace
}

// RotateClockwise turns the whole grid 90 degrees clockwise by value
// copy: former (row, col) lands at (col, size-1-row).
func (b *Board) RotateClockwise() {
	old := b.Clone()
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			b.cells[r][c] = old.cells[b.size-c-1][r]
		}
	}
}

// DeflateRowLeft compacts the nonzero ranks of one row to the left,
// preserving their order and zero-filling the rest. Reports whether any
// rank moved.
func (b *Board) DeflateRowLeft(row int) bool {
	compact := make([]int, b.size)
	write := 0
	for _, rank := range b.cells[row] {
		if rank != 0 {
			compact[write] = rank
			write++
		}
	}

	changed := false
	for i, rank := range compact {
		if b.cells[row][i] != rank {
			changed = true
		}
		b.cells[row][i] = rank
	}
	return changed
}

// CombineRowLeft merges horizontally adjacent equal ranks in one row,
// scanning left to right. The left cell's rank increments, the right
// cell empties, and 1<<newRank is added to *score. That credit equals
// the sum of the two merged tiles for every rank an int can hold. A
// cell merges at most once per move: the emptied right cell can never
// match its own right neighbor on the next iteration. Reports whether
// any merge happened.
func (b *Board) CombineRowLeft(row int, score *int) bool {
	merged := false
	cells := b.cells[row]
	for c := 1; c < b.size; c++ {
		if cells[c] != 0 && cells[c-1] == cells[c] {
			cells[c-1]++
			cells[c] = 0
			*score += 1 << cells[c-1]
			merged = true
		}
	}
	return merged
}
