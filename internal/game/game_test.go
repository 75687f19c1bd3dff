package game

import "testing"

func gameFromRanks(rows [][]int) *Game {
	return &Game{Board: boardFromRanks(rows)}
}

func TestMoveLeft(t *testing.T) {
	tests := []struct {
		name     string
		row      []int
		expected []int
		score    int
		changed  bool
	}{
		{
			name:     "two pairs merge and close up",
			row:      []int{1, 1, 2, 2},
			expected: []int{2, 3, 0, 0},
			score:    12,
			changed:  true,
		},
		{
			name:     "gap merge consumes one pair",
			row:      []int{1, 0, 1, 1},
			expected: []int{2, 1, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "already settled row is a no-op",
			row:      []int{2, 1, 0, 0},
			expected: []int{2, 1, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "full row without pairs is a no-op",
			row:      []int{1, 2, 3, 4},
			expected: []int{1, 2, 3, 4},
			score:    0,
			changed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromRanks([][]int{tt.row, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
			changed := g.MoveLeft()
			if changed != tt.changed {
				t.Errorf("MoveLeft() changed = %v, want %v", changed, tt.changed)
			}
			if g.Score != tt.score {
				t.Errorf("MoveLeft() score = %d, want %d", g.Score, tt.score)
			}
			for c, want := range tt.expected {
				if g.Board.Rank(0, c) != want {
					t.Errorf("MoveLeft() row = %v, want %v", g.Board.cells[0], tt.expected)
					break
				}
			}
			wantTurns := 0
			if tt.changed {
				wantTurns = 1
			}
			if g.Turns != wantTurns {
				t.Errorf("MoveLeft() turns = %d, want %d", g.Turns, wantTurns)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	start := [][]int{
		{1, 0, 0, 1},
		{0, 2, 2, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 1},
	}

	tests := []struct {
		name     string
		dir      Direction
		expected [][]int
	}{
		{
			name: "left",
			dir:  DirLeft,
			expected: [][]int{
				{2, 0, 0, 0},
				{3, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			expected: [][]int{
				{0, 0, 0, 2},
				{0, 0, 0, 3},
				{0, 0, 0, 0},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			expected: [][]int{
				{2, 2, 2, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 2, 2, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromRanks(start)
			if !g.Move(tt.dir) {
				t.Fatalf("Move(%v) reported no change", tt.dir)
			}
			if !equalRanks(ranksOf(g.Board), tt.expected) {
				t.Errorf("Move(%v): got %v, want %v", tt.dir, g.Board.cells, tt.expected)
			}
			if g.Turns != 1 {
				t.Errorf("Move(%v) turns = %d, want 1", tt.dir, g.Turns)
			}
		})
	}
}

// Moving right must equal rotating twice, moving left and rotating
// back, score and turns included. That identity is what guarantees all
// four directions share one merge implementation.
func TestMoveRightEqualsRotatedMoveLeft(t *testing.T) {
	start := [][]int{
		{1, 1, 2, 0},
		{0, 3, 3, 1},
		{2, 0, 2, 2},
		{4, 4, 0, 4},
	}

	viaMove := gameFromRanks(start)
	viaMove.MoveRight()

	viaRotation := gameFromRanks(start)
	viaRotation.Board.RotateClockwise()
	viaRotation.Board.RotateClockwise()
	viaRotation.MoveLeft()
	viaRotation.Board.RotateClockwise()
	viaRotation.Board.RotateClockwise()

	if !equalRanks(ranksOf(viaMove.Board), ranksOf(viaRotation.Board)) {
		t.Errorf("boards diverged:\n%v\nvs\n%v", viaMove.Board.cells, viaRotation.Board.cells)
	}
	if viaMove.Score != viaRotation.Score {
		t.Errorf("scores diverged: %d vs %d", viaMove.Score, viaRotation.Score)
	}
	if viaMove.Turns != viaRotation.Turns {
		t.Errorf("turns diverged: %d vs %d", viaMove.Turns, viaRotation.Turns)
	}
}

// Any move preserves the total displayed value on the board: merges
// only relocate and sum tile values.
func TestMoveConservesTileSum(t *testing.T) {
	sum := func(b Board) int {
		total := 0
		b.eachCell(func(_, _, rank int) {
			if rank > 0 {
				total += 1 << rank
			}
		})
		return total
	}

	start := [][]int{
		{1, 1, 2, 2},
		{3, 0, 3, 1},
		{0, 2, 2, 0},
		{1, 0, 0, 1},
	}

	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		g := gameFromRanks(start)
		before := sum(g.Board)
		scoreBefore := g.Score
		g.Move(dir)
		if after := sum(g.Board); after != before {
			t.Errorf("Move(%v) changed the tile sum: %d -> %d", dir, before, after)
		}
		// The score delta equals the total value of merged pairs, which
		// never exceeds the board sum.
		if delta := g.Score - scoreBefore; delta < 0 || delta > before {
			t.Errorf("Move(%v) produced an implausible score delta %d", dir, delta)
		}
	}
}

func TestEffectiveMoveGating(t *testing.T) {
	g := gameFromRanks([][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if g.MoveLeft() {
		t.Error("MoveLeft() on a settled board reported a change")
	}
	if g.Turns != 0 {
		t.Errorf("ineffective move advanced turns to %d", g.Turns)
	}

	if !g.MoveRight() {
		t.Error("MoveRight() should have moved the tile")
	}
	if g.Turns != 1 {
		t.Errorf("effective move advanced turns to %d, want 1", g.Turns)
	}

	// Multiple rows changing still counts as a single turn.
	g2 := gameFromRanks([][]int{
		{0, 1, 0, 0},
		{0, 2, 0, 0},
		{0, 3, 0, 0},
		{0, 4, 0, 0},
	})
	g2.MoveLeft()
	if g2.Turns != 1 {
		t.Errorf("move touching four rows advanced turns to %d, want 1", g2.Turns)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    [][]int
		terminal bool
	}{
		{
			name: "checkerboard with no pairs",
			board: [][]int{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			terminal: true,
		},
		{
			name: "full board with a horizontal pair",
			board: [][]int{
				{1, 1, 2, 3},
				{4, 5, 6, 7},
				{1, 2, 3, 4},
				{5, 6, 7, 8},
			},
			terminal: false,
		},
		{
			name: "full board with a vertical pair",
			board: [][]int{
				{1, 2, 3, 4},
				{5, 6, 7, 4},
				{1, 2, 3, 8},
				{5, 6, 7, 1},
			},
			terminal: false,
		},
		{
			name: "board with an empty cell",
			board: [][]int{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 0, 2},
				{2, 1, 2, 1},
			},
			terminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromRanks(tt.board)
			if got := g.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

// The terminal check must never mutate the live state, and a true
// result must mean no direction can advance the turns counter.
func TestIsTerminalSoundness(t *testing.T) {
	g := gameFromRanks([][]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	})
	before := ranksOf(g.Board)

	if !g.IsTerminal() {
		t.Fatal("expected terminal board")
	}
	if !equalRanks(ranksOf(g.Board), before) {
		t.Error("IsTerminal() mutated the live board")
	}
	if g.Turns != 0 || g.Score != 0 {
		t.Errorf("IsTerminal() touched counters: turns=%d score=%d", g.Turns, g.Score)
	}

	for _, dir := range []Direction{DirLeft, DirUp, DirDown, DirRight} {
		probe := g.Clone()
		probe.Move(dir)
		if probe.Turns != g.Turns {
			t.Errorf("terminal board advanced turns on %v", dir)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := gameFromRanks([][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	clone := g.Clone()
	clone.Board.cells[0][0] = 9
	clone.Score = 100
	clone.Turns = 5

	if g.Board.Rank(0, 0) != 1 {
		t.Error("mutating the clone's board leaked into the original")
	}
	if g.Score != 0 || g.Turns != 0 {
		t.Error("mutating the clone's counters leaked into the original")
	}
}

func TestMaxTile(t *testing.T) {
	g := NewGame(4)
	if g.MaxTile() != 0 {
		t.Errorf("MaxTile() on empty board = %d, want 0", g.MaxTile())
	}

	g.Board.cells[2][1] = 5
	g.Board.cells[0][3] = 3
	if g.MaxTile() != 32 {
		t.Errorf("MaxTile() = %d, want 32", g.MaxTile())
	}
}
