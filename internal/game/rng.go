package game

import "math/rand"

// TileSource supplies the two random draws tile spawning needs.
// Tests substitute fixed sources to pin spawn positions and values.
type TileSource interface {
	// EmptyIndex returns a uniformly distributed integer in [0, n).
	EmptyIndex(n int) int
	// TileRank returns 1 with probability 9/10 and 2 with probability 1/10.
	TileRank() int
}

// Source is the seeded TileSource used for real play. For a fixed seed
// and a fixed sequence of calls the outputs are identical across runs,
// which is what makes recorded sessions replayable.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a deterministic source from the given seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// EmptyIndex returns a uniform draw in [0, n).
func (s *Source) EmptyIndex(n int) int {
	return s.rng.Intn(n)
}

// TileRank returns the rank of a freshly spawned tile: rank 1 (a "2")
// nine times out of ten, rank 2 (a "4") otherwise.
func (s *Source) TileRank() int {
	if s.rng.Intn(10) == 0 {
		return 2
	}
	return 1
}
