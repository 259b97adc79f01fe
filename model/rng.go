package model

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a PCG-backed generator. A zero seed picks one from the wall clock,
// any other seed gives a reproducible sequence.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewRandomGrid fills a new width x height grid where every cell is independently
// alive with probability threshold. The threshold is clamped to [0,1].
func NewRandomGrid(width, height int, threshold float64, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	g.Randomize(threshold, rng)
	return g
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(threshold float64, rng *rand.Rand) {
	threshold = min(1, max(0, threshold))
	for y := range g.height {
		for x := range g.width {
			// Float64 is in [0,1) so a threshold of 1 is always alive and 0 never
			g.cells[y][x] = rng.Float64() < threshold
		}
	}
}
