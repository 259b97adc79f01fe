package model

import (
	"runtime"
	"sync"

	"github.com/sheikhrachel/go-gol-board/rules"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// newNext returns an all-dead grid for the next generation, from the pool when there is one
func newNext(width, height int, pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(width, height)
	}
	return NewGrid(width, height)
}

// Step calculates the next generation one cell at a time. The input grid is never modified.
func Step(g *Grid) *Grid {
	return stepSequential(g, nil)
}

func stepSequential(g *Grid, pool *GridPool) *Grid {
	next := newNext(g.width, g.height, pool)
	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = g.NextCellState(x, y)
		}
	}
	return next
}

// StepParallel calculates the next generation using parallel processing.
// Workers read the previous grid and each writes its own band of rows.
func StepParallel(g *Grid, pool *GridPool) *Grid {
	next := newNext(g.width, g.height, pool)

	var (
		wg            sync.WaitGroup
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					next.cells[y][x] = rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.cells[y][x])
				}
			}
		}()
	}
	wg.Wait()

	return next
}

// bounds is the bounding box of the living cells
type bounds struct {
	minX, maxX, minY, maxY int
}

// activeBounds calculates the bounding box of living cells, ok is false when nothing lives
func (g *Grid) activeBounds() (b bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y}
				ok = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return b, ok
}

// StepBounded calculates the next generation only in the active region.
// Cells further than one from any living cell cannot be born, so the result matches Step.
func StepBounded(g *Grid, pool *GridPool) *Grid {
	next := newNext(g.width, g.height, pool)

	active, ok := g.activeBounds()
	// If no active cells, return empty grid
	if !ok {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, active.minX-1)
	maxX := min(g.width-1, active.maxX+1)
	minY := max(0, active.minY-1)
	maxY := min(g.height-1, active.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.cells[y][x])
		}
	}

	return next
}

// NextGeneration calculates the next generation with the strategy chosen in the config
func NextGeneration(g *Grid, config utils.Config, pool *GridPool) *Grid {
	switch config.StepMode {
	case utils.StepModeParallel:
		return StepParallel(g, pool)
	case utils.StepModeBounded:
		return StepBounded(g, pool)
	default:
		return stepSequential(g, pool)
	}
}
