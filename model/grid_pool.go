package model

import "sync"

// GridToPool hands a replaced generation back for reuse; a nil pool or grid is ignored
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles replaced generations so stepping does not allocate a board per tick.
// A grid must not be referenced after it is put back; snapshots are copies and stay valid.
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns an empty pool; grids are allocated on first use
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any { return new(Grid) },
		},
	}
}

// Get hands out an all-dead board of the requested size for the next generation
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put takes back a generation the controller replaced, wiping its cells
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
