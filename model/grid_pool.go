package model

import "sync"

// GridToPool hands a grid that is no longer referenced back to the pool.
// A nil pool is a no-op so callers can run with pooling disabled.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between ticks
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns a fully dead grid of the requested dimensions
func (p *GridPool) Get(width, height int) *Grid {
	if width < 0 || height < 0 {
		// Let NewGrid report the bad dimensions
		return NewGrid(width, height)
	}
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put stores g for reuse. The caller must not touch g afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
