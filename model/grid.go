package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/rules"
)

var (
	// ErrOutOfBounds is returned (or carried by a panic) when a location is not contained in a grid
	ErrOutOfBounds = errors.New("location out of bounds")
	// ErrInvalidDimensions is raised when a grid is requested with a negative width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// neighborOffsets is the 3x3 block around a cell, rows outermost
var neighborOffsets = [...]int{-1, 0, 1}

// Grid is a toroidal board of alive/dead cells stored as height rows of width columns.
//
// Update and Resize never touch the receiver; SetState is the only mutation.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a fully dead grid with the specified dimensions.
// A zero width or height yields an empty grid with no locations.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height))
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// reset reshapes a pooled grid and kills every cell
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell in place
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Contains reports whether loc lies within [0, width) x [0, height)
func (g *Grid) Contains(loc Location) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

// Lookup returns the state at loc, or an error wrapping ErrOutOfBounds
func (g *Grid) Lookup(loc Location) (bool, error) {
	if !g.Contains(loc) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Lookup] %v in %dx%d grid", loc, g.width, g.height)
	}
	return g.cells[loc.Y][loc.X], nil
}

// TrySetState stores alive at loc, or returns an error wrapping ErrOutOfBounds
func (g *Grid) TrySetState(loc Location, alive bool) error {
	if !g.Contains(loc) {
		return errors.Wrapf(ErrOutOfBounds, "[TrySetState] %v in %dx%d grid", loc, g.width, g.height)
	}
	g.cells[loc.Y][loc.X] = alive
	return nil
}

// IsAlive returns the state at loc. It panics if loc is not contained in the grid.
func (g *Grid) IsAlive(loc Location) bool {
	alive, err := g.Lookup(loc)
	if err != nil {
		panic(err)
	}
	return alive
}

// SetState stores alive at loc. It panics if loc is not contained in the grid.
func (g *Grid) SetState(loc Location, alive bool) {
	if err := g.TrySetState(loc, alive); err != nil {
		panic(err)
	}
}

// Locations lists every cell in row-major order: y ascending, then x ascending
func (g *Grid) Locations() []Location {
	locs := make([]Location, 0, g.width*g.height)
	for y := range g.height {
		for x := range g.width {
			locs = append(locs, Location{X: x, Y: y})
		}
	}
	return locs
}

// wrap maps an offset coordinate back onto the torus
func wrap(c, offset, dim int) int {
	return ((c+offset)%dim + dim) % dim
}

// AdjacentCells returns the 3x3 block around center, center included, with
// coordinates wrapped around the grid edges. Rows (y offset -1, 0, +1) are
// enumerated outermost, columns innermost.
func (g *Grid) AdjacentCells(center Location) []Location {
	if g.width == 0 || g.height == 0 {
		return nil
	}
	adjacent := make([]Location, 0, len(neighborOffsets)*len(neighborOffsets))
	for _, dy := range neighborOffsets {
		y := wrap(center.Y, dy, g.height)
		for _, dx := range neighborOffsets {
			adjacent = append(adjacent, Location{X: wrap(center.X, dx, g.width), Y: y})
		}
	}
	return adjacent
}

// CountAdjacentLive counts the live cells among the 8 positions surrounding center.
// On grids narrower than 3 cells several positions wrap onto the same cell and each
// position is counted separately.
func (g *Grid) CountAdjacentLive(center Location) int {
	if g.width == 0 || g.height == 0 {
		return 0
	}
	count := 0
	for _, dy := range neighborOffsets {
		y := wrap(center.Y, dy, g.height)
		for _, dx := range neighborOffsets {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[y][wrap(center.X, dx, g.width)] {
				count++
			}
		}
	}
	return count
}

// Update returns the next generation as a new grid
func (g *Grid) Update() *Grid {
	return g.NextGeneration(nil)
}

// NextGeneration calculates the next generation, splitting rows across workers.
// The destination is taken from pool when one is given.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}
	if g.width == 0 || g.height == 0 {
		return next
	}

	var (
		eg            errgroup.Group
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

		// Workers only read g and only write their own rows of next
		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					loc := Location{X: x, Y: y}
					next.cells[y][x] = rules.ApplyConwayRules(g.CountAdjacentLive(loc), g.cells[y][x])
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[NextGeneration] worker failed"))
	}

	return next
}

// Resize returns a grid of the new dimensions holding the states of every
// location present in both grids; cells outside the overlap start dead.
func (g *Grid) Resize(width, height int) *Grid {
	resized := NewGrid(width, height)
	overlapW := min(width, g.width)
	for y := range min(height, g.height) {
		copy(resized.cells[y][:overlapW], g.cells[y][:overlapW])
	}
	return resized
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return g.Resize(g.width, g.height)
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 digest of the dimensions and cell states
func (g *Grid) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
