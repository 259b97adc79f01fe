package model

import (
	"github.com/sheikhrachel/go-gol-board/rules"
)

// Grid represents one generation of the board: height rows of width cells
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
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

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	width, height = max(0, width), max(0, height)
	g.width = width
	g.height = height

	// Resize cells if needed
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

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetAlive sets a cell to alive (true) or dead (false); out of range coordinates are ignored
func (g *Grid) SetAlive(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell. Anything off the grid is dead.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Toggle flips the cell at (x, y) and reports whether anything changed.
// Out of range coordinates leave the grid untouched.
func (g *Grid) Toggle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = !g.cells[y][x]
	return true
}

// CountLiveNeighbors counts living neighbors of (x, y). The board is bounded, not toroidal:
// neighbors outside [0,width)x[0,height) count as dead.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	count := 0

	// Clamp the 3x3 window to the board once instead of checking every neighbor
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextCellState returns whether (x, y) is alive in the next generation.
// It reads only this grid, never the one being built.
func (g *Grid) NextCellState(x, y int) bool {
	return rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.Get(x, y))
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Snapshot returns a deep copy of the grid for rendering
func (g *Grid) Snapshot() Snapshot {
	cells := make([][]bool, g.height)
	for y := range cells {
		cells[y] = append(make([]bool, 0, g.width), g.cells[y]...)
	}
	return Snapshot{Width: g.width, Height: g.height, Cells: cells}
}

// GridFromRows builds a grid from rows of '.' (dead) and any other rune (alive).
// Rows shorter than the longest one are padded with dead cells.
func GridFromRows(rows ...string) *Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			g.cells[y][x] = r != '.' && r != ' '
		}
	}
	return g
}
