package model

// Snapshot is a read-only copy of one generation, safe to hand to a renderer
// on another goroutine. Cells is row-major: Cells[y][x].
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]bool
}

// Alive returns the state of a cell; coordinates off the board are dead
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Cells[y][x]
}

// Population returns the number of living cells
func (s Snapshot) Population() (count int) {
	for _, row := range s.Cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}
