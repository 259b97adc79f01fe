package model

import (
	"testing"
)

func TestCountLiveNeighborsIgnoresOffGridCells(t *testing.T) {
	g := GridFromRows(
		"###",
		"###",
		"###",
	)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"center", 1, 1, 8},
		{"corner", 0, 0, 3},
		{"edge", 1, 0, 5},
		{"far corner", 2, 2, 3},
		{"left of board", -1, 1, 3},
		{"diagonal outside", -1, -1, 1},
		{"far away", 10, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CountLiveNeighbors(tt.x, tt.y); got != tt.want {
				t.Fatalf("CountLiveNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountLiveNeighborsEmptyGrid(t *testing.T) {
	g := NewGrid(0, 0)
	if got := g.CountLiveNeighbors(0, 0); got != 0 {
		t.Fatalf("0x0 grid reported %d neighbors", got)
	}
}

func TestNextCellStateRule(t *testing.T) {
	// Center cell of a 3x3 board with n of its neighbors alive
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			g := NewGrid(3, 3)
			set := 0
			for y := 0; y < 3 && set < n; y++ {
				for x := 0; x < 3 && set < n; x++ {
					if x == 1 && y == 1 {
						continue
					}
					g.SetAlive(x, y, true)
					set++
				}
			}
			g.SetAlive(1, 1, alive)

			want := n == 3 || (alive && n == 2)
			if got := g.NextCellState(1, 1); got != want {
				t.Errorf("alive=%v neighbors=%d: next=%v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestToggleTwiceRestoresCell(t *testing.T) {
	g := NewGrid(4, 3)
	if !g.Toggle(3, 2) {
		t.Fatal("in-bounds toggle must report a change")
	}
	if !g.Get(3, 2) {
		t.Fatal("cell should be alive after the first toggle")
	}
	g.Toggle(3, 2)
	if g.Get(3, 2) {
		t.Fatal("cell should be dead after the second toggle")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	for _, c := range [][2]int{{10, 10}, {-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if g.Toggle(c[0], c[1]) {
			t.Fatalf("toggle(%d,%d) reported a change on a 5x5 grid", c[0], c[1])
		}
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("out of bounds toggles must not change the grid")
	}
}

func TestNewGridSnapshotShape(t *testing.T) {
	g := NewGrid(7, 3)
	s := g.Snapshot()
	if s.Width != 7 || s.Height != 3 {
		t.Fatalf("snapshot is %dx%d, want 7x3", s.Width, s.Height)
	}
	if len(s.Cells) != 3 {
		t.Fatalf("snapshot has %d rows, want 3", len(s.Cells))
	}
	for y, row := range s.Cells {
		if len(row) != 7 {
			t.Fatalf("row %d has %d cells, want 7", y, len(row))
		}
	}
	if s.Population() != 0 {
		t.Fatal("new grid must be all dead")
	}
}

func TestNewGridClampsNegativeSize(t *testing.T) {
	g := NewGrid(-3, -1)
	if g.GetWidth() != 0 || g.GetHeight() != 0 {
		t.Fatalf("got %dx%d, want 0x0", g.GetWidth(), g.GetHeight())
	}
}

func TestSnapshotDoesNotAliasGrid(t *testing.T) {
	g := GridFromRows("#.")
	s := g.Snapshot()
	g.Toggle(0, 0)
	if !s.Alive(0, 0) {
		t.Fatal("snapshot changed when the grid was toggled")
	}
	s.Cells[0][1] = true
	if g.Get(1, 0) {
		t.Fatal("grid changed when the snapshot was written")
	}
}

func TestGridFromRowsPadsShortRows(t *testing.T) {
	g := GridFromRows("#..#", "#")
	if g.GetWidth() != 4 || g.GetHeight() != 2 {
		t.Fatalf("got %dx%d, want 4x2", g.GetWidth(), g.GetHeight())
	}
	if g.CountLivingCells() != 3 {
		t.Fatalf("got %d living cells, want 3", g.CountLivingCells())
	}
}

func TestResetChangesDimensions(t *testing.T) {
	g := GridFromRows("##", "##")
	g.Reset(3, 1)
	if !g.Equal(NewGrid(3, 1)) {
		t.Fatal("reset grid should be an empty 3x1 grid")
	}
	g.Reset(2, 2)
	if !g.Equal(NewGrid(2, 2)) {
		t.Fatal("reset grid should be an empty 2x2 grid")
	}
}
