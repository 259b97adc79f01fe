package view

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-gol-board/model"
)

func TestFillCellsRGBA(t *testing.T) {
	s := model.GridFromRows("#.", ".#").Snapshot()
	buf := make([]byte, 2*2*4)
	fillCellsRGBA(buf, s, color.White, color.Black)

	want := []byte{
		0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0xff,
		0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestCellAt(t *testing.T) {
	s := model.NewGrid(4, 3).Snapshot()
	tests := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{25, 11, 2, 1, true},
		{39, 29, 3, 2, true},
		{40, 0, 0, 0, false},
		{0, 30, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := cellAt(tt.px, tt.py, 10, s)
		if ok != tt.ok || x != tt.x || y != tt.y {
			t.Errorf("cellAt(%d,%d) = %d,%d,%v; want %d,%d,%v", tt.px, tt.py, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}
