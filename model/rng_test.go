package model

import "testing"

func TestRandomGridThresholdExtremes(t *testing.T) {
	rng := NewRNG(1)
	if n := NewRandomGrid(8, 6, 0, rng).CountLivingCells(); n != 0 {
		t.Fatalf("threshold 0 produced %d living cells", n)
	}
	if n := NewRandomGrid(8, 6, 1, rng).CountLivingCells(); n != 48 {
		t.Fatalf("threshold 1 produced %d living cells, want 48", n)
	}
	if n := NewRandomGrid(8, 6, 3, rng).CountLivingCells(); n != 48 {
		t.Fatalf("threshold above 1 should clamp to 1, got %d living cells", n)
	}
}

func TestRandomGridSeeded(t *testing.T) {
	a := NewRandomGrid(20, 20, 0.5, NewRNG(42))
	b := NewRandomGrid(20, 20, 0.5, NewRNG(42))
	if !a.Equal(b) {
		t.Fatal("grids from the same seed differ")
	}
	if n := a.CountLivingCells(); n == 0 || n == 400 {
		t.Fatalf("threshold 0.5 produced %d of 400 living cells", n)
	}
}
