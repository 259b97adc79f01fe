package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		liveWant := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != liveWant {
			t.Errorf("live cell with %d neighbors: got %v, want %v", neighbors, got, liveWant)
		}
		deadWant := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != deadWant {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", neighbors, got, deadWant)
		}
	}
}
