package rules

// ApplyConwayRules decides whether a board cell is alive next generation from its current state
// and live-neighbor count: survival on 2 or 3, birth on exactly 3, dead otherwise.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
