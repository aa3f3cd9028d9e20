package rules

// ApplyConwayRules returns a cell's next state from its current state and live neighbor count (B3/S23).
//
//   - a live cell with 2 or 3 live neighbors survives
//   - a dead cell with exactly 3 live neighbors is born
//   - every other cell is dead in the next generation
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
