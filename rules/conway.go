package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}

// Survives reports whether a live cell with the given neighbor count stays alive
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// Born reports whether a dead cell with the given neighbor count comes alive
func Born(neighbors int) bool {
	return neighbors == 3
}
