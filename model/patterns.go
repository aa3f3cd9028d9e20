package model

import "math/rand"

var gliderPattern = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// placePattern stamps rows of cells with their top-left corner at origin,
// wrapping around the grid edges
func placePattern(g *Grid, origin Location, pattern [][]bool) {
	if g.width == 0 || g.height == 0 {
		return
	}
	for y, row := range pattern {
		for x, cell := range row {
			g.cells[wrap(origin.Y, y, g.height)][wrap(origin.X, x, g.width)] = cell
		}
	}
}

// AddGlider adds a south-east travelling glider at origin
func AddGlider(g *Grid, origin Location) {
	placePattern(g, origin, gliderPattern)
}

// AddBlinker adds a horizontal period-2 blinker at origin
func AddBlinker(g *Grid, origin Location) {
	placePattern(g, origin, [][]bool{{true, true, true}})
}

// Randomize sets every cell alive with probability density, using a seeded source
// so the same seed always produces the same board
func Randomize(g *Grid, density float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for _, loc := range g.Locations() {
		g.SetState(loc, rng.Float64() < density)
	}
}

// SeedInterestingPatterns randomizes the board and drops a few known patterns on top
func SeedInterestingPatterns(g *Grid, density float64, seed int64) {
	Randomize(g, density, seed)

	if g.width >= 10 && g.height >= 10 {
		AddGlider(g, Location{X: 5, Y: 5})
		if g.width >= 20 && g.height >= 15 {
			AddGlider(g, Location{X: g.width - 8, Y: 5})
		}

		AddBlinker(g, Location{X: g.width / 4, Y: g.height / 4})
		if g.width >= 30 {
			AddBlinker(g, Location{X: 3 * g.width / 4, Y: 3 * g.height / 4})
		}
	}
}
