package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/torus-life/game"
	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game.Session, *model.TerminalRenderer, *utils.Stats) {
	session := game.NewSession(config)
	reseed(session, config)
	return session, model.NewTerminalRenderer(), utils.NewStats()
}

// reseed fills the session grid with a fresh board; the generation number varies the seed between restarts
func reseed(session *game.Session, config utils.Config) {
	seed := config.Seed + int64(session.Generation())
	session.Seed(func(g *model.Grid) {
		model.SeedInterestingPatterns(g, config.RandomDensity, seed)
	})
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, session *game.Session) {
	grid := session.Grid()
	fmt.Printf("Features: Memory Pool: %v, Playing: %v, Frame: %v\n",
		config.UseMemoryPool, session.IsPlaying(), config.FrameRate)
	fmt.Printf("Grid: %dx%d torus | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState samples the current generation and returns status information
func updateGameState(
	session *game.Session,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	grid := session.Grid()
	population := grid.Population()

	density := 0.0
	if cells := grid.GetWidth() * grid.GetHeight(); cells > 0 {
		density = float64(population) / float64(cells) * 100
	}

	stats.Update(session.Generation(), population, time.Since(lastFrameTime))

	isStagnant := session.IsStagnant()

	status := "Active"
	switch {
	case population == 0:
		status = "Extinct"
	case !session.IsPlaying():
		status = "Paused"
	case isStagnant:
		status = "Stagnant"
	}

	return population, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	session *game.Session,
	population int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	generation := session.Generation()
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the board should be reseeded
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
