package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/torus-life/game"
	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	session, renderer, stats := initializeGame(config)
	displayGameInfo(config, session)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, session, renderer, stats); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

// run drives the session once per frame until ctx is cancelled or the generation limit is hit
func run(
	ctx context.Context,
	config utils.Config,
	session *game.Session,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		frameStart := time.Now()
		if err := renderer.Clear(os.Stdout); err != nil {
			return err
		}

		population, density, status, isStagnant := updateGameState(session, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(session, population, density, status, stats, lastRestartGen)
		if err := renderer.Render(os.Stdout, session.Grid()); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && session.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := checkRestartConditions(population, stagnantCount, config); shouldRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			reseed(session, config)
			lastRestartGen = session.Generation()
			stagnantCount = 0
		}

		session.Tick()

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				session.Generation(), stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return nil
		case <-ticker.C:
		}
	}
}
