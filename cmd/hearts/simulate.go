package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/simulator"
)

// SimulateCmd runs strategy-vs-strategy games and reports per-seat
// statistics.
type SimulateCmd struct {
	Games   int           `kong:"default='1000',help='Number of games to play'"`
	Players []string      `kong:"default='standard,advanced,counting,combiner',help='Strategy kind per seat'"`
	Seed    int64         `kong:"default='1',help='Base RNG seed; game i uses seed+i'"`
	Workers int           `kong:"default='0',help='Concurrent games (0 = number of CPUs)'"`
	Timeout time.Duration `kong:"default='30s',help='Per-game timeout'"`
	Debug   bool          `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	if len(c.Players) != game.NumPlayers {
		return fmt.Errorf("need %d players, got %d", game.NumPlayers, len(c.Players))
	}
	var lineup [game.NumPlayers]string
	copy(lineup[:], c.Players)

	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "games", c.Games, "lineup", c.Players, "workers", workers)
	started := time.Now()

	sim := simulator.New(simulator.Config{
		Games:   c.Games,
		Lineup:  lineup,
		Seed:    c.Seed,
		Workers: workers,
		Timeout: c.Timeout,
		Logger:  logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(started)
	fmt.Printf("\n%d games, %d hands (%.1f hands/game) in %s\n\n",
		stats.Games, stats.Hands, stats.MeanHands(), elapsed.Round(time.Millisecond))

	fmt.Printf("%-10s %8s %7s %8s %8s %8s %8s %6s\n",
		"seat", "wins", "win%", "mean", "median", "stddev", "p90", "moons")
	for seat := range stats.Seats {
		s := &stats.Seats[seat]
		fmt.Printf("%-10s %8d %6.1f%% %8.2f %8.1f %8.2f %8.1f %6d\n",
			lineup[seat], s.Wins, s.WinRate()*100,
			s.Mean(), s.Median(), s.StdDev(), s.Percentile(0.9), s.Moons)
	}
	return nil
}
