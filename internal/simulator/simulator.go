// Package simulator plays full Hearts games between computer
// strategies and collects the outcomes. It is the engine behind the
// `hearts simulate` command and the strategy evaluation workflow.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/randutil"
	"github.com/cardtable/hearts/internal/statistics"
	"github.com/cardtable/hearts/internal/strategy"
)

// maxHandsPerGame bounds a single game. A game to 100 points ends well
// inside this; hitting the bound means an engine bug, not a long game.
const maxHandsPerGame = 1000

// moonHandTotal is the points a hand's ledger entry sums to when a
// player shot the moon: three seats at 26 each.
const moonHandTotal = 78

// Config holds the parameters of a simulation run.
type Config struct {
	Games   int
	Lineup  [game.NumPlayers]string // strategy kind per seat
	Seed    int64
	Workers int // concurrent games; 0 means serial
	Timeout time.Duration
	Logger  *log.Logger
}

// Simulator runs batches of computer-only games.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns the aggregated
// statistics. Each game gets its own seed derived from the base seed,
// so any single game can be replayed in isolation.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	stats := statistics.New()
	results := make([]statistics.GameResult, s.config.Games)

	grp, ctx := errgroup.WithContext(ctx)
	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	grp.SetLimit(workers)

	for i := 0; i < s.config.Games; i++ {
		grp.Go(func() error {
			seed := s.config.Seed + int64(i)
			result, err := s.playGameWithTimeout(ctx, seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGameWithTimeout guards a single game against hangs. A strategy
// stuck in a loop would otherwise stall the whole run.
func (s *Simulator) playGameWithTimeout(ctx context.Context, seed int64) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resultCh := make(chan statistics.GameResult, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := s.playGame(seed)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		return result, nil
	case err := <-errCh:
		return statistics.GameResult{}, err
	case <-ctx.Done():
		return statistics.GameResult{}, ctx.Err()
	}
}

// playGame plays one full game to the 100-point threshold.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	players, err := s.newLineup()
	if err != nil {
		return statistics.GameResult{}, err
	}
	g := game.New(randutil.New(seed), players, s.config.Logger)

	for g.State() != game.GameEnd {
		if g.HandNumber() >= maxHandsPerGame {
			return statistics.GameResult{}, fmt.Errorf("game exceeded %d hands", maxHandsPerGame)
		}
		if err := g.StartNewHand(); err != nil {
			return statistics.GameResult{}, err
		}
		for {
			next, err := g.PlayRound()
			if err != nil {
				return statistics.GameResult{}, err
			}
			if next < 0 {
				break
			}
		}
	}

	result := statistics.GameResult{
		Seed:   seed,
		Hands:  g.HandNumber(),
		Totals: g.Totals(),
	}
	// A hand whose points sum to three moons' worth can only be a moon
	// shot; the shooter is the seat that came out clean.
	for _, hand := range g.Scores() {
		sum := 0
		for _, pts := range hand {
			sum += pts
		}
		if sum == moonHandTotal {
			for seat, pts := range hand {
				if pts == 0 {
					result.Moons[seat]++
				}
			}
		}
	}
	return result, nil
}

// newLineup builds fresh strategy instances for every seat.
func (s *Simulator) newLineup() ([game.NumPlayers]game.Player, error) {
	var players [game.NumPlayers]game.Player
	for seat, kind := range s.config.Lineup {
		if kind == strategy.KindHuman {
			return players, fmt.Errorf("seat %d: the simulator needs computer strategies", seat)
		}
		p, err := strategy.New(kind, seat, s.config.Logger)
		if err != nil {
			return players, err
		}
		players[seat] = p
	}
	return players, nil
}
