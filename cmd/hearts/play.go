package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/randutil"
	"github.com/cardtable/hearts/internal/strategy"
	"github.com/cardtable/hearts/internal/tui"
)

// PlayCmd runs an interactive game in the terminal.
type PlayCmd struct {
	Opponents []string `kong:"default='counting,counting,counting',help='Strategies for the three computer seats'"`
	Seed      *int64   `kong:"help='Deterministic deal seed (optional)'"`
	LogFile   string   `kong:"help='Write debug logs to a file (the TUI owns the terminal)'"`
}

func (c *PlayCmd) Run() error {
	// The alternate screen belongs to the TUI; logs go to a file or
	// nowhere.
	logWriter := io.Writer(io.Discard)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logWriter = f
	}
	logger := log.NewWithOptions(logWriter, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})

	if len(c.Opponents) != game.NumPlayers-1 {
		return fmt.Errorf("need %d opponents, got %d", game.NumPlayers-1, len(c.Opponents))
	}

	var players [game.NumPlayers]game.Player
	players[game.HumanSeat] = strategy.NewHuman()
	for i, kind := range c.Opponents {
		seat := i + 1
		player, err := strategy.New(kind, seat, logger)
		if err != nil {
			return err
		}
		if player.Kind() == strategy.KindHuman {
			return fmt.Errorf("opponent seats cannot be human")
		}
		players[seat] = player
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("starting game", "seed", seed, "opponents", c.Opponents)

	g := game.New(randutil.New(seed), players, logger)
	return tui.Run(g, logger)
}
