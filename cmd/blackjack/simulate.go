package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/analytics"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// SimulateCmd runs unattended bot games and reports aggregate statistics
type SimulateCmd struct {
	Games    int     `kong:"default='1000',help='Number of games to simulate'"`
	Turns    int     `kong:"default='100',help='Maximum turns per game'"`
	Decks    int     `kong:"default='6',help='Decks in the shoe'"`
	Bankroll float64 `kong:"default='500',help='Starting bankroll per game'"`
	Wager    float64 `kong:"default='10',help='Wager per turn'"`
	Strategy string  `kong:"default='strategy',help='Bot strategy: strategy or mimic'"`
	Seed     *int64  `kong:"help='Base RNG seed; game i plays with seed+i'"`
	Workers  int     `kong:"default='0',help='Concurrent games (0 for GOMAXPROCS)'"`
	Output   string  `kong:"help='Also write the report to this file'"`
	Debug    bool    `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	baseSeed := resolveSeed(c.Seed, 0)
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Info("starting simulation",
		"games", c.Games,
		"turns", c.Turns,
		"strategy", c.Strategy,
		"seed", baseSeed,
		"workers", workers)

	var mu sync.Mutex
	analyzer := &analytics.Analyzer{}

	start := time.Now()
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(workers)

	for i := 0; i < c.Games; i++ {
		seed := baseSeed + int64(i)
		group.Go(func() error {
			result, err := c.playGame(ctx, seed, logger)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", seed, err)
			}
			mu.Lock()
			analyzer.Add(result)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info("simulation finished", "elapsed", time.Since(start))

	summary := analyzer.Summary()
	fmt.Print(summary)
	if c.Output != "" {
		// Atomic write so report watchers never read a partial file
		if err := fileutil.WriteFileAtomic(c.Output, []byte(summary), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// playGame runs one bot game to completion and summarizes it
func (c *SimulateCmd) playGame(ctx context.Context, seed int64, logger *log.Logger) (analytics.GameResult, error) {
	agent, err := newBotAgent(c.Strategy, logger)
	if err != nil {
		return analytics.GameResult{}, err
	}

	shoe := deck.NewShoe(c.Decks, randutil.New(seed))
	gambler := game.NewGambler("Bot", c.Bankroll)
	gambler.SetAutoWager(c.Wager)
	table := game.NewTable(gambler, agent, shoe, game.WithLogger(logger))

	tracker := analytics.NewMetricTracker(c.Bankroll)
	if err := runGame(ctx, table, tracker, c.Turns); err != nil {
		return analytics.GameResult{}, err
	}

	return analytics.GameResult{
		Net:               tracker.NetWinnings(),
		Turns:             tracker.Turns,
		Hands:             tracker.Hands,
		Blackjacks:        tracker.Blackjacks,
		LongestWinStreak:  tracker.LongestWinStreak,
		LongestLossStreak: tracker.LongestLossStreak,
		Busted:            tracker.IsBusted(),
		Seed:              seed,
	}, nil
}
