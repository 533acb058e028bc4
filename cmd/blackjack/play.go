package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/analytics"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd plays an interactive game in the terminal
type PlayCmd struct {
	Config string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Seed   *int64 `kong:"help='Deterministic shoe seed (overrides config)'"`
	Debug  bool   `kong:"help='Write debug logs to blackjack-debug.log'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	logger := shared.DiscardLogger()
	if c.Debug {
		fileLogger, closeLog, err := shared.SetupFileLogger("blackjack-debug.log", true)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
		logger = fileLogger
	}

	seed := resolveSeed(c.Seed, cfg.Table.Seed)
	logger.Info("starting game", "seed", seed, "decks", cfg.Table.Decks)

	shoe := deck.NewShoe(cfg.Table.Decks, randutil.New(seed))
	gambler := game.NewGambler(cfg.Gambler.Name, cfg.Gambler.Bankroll)
	gambler.SetAutoWager(cfg.Gambler.AutoWager)

	delay, err := cfg.DealerDelay()
	if err != nil {
		return err
	}

	agent := tui.NewAgent(logger)
	table := game.NewTable(gambler, agent, shoe,
		game.WithDealerDelay(delay),
		game.WithLogger(logger),
		game.WithObserver(agent),
	)
	tracker := analytics.NewMetricTracker(cfg.Gambler.Bankroll)

	var group errgroup.Group
	group.Go(func() error {
		defer agent.Quit()
		return runGame(context.Background(), table, tracker, 0)
	})

	// Bubble Tea drives the terminal on this goroutine until the game
	// ends or the gambler quits
	if err := agent.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("\nThanks for playing, %s!\n\n%s", gambler.Name, tracker.Summary())
	return nil
}

// resolveSeed prefers the flag, then the config, then the clock
func resolveSeed(flag *int64, configured int64) int64 {
	if flag != nil {
		return *flag
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
