package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/analytics"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/server"
)

// ServeCmd runs a bot-played game paced for spectators, streaming every
// table event over websockets
type ServeCmd struct {
	Config   string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Addr     string `kong:"help='Listen address (overrides config)'"`
	Strategy string `kong:"default='strategy',help='Bot strategy: strategy or mimic'"`
	Seed     *int64 `kong:"help='Deterministic shoe seed (overrides config)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = cfg.ServerAddress()
	}

	agent, err := newBotAgent(c.Strategy, logger)
	if err != nil {
		return err
	}

	delay, err := cfg.DealerDelay()
	if err != nil {
		return err
	}

	srv := server.NewServer(addr, logger)
	ctx := shared.SetupSignalHandler(logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("spectator server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		defer func() { _ = srv.Stop() }()
		return c.playGames(ctx, cfg, agent, srv, delay, logger)
	})
	return group.Wait()
}

// playGames runs bot games back to back until the context is cancelled.
// Each game draws from a fresh shoe with its own seed so spectators can
// replay any game they watched.
func (c *ServeCmd) playGames(ctx context.Context, cfg *config.Config, agent game.Agent, srv *server.Server, delay time.Duration, logger *log.Logger) error {
	baseSeed := resolveSeed(c.Seed, cfg.Table.Seed)

	for i := 0; ctx.Err() == nil; i++ {
		seed := baseSeed + int64(i)
		logger.Info("starting game", "game", i+1, "seed", seed, "spectators", srv.SpectatorCount())

		shoe := deck.NewShoe(cfg.Table.Decks, randutil.New(seed))
		gambler := game.NewGambler(cfg.Gambler.Name, cfg.Gambler.Bankroll)
		gambler.SetAutoWager(cfg.Gambler.AutoWager)
		table := game.NewTable(gambler, agent, shoe,
			game.WithDealerDelay(delay),
			game.WithLogger(logger),
			game.WithObserver(srv),
		)

		tracker := analytics.NewMetricTracker(cfg.Gambler.Bankroll)
		if err := runGame(ctx, table, tracker, 0); err != nil {
			return err
		}
		logger.Info("game over",
			"game", i+1,
			"turns", tracker.Turns,
			"net", tracker.NetWinnings(),
			"busted", tracker.IsBusted())
	}
	return nil
}
