package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/analytics"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// runGame plays turns until the gambler cashes out or goes broke, the
// shoe empties, the context is cancelled, or maxTurns is reached.
// maxTurns <= 0 means no limit.
func runGame(ctx context.Context, table *game.Table, tracker *analytics.MetricTracker, maxTurns int) error {
	for turns := 0; maxTurns <= 0 || turns < maxTurns; turns++ {
		if ctx.Err() != nil {
			return nil
		}

		result, err := table.PlayTurn()
		if err != nil {
			// An exhausted shoe ends the game; cards are never recycled
			if errors.Is(err, deck.ErrEmptyShoe) {
				return nil
			}
			return err
		}
		tracker.ProcessTurn(result)
		if !result.Played {
			return nil
		}
	}
	return nil
}

// newBotAgent resolves a bot strategy by name
func newBotAgent(strategy string, logger *log.Logger) (game.Agent, error) {
	switch strategy {
	case "strategy":
		return bot.NewStrategy(logger), nil
	case "mimic":
		return bot.NewMimic(logger), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (want strategy or mimic)", strategy)
}
