// Package bot provides automated agents that play without a human at the
// table. They are used for unattended simulation runs and for driving the
// table from tests.
package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// hasAction reports whether the action appears in the offered menu
func hasAction(actions []game.Action, want game.Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

// Strategy plays a fixed total-based strategy. The action menu already
// reflects eligibility and bankroll, so the strategy only ranks the
// offered actions:
//
//   - split Aces and Eights whenever splitting is offered
//   - double a hard 10 or 11
//   - hit soft totals below 18 and hard totals below 17
//
// Insurance and even money are side bets with negative expectation, so
// the strategy always declines them, and it never revises its wager.
type Strategy struct {
	logger *log.Logger
}

// NewStrategy creates a strategy agent
func NewStrategy(logger *log.Logger) *Strategy {
	return &Strategy{logger: logger.WithPrefix("bot")}
}

// ChooseAction picks an action for the hand from the offered menu
func (s *Strategy) ChooseAction(hand *game.GamblerHand, actions []game.Action) game.Action {
	action := s.chooseAction(hand, actions)
	s.logger.Debug("chose action",
		"hand", hand.String(),
		"total", hand.DisplayTotal(),
		"action", action)
	return action
}

func (s *Strategy) chooseAction(hand *game.GamblerHand, actions []game.Action) game.Action {
	cards := hand.Cards()

	if hasAction(actions, game.ActionSplit) {
		rank := cards[0].Rank
		if rank == deck.Ace || rank == deck.Eight {
			return game.ActionSplit
		}
	}

	low, high, hasHigh := hand.PossibleTotals()

	if hasAction(actions, game.ActionDouble) && !hasHigh && (low == 10 || low == 11) {
		return game.ActionDouble
	}

	if hasHigh {
		if high < 18 {
			return game.ActionHit
		}
		return game.ActionStand
	}
	if low < 17 {
		return game.ActionHit
	}
	return game.ActionStand
}

// WantsEvenMoney declines even money
func (s *Strategy) WantsEvenMoney() bool { return false }

// WantsInsurance declines insurance
func (s *Strategy) WantsInsurance() bool { return false }

// WantsWagerChange keeps the standing wager
func (s *Strategy) WantsWagerChange(bankroll, autoWager float64) bool { return false }

// ReviseWager keeps the standing wager. The table only calls this when a
// change is forced, so the bankroll no longer covers the standing wager
// and the bot bets the remainder instead.
func (s *Strategy) ReviseWager(bankroll, autoWager float64) float64 {
	if bankroll < autoWager {
		s.logger.Debug("reducing wager to remaining bankroll", "bankroll", bankroll)
		return bankroll
	}
	return autoWager
}

// Mimic plays the dealer's own policy: hit below 17, otherwise stand.
// It never splits, doubles or takes side bets, which makes it a useful
// baseline when comparing strategies over a simulation run.
type Mimic struct {
	logger *log.Logger
}

// NewMimic creates a dealer-mimic agent
func NewMimic(logger *log.Logger) *Mimic {
	return &Mimic{logger: logger.WithPrefix("bot")}
}

// ChooseAction hits below 17 and stands otherwise
func (m *Mimic) ChooseAction(hand *game.GamblerHand, actions []game.Action) game.Action {
	if hand.FinalTotal() < 17 {
		return game.ActionHit
	}
	return game.ActionStand
}

// WantsEvenMoney declines even money
func (m *Mimic) WantsEvenMoney() bool { return false }

// WantsInsurance declines insurance
func (m *Mimic) WantsInsurance() bool { return false }

// WantsWagerChange keeps the standing wager
func (m *Mimic) WantsWagerChange(bankroll, autoWager float64) bool { return false }

// ReviseWager bets the remaining bankroll when the standing wager no
// longer fits
func (m *Mimic) ReviseWager(bankroll, autoWager float64) float64 {
	if bankroll < autoWager {
		return bankroll
	}
	return autoWager
}
