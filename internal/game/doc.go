// Package game implements the blackjack rules engine: hand valuation with
// soft and hard ace totals, split and double eligibility, the dealer's
// hit-to-17 policy, insurance and even-money resolution, and wager payout
// arithmetic.
//
// The main type is Table, which sequences a single gambler's turn against
// the dealer. Decisions are supplied by an Agent (a human prompter or an
// automated strategy), cards by a CardSource (usually a deck.Shoe), and
// everything the table does is published to Observers for display and
// analytics.
//
// # Basic usage
//
//	gambler := game.NewGambler("Alice", 100)
//	gambler.SetAutoWager(10)
//	shoe := deck.NewShoe(6, randutil.New(42))
//	table := game.NewTable(gambler, agent, shoe)
//	for !gambler.IsFinished() {
//	    result, err := table.PlayTurn()
//	    ...
//	}
//
// # Determinism
//
// Tables are deterministic given a seeded shoe (or a deck.NewStackedShoe
// with scripted cards) and a scripted agent, which is how the tests in
// this package drive every branch of the turn protocol. Dealer pacing
// runs on an injected quartz.Clock so tests never sleep.
package game
