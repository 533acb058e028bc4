package analytics

import (
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func settledHand(t *testing.T, outcome game.Outcome, cards ...deck.Card) *game.GamblerHand {
	t.Helper()
	gambler := game.NewGambler("Test", 100)
	hand := game.NewGamblerHand(gambler, 1)
	for _, c := range cards {
		hand.AddCard(c)
	}
	gambler.AddHand(hand)
	hand.Wager = 10
	hand.Outcome = outcome
	return hand
}

func turnResult(turn int, bankroll float64, hands ...*game.GamblerHand) *game.TurnResult {
	return &game.TurnResult{
		Turn:         turn,
		Played:       true,
		GamblerHands: hands,
		Bankroll:     bankroll,
	}
}

func TestMetricTrackerCountsOutcomes(t *testing.T) {
	tracker := NewMetricTracker(100)

	win := settledHand(t, game.OutcomeWin,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine))
	loss := settledHand(t, game.OutcomeLoss,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	push := settledHand(t, game.OutcomePush,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Eight))
	blackjack := settledHand(t, game.OutcomeWin,
		deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King))

	tracker.ProcessTurn(turnResult(1, 110, win))
	tracker.ProcessTurn(turnResult(2, 100, loss))
	tracker.ProcessTurn(turnResult(3, 100, push))
	tracker.ProcessTurn(turnResult(4, 115, blackjack))

	if tracker.Turns != 4 {
		t.Errorf("Expected 4 turns, got %d", tracker.Turns)
	}
	if tracker.Hands != 4 {
		t.Errorf("Expected 4 hands, got %d", tracker.Hands)
	}
	if tracker.Wins != 2 || tracker.Losses != 1 || tracker.Pushes != 1 {
		t.Errorf("Expected 2/1/1 wins/losses/pushes, got %d/%d/%d",
			tracker.Wins, tracker.Losses, tracker.Pushes)
	}
	if tracker.Blackjacks != 1 {
		t.Errorf("Expected 1 blackjack, got %d", tracker.Blackjacks)
	}
	if tracker.NetWinnings() != 15 {
		t.Errorf("Expected net winnings of 15, got %f", tracker.NetWinnings())
	}
	if len(tracker.Bankrolls) != 4 || tracker.Bankrolls[3] != 115 {
		t.Errorf("Expected bankroll progression ending at 115, got %v", tracker.Bankrolls)
	}
}

func TestMetricTrackerSkipsUnplayedTurns(t *testing.T) {
	tracker := NewMetricTracker(100)
	tracker.ProcessTurn(&game.TurnResult{Turn: 1, Played: false, Bankroll: 100})

	if tracker.Turns != 0 {
		t.Errorf("Expected 0 turns, got %d", tracker.Turns)
	}
	if len(tracker.Bankrolls) != 0 {
		t.Errorf("Expected no bankroll entries, got %v", tracker.Bankrolls)
	}
}

func TestMetricTrackerStreaks(t *testing.T) {
	tracker := NewMetricTracker(100)

	outcomes := []game.Outcome{
		game.OutcomeWin, game.OutcomeWin, game.OutcomeWin,
		game.OutcomePush, // does not break the run
		game.OutcomeLoss, game.OutcomeLoss,
		game.OutcomeWin,
	}
	for i, outcome := range outcomes {
		hand := settledHand(t, outcome,
			deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine))
		tracker.ProcessTurn(turnResult(i+1, 100, hand))
	}

	if tracker.LongestWinStreak != 3 {
		t.Errorf("Expected longest win streak of 3, got %d", tracker.LongestWinStreak)
	}
	if tracker.LongestLossStreak != 2 {
		t.Errorf("Expected longest loss streak of 2, got %d", tracker.LongestLossStreak)
	}
	if tracker.CurrentStreak != 1 {
		t.Errorf("Expected current streak of 1, got %d", tracker.CurrentStreak)
	}
}

func TestMetricTrackerSplitTurnCountsBothHands(t *testing.T) {
	tracker := NewMetricTracker(100)

	first := settledHand(t, game.OutcomeWin,
		deck.NewCard(deck.Spades, deck.Eight), deck.NewCard(deck.Hearts, deck.Two))
	second := settledHand(t, game.OutcomeLoss,
		deck.NewCard(deck.Diamonds, deck.Eight), deck.NewCard(deck.Clubs, deck.Three))
	tracker.ProcessTurn(turnResult(1, 100, first, second))

	if tracker.Turns != 1 {
		t.Errorf("Expected 1 turn, got %d", tracker.Turns)
	}
	if tracker.Hands != 2 {
		t.Errorf("Expected 2 hands, got %d", tracker.Hands)
	}
}

func TestMetricTrackerSummary(t *testing.T) {
	tracker := NewMetricTracker(100)
	win := settledHand(t, game.OutcomeWin,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine))
	tracker.ProcessTurn(turnResult(1, 110, win))

	summary := tracker.Summary()
	if !strings.Contains(summary, "Wins:              1") {
		t.Errorf("Expected summary to report the win, got:\n%s", summary)
	}
	if !strings.Contains(summary, "net +10.00") {
		t.Errorf("Expected summary to report net winnings, got:\n%s", summary)
	}
}
