// Package analytics tracks game outcomes: per-game metrics as turns
// complete, and aggregate statistics across simulation runs.
package analytics

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// MetricTracker accumulates the metrics of a single game as its turns
// complete. Hands are counted individually, so a split turn contributes
// more than one outcome.
type MetricTracker struct {
	StartingBankroll float64
	FinalBankroll    float64

	Turns int
	Hands int

	Wins          int
	Losses        int
	Pushes        int
	EvenMoneys    int
	InsuranceWins int
	LostInsurance int
	Blackjacks    int

	// Bankrolls is the bankroll after each played turn, in turn order
	Bankrolls []float64

	// CurrentStreak is positive during a run of winning hands and
	// negative during a run of losing hands. Pushes leave it untouched.
	CurrentStreak     int
	LongestWinStreak  int
	LongestLossStreak int
}

// NewMetricTracker creates a tracker for a game starting at the given
// bankroll
func NewMetricTracker(startingBankroll float64) *MetricTracker {
	return &MetricTracker{
		StartingBankroll: startingBankroll,
		FinalBankroll:    startingBankroll,
	}
}

// ProcessTurn incorporates a finished turn. Turns where the gambler
// cashed out before the deal carry no hands and are not counted.
func (m *MetricTracker) ProcessTurn(result *game.TurnResult) {
	m.FinalBankroll = result.Bankroll
	if !result.Played {
		return
	}

	m.Turns++
	m.Bankrolls = append(m.Bankrolls, result.Bankroll)

	for _, hand := range result.GamblerHands {
		m.Hands++
		if hand.IsBlackjack() {
			m.Blackjacks++
		}
		if hand.LostInsurance {
			m.LostInsurance++
		}

		switch hand.Outcome {
		case game.OutcomeWin:
			m.Wins++
			m.extendStreak(1)
		case game.OutcomeEvenMoney:
			m.EvenMoneys++
			m.extendStreak(1)
		case game.OutcomeInsuranceWin:
			m.InsuranceWins++
			m.extendStreak(1)
		case game.OutcomeLoss:
			m.Losses++
			m.extendStreak(-1)
		case game.OutcomePush:
			m.Pushes++
		}
	}
}

func (m *MetricTracker) extendStreak(direction int) {
	if m.CurrentStreak*direction > 0 {
		m.CurrentStreak += direction
	} else {
		m.CurrentStreak = direction
	}
	if m.CurrentStreak > m.LongestWinStreak {
		m.LongestWinStreak = m.CurrentStreak
	}
	if -m.CurrentStreak > m.LongestLossStreak {
		m.LongestLossStreak = -m.CurrentStreak
	}
}

// HandleEvent lets the tracker double as a game observer, so a live game
// can feed it without extra plumbing. Only turn-end bankrolls are taken
// from the event stream; hand outcomes arrive via ProcessTurn.
func (m *MetricTracker) HandleEvent(event game.GameEvent) {
	if e, ok := event.(game.TurnEndEvent); ok {
		m.FinalBankroll = e.Bankroll
	}
}

// NetWinnings returns the bankroll change since the game started
func (m *MetricTracker) NetWinnings() float64 {
	return m.FinalBankroll - m.StartingBankroll
}

// WinRate returns the fraction of hands won, counting even money and
// insurance wins as wins
func (m *MetricTracker) WinRate() float64 {
	if m.Hands == 0 {
		return 0
	}
	return float64(m.Wins+m.EvenMoneys+m.InsuranceWins) / float64(m.Hands)
}

// IsBusted reports whether the game ended with an empty bankroll
func (m *MetricTracker) IsBusted() bool {
	return m.FinalBankroll <= 0
}

// Summary renders the game's metrics as a multi-line report
func (m *MetricTracker) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turns played:      %d\n", m.Turns)
	fmt.Fprintf(&b, "Hands played:      %d\n", m.Hands)
	fmt.Fprintf(&b, "Wins:              %d\n", m.Wins)
	fmt.Fprintf(&b, "Losses:            %d\n", m.Losses)
	fmt.Fprintf(&b, "Pushes:            %d\n", m.Pushes)
	fmt.Fprintf(&b, "Even money:        %d\n", m.EvenMoneys)
	fmt.Fprintf(&b, "Insurance wins:    %d\n", m.InsuranceWins)
	fmt.Fprintf(&b, "Insurance losses:  %d\n", m.LostInsurance)
	fmt.Fprintf(&b, "Blackjacks:        %d\n", m.Blackjacks)
	fmt.Fprintf(&b, "Longest win run:   %d\n", m.LongestWinStreak)
	fmt.Fprintf(&b, "Longest loss run:  %d\n", m.LongestLossStreak)
	fmt.Fprintf(&b, "Win rate:          %.1f%%\n", m.WinRate()*100)
	fmt.Fprintf(&b, "Final bankroll:    $%.2f (net %+.2f)\n", m.FinalBankroll, m.NetWinnings())
	return b.String()
}
