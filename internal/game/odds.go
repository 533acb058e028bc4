package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Odds represents payout odds as a ratio, e.g. 3:2 for a natural blackjack.
// A winning bet of w pays w * Antecedent / Consequent on top of the
// reclaimed stake.
type Odds struct {
	Antecedent int
	Consequent int
}

// Standard table odds
var (
	EvenMoneyOdds = Odds{1, 1}
	BlackjackOdds = Odds{3, 2}
	InsuranceOdds = Odds{2, 1}
)

// ParseOdds parses odds of the form "A:B"
func ParseOdds(s string) (Odds, error) {
	ante, cons, ok := strings.Cut(s, ":")
	if !ok {
		return Odds{}, fmt.Errorf("invalid odds %q: expected A:B", s)
	}
	a, err := strconv.Atoi(ante)
	if err != nil {
		return Odds{}, fmt.Errorf("invalid odds antecedent %q: %w", ante, err)
	}
	c, err := strconv.Atoi(cons)
	if err != nil {
		return Odds{}, fmt.Errorf("invalid odds consequent %q: %w", cons, err)
	}
	if a <= 0 || c <= 0 {
		return Odds{}, fmt.Errorf("invalid odds %q: both terms must be positive", s)
	}
	return Odds{Antecedent: a, Consequent: c}, nil
}

// String returns the odds in "A:B" form
func (o Odds) String() string {
	return fmt.Sprintf("%d:%d", o.Antecedent, o.Consequent)
}

// IsZero returns true for the zero value, which carries no payout ratio
func (o Odds) IsZero() bool {
	return o.Antecedent == 0 && o.Consequent == 0
}

// WinningsOn returns the winnings these odds pay on the given stake,
// excluding the reclaimed stake itself
func (o Odds) WinningsOn(stake float64) float64 {
	return stake * float64(o.Antecedent) / float64(o.Consequent)
}
