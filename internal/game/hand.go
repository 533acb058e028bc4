package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// CardSource supplies cards on demand. Deals fail with deck.ErrEmptyShoe
// when the source is exhausted.
type CardSource interface {
	DealCard() (deck.Card, error)
	DealCards(n int) ([]deck.Card, error)
}

// Hand is the shared representation of a dealt hand: an ordered sequence of
// cards plus a lifecycle status. Card order matters for display only; the
// totals below ignore it.
type Hand struct {
	Status HandStatus

	cards []deck.Card
}

// Cards returns the cards in the hand in the order they were dealt. The
// returned slice is a copy; it stays stable when the hand later draws or
// splits.
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Hit draws exactly one card from the source and appends it
func (h *Hand) Hit(source CardSource) error {
	card, err := source.DealCard()
	if err != nil {
		return fmt.Errorf("hitting hand: %w", err)
	}
	h.cards = append(h.cards, card)
	return nil
}

// PossibleTotals computes the candidate totals for the hand. Aces give a
// hand two interpretations, but at most one ace can count as 11 without
// busting, so only two totals ever need tracking. hasHigh is false when no
// ace can currently be counted as 11.
func (h *Hand) PossibleTotals() (low, high int, hasHigh bool) {
	numAces := 0
	nonAceTotal := 0
	for _, card := range h.cards {
		if card.IsAce() {
			numAces++
		} else {
			nonAceTotal += card.Value()
		}
	}

	if numAces == 0 {
		return nonAceTotal, 0, false
	}

	// One ace as 11, the rest as 1
	high = nonAceTotal + 11 + numAces - 1
	low = nonAceTotal + numAces

	if high > 21 {
		return low, 0, false
	}
	return low, high, true
}

// FinalTotal resolves the hand to a single total: the high total when an
// ace is usable as 11, otherwise the low total
func (h *Hand) FinalTotal() int {
	low, high, hasHigh := h.PossibleTotals()
	if hasHigh {
		return high
	}
	return low
}

// Is21 returns true if the hand totals exactly 21
func (h *Hand) Is21() bool {
	return h.FinalTotal() == 21
}

// IsBlackjack returns true for a two-card 21. A 21 reached by hitting is
// not blackjack.
func (h *Hand) IsBlackjack() bool {
	return h.Is21() && len(h.cards) == 2
}

// IsBusted returns true if the hand totals over 21
func (h *Hand) IsBusted() bool {
	return h.FinalTotal() > 21
}

// IsSoft returns true while an ace is counted as 11
func (h *Hand) IsSoft() bool {
	_, _, hasHigh := h.PossibleTotals()
	return hasHigh
}

// FormatPossibleTotals renders the candidate totals for display, e.g.
// "7 or 17", collapsing to a single value when the high total is 21
func (h *Hand) FormatPossibleTotals() string {
	low, high, hasHigh := h.PossibleTotals()
	switch {
	case hasHigh && high == 21:
		return fmt.Sprintf("%d", high)
	case hasHigh:
		return fmt.Sprintf("%d or %d", low, high)
	default:
		return fmt.Sprintf("%d", low)
	}
}

// DisplayTotal renders the total appropriate to the hand's state: both
// candidate totals while the hand is live, the single final total once the
// hand is finished
func (h *Hand) DisplayTotal() string {
	switch h.Status {
	case StatusPending, StatusPlaying:
		return h.FormatPossibleTotals()
	default:
		return fmt.Sprintf("%d", h.FinalTotal())
	}
}

// String renders the cards in dealt order, e.g. "K♠ | A♦"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " | ")
}
