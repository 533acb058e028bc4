package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when a deal is requested from an exhausted shoe.
// Running out of cards mid-turn corrupts the game, so callers must surface
// this rather than recover silently.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is the pooled, shuffled source of cards drawn from during play.
// It may span multiple 52-card decks, as at a casino table.
type Shoe struct {
	cards []Card
}

// NewShoe creates a shoe holding the given number of decks, shuffled with
// the provided RNG
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{cards: make([]Card, 0, decks*52)}
	for d := 0; d < decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	return s
}

// NewStackedShoe creates an unshuffled shoe that deals the given cards in
// order. Intended for deterministic tests and scripted demos.
func NewStackedShoe(cards ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cards...)}
}

// DealCard draws and removes the next card from the shoe
func (s *Shoe) DealCard() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// DealCards draws n cards from the shoe. If the shoe cannot supply all n,
// no cards are consumed and ErrEmptyShoe is returned.
func (s *Shoe) DealCards(n int) ([]Card, error) {
	if n > len(s.cards) {
		return nil, ErrEmptyShoe
	}
	cards := make([]Card, n)
	copy(cards, s.cards[:n])
	s.cards = s.cards[n:]
	return cards, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
