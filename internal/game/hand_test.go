package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func TestPossibleTotalsNoAces(t *testing.T) {
	tests := []struct {
		name  string
		hand  *Hand
		total int
	}{
		{"two cards", handWith(card(deck.Spades, deck.King), card(deck.Hearts, deck.Seven)), 17},
		{"three cards", handWith(card(deck.Spades, deck.Two), card(deck.Hearts, deck.Three), card(deck.Clubs, deck.Four)), 9},
		{"busted", handWith(card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen), card(deck.Clubs, deck.Five)), 25},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			low, _, hasHigh := test.hand.PossibleTotals()
			assert.Equal(t, test.total, low)
			assert.False(t, hasHigh)
		})
	}
}

func TestPossibleTotalsWithAces(t *testing.T) {
	tests := []struct {
		name    string
		hand    *Hand
		low     int
		high    int
		hasHigh bool
	}{
		{
			"single ace usable as 11",
			handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six)),
			7, 17, true,
		},
		{
			"two aces, one counts as 11",
			handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace)),
			2, 12, true,
		},
		{
			"high total would bust",
			handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King), card(deck.Clubs, deck.Five)),
			16, 0, false,
		},
		{
			"ace plus ten is exactly 21",
			handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)),
			11, 21, true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			low, high, hasHigh := test.hand.PossibleTotals()
			assert.Equal(t, test.low, low)
			assert.Equal(t, test.hasHigh, hasHigh)
			if test.hasHigh {
				assert.Equal(t, test.high, high)
				assert.Less(t, low, high)
			}
		})
	}
}

func TestFinalTotalPrefersHigh(t *testing.T) {
	soft := handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six))
	assert.Equal(t, 17, soft.FinalTotal())

	hard := handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King), card(deck.Clubs, deck.Five))
	assert.Equal(t, 16, hard.FinalTotal())
}

func TestIsBlackjack(t *testing.T) {
	blackjack := handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King))
	assert.True(t, blackjack.IsBlackjack())

	// A 21 reached with three cards is never blackjack
	threeCard21 := handWith(card(deck.Spades, deck.Seven), card(deck.Hearts, deck.Seven), card(deck.Clubs, deck.Seven))
	assert.True(t, threeCard21.Is21())
	assert.False(t, threeCard21.IsBlackjack())
}

func TestIsBustedAndIsSoft(t *testing.T) {
	busted := handWith(card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen), card(deck.Clubs, deck.Five))
	assert.True(t, busted.IsBusted())

	soft := handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six))
	assert.True(t, soft.IsSoft())
	assert.False(t, soft.IsBusted())

	// Drawing a ten forces the ace back to 1: no longer soft
	soft.AddCard(card(deck.Clubs, deck.King))
	assert.False(t, soft.IsSoft())
	assert.Equal(t, 17, soft.FinalTotal())
}

func TestFormatPossibleTotals(t *testing.T) {
	tests := []struct {
		name     string
		hand     *Hand
		expected string
	}{
		{"hard hand", handWith(card(deck.Spades, deck.King), card(deck.Hearts, deck.Seven)), "17"},
		{"soft hand", handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six)), "7 or 17"},
		{"collapses at 21", handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)), "21"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.hand.FormatPossibleTotals())
		})
	}
}

func TestDisplayTotalFollowsStatus(t *testing.T) {
	hand := handWith(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six))

	hand.Status = StatusPlaying
	assert.Equal(t, "7 or 17", hand.DisplayTotal())

	hand.Status = StatusStood
	assert.Equal(t, "17", hand.DisplayTotal())
}

func TestHitDrawsExactlyOneCard(t *testing.T) {
	shoe := deck.NewStackedShoe(card(deck.Spades, deck.Five))
	hand := handWith(card(deck.Hearts, deck.King))

	require.NoError(t, hand.Hit(shoe))
	assert.Len(t, hand.Cards(), 2)
	assert.Equal(t, 15, hand.FinalTotal())

	// The shoe is now empty; the failure must surface
	err := hand.Hit(shoe)
	assert.ErrorIs(t, err, deck.ErrEmptyShoe)
	assert.Len(t, hand.Cards(), 2)
}

func TestCardsReturnsACopy(t *testing.T) {
	hand := handWith(card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Eight))

	snapshot := hand.Cards()
	hand.AddCard(card(deck.Clubs, deck.Five))
	snapshot[0] = card(deck.Diamonds, deck.Two)

	assert.Equal(t, card(deck.Spades, deck.Eight), hand.Cards()[0])
	assert.Len(t, snapshot, 2)
}

func TestHandString(t *testing.T) {
	hand := handWith(card(deck.Spades, deck.King), card(deck.Diamonds, deck.Ace))
	assert.Equal(t, "K♠ | A♦", hand.String())
}
