package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func playDealerHand(t *testing.T, shoe CardSource, cards ...deck.Card) *DealerHand {
	t.Helper()
	hand := NewDealerHand()
	for _, c := range cards {
		hand.AddCard(c)
	}
	require.NoError(t, hand.Play(shoe, func() {}, nil))
	return hand
}

func TestDealerHitsBelow17(t *testing.T) {
	shoe := deck.NewStackedShoe(card(deck.Clubs, deck.Five))
	hand := playDealerHand(t, shoe, card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Two))

	assert.Equal(t, StatusStood, hand.Status)
	assert.Equal(t, 17, hand.FinalTotal())
	assert.Len(t, hand.Cards(), 3)
}

func TestDealerStandsOnHard17(t *testing.T) {
	shoe := deck.NewStackedShoe()
	hand := playDealerHand(t, shoe, card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Seven))

	assert.Equal(t, StatusStood, hand.Status)
	assert.Len(t, hand.Cards(), 2)
}

func TestDealerHitsSoft17(t *testing.T) {
	shoe := deck.NewStackedShoe(card(deck.Clubs, deck.Two))
	hand := playDealerHand(t, shoe, card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six))

	assert.Equal(t, StatusStood, hand.Status)
	assert.Equal(t, 19, hand.FinalTotal())
	assert.Len(t, hand.Cards(), 3)
}

func TestDealerStandsOnSoft18(t *testing.T) {
	shoe := deck.NewStackedShoe()
	hand := playDealerHand(t, shoe, card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Seven))

	assert.Equal(t, StatusStood, hand.Status)
	assert.Len(t, hand.Cards(), 2)
}

func TestDealerBusts(t *testing.T) {
	shoe := deck.NewStackedShoe(card(deck.Clubs, deck.King))
	hand := playDealerHand(t, shoe, card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six))

	assert.Equal(t, StatusBusted, hand.Status)
	assert.Equal(t, 26, hand.FinalTotal())
}

func TestDealerPlayPublishesHandProgression(t *testing.T) {
	hand := NewDealerHand()
	hand.AddCard(card(deck.Spades, deck.Ten))
	hand.AddCard(card(deck.Hearts, deck.Six))

	shoe := deck.NewStackedShoe(card(deck.Clubs, deck.Five))
	recorder := &eventRecorder{}
	events := &Publisher{}
	events.Subscribe(recorder)

	pauses := 0
	require.NoError(t, hand.Play(shoe, func() { pauses++ }, events))

	// One pause per decision: hit on 16, stand on 21
	assert.Equal(t, 2, pauses)

	var handEvents []DealerHandEvent
	for _, e := range recorder.events {
		if he, ok := e.(DealerHandEvent); ok {
			handEvents = append(handEvents, he)
		}
	}
	require.NotEmpty(t, handEvents)
	assert.Equal(t, StatusPlaying, handEvents[0].Status)

	last := handEvents[len(handEvents)-1]
	assert.Equal(t, StatusStood, last.Status)
	assert.Len(t, last.Cards, 3)
	assert.Contains(t, recorder.messages(), "Dealer hits.")
	assert.Contains(t, recorder.messages(), "Dealer stands.")
}

func TestUpCardTotal(t *testing.T) {
	ace := NewDealerHand()
	ace.AddCard(card(deck.Spades, deck.Ace))
	ace.AddCard(card(deck.Hearts, deck.Nine))
	assert.Equal(t, "1 or 11", ace.UpCardTotal())

	king := NewDealerHand()
	king.AddCard(card(deck.Spades, deck.King))
	king.AddCard(card(deck.Hearts, deck.Nine))
	assert.Equal(t, "10", king.UpCardTotal())
}
