package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// DealerHand is the house hand. The first card dealt is the up card,
// visible from the deal; the second stays hidden until the dealer's turn
// or a blackjack check forces disclosure.
type DealerHand struct {
	Hand
}

// NewDealerHand creates an empty dealer hand
func NewDealerHand() *DealerHand {
	return &DealerHand{}
}

// UpCard returns the dealer's face-up card
func (h *DealerHand) UpCard() deck.Card {
	return h.cards[0]
}

// UpCardTotal renders the visible total while the hole card is hidden.
// An Ace shows as "1 or 11".
func (h *DealerHand) UpCardTotal() string {
	up := h.UpCard()
	if up.IsAce() {
		return "1 or 11"
	}
	return fmt.Sprintf("%d", up.Value())
}

// Play runs the dealer's fixed drawing policy: hit below 17, hit a soft
// 17, otherwise stand. No input is consulted. The pause hook runs before
// each decision so a watching gambler can follow the card progression;
// events receives the hand after every change.
func (h *DealerHand) Play(source CardSource, pause func(), events *Publisher) error {
	h.Status = StatusPlaying

	for h.Status == StatusPlaying {
		events.Publish(NewDealerHandEvent(h))
		pause()

		total := h.FinalTotal()
		switch {
		case total < 17:
			events.Publish(NewMessageEvent("Dealer hits."))
			if err := h.Hit(source); err != nil {
				return err
			}
		case total == 17 && h.IsSoft():
			// House rule: dealer hits soft 17
			events.Publish(NewMessageEvent("Dealer hits soft 17."))
			if err := h.Hit(source); err != nil {
				return err
			}
		default:
			events.Publish(NewMessageEvent("Dealer stands."))
			h.Status = StatusStood
		}

		if h.IsBusted() {
			events.Publish(NewMessageEvent("Dealer busts!"))
			h.Status = StatusBusted
		}
	}

	events.Publish(NewDealerHandEvent(h))
	return nil
}
