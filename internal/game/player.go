package game

import (
	"errors"
)

// ErrInsufficientBankroll is returned when a wager exceeds the gambler's
// bankroll. Callers are expected to pre-check affordability, so seeing this
// error indicates a bug in the calling sequence.
var ErrInsufficientBankroll = errors.New("insufficient bankroll")

// Gambler is the player betting against the dealer. The bankroll is the
// single shared mutable resource of a game: wager and insurance placement
// debit it, payouts credit it, always within the turn sequence.
type Gambler struct {
	Name      string
	Bankroll  float64
	AutoWager float64

	hands  []*GamblerHand
	events *Publisher
}

// NewGambler creates a gambler with a starting bankroll
func NewGambler(name string, bankroll float64) *Gambler {
	return &Gambler{Name: name, Bankroll: bankroll}
}

// Hands returns the gambler's live hands in creation order. More than one
// hand exists only as a result of splitting.
func (g *Gambler) Hands() []*GamblerHand {
	return g.hands
}

// FirstHand returns the originally dealt hand
func (g *Gambler) FirstHand() *GamblerHand {
	if len(g.hands) == 0 {
		return nil
	}
	return g.hands[0]
}

// AddHand appends a hand to the gambler's live hands
func (g *Gambler) AddHand(hand *GamblerHand) {
	g.hands = append(g.hands, hand)
}

// DiscardHands detaches and returns the gambler's hands at turn end
func (g *Gambler) DiscardHands() []*GamblerHand {
	hands := g.hands
	g.hands = nil
	return hands
}

// SetAutoWager sets the standing wager placed at each deal. Zero means the
// gambler is cashing out.
func (g *Gambler) SetAutoWager(amount float64) {
	g.AutoWager = amount
}

// IsFinished returns true once the gambler has cashed out or gone broke
func (g *Gambler) IsFinished() bool {
	return g.AutoWager == 0 || g.Bankroll <= 0
}

// CanPlaceAutoWager reports whether the bankroll covers the standing wager
func (g *Gambler) CanPlaceAutoWager() bool {
	return g.Bankroll >= g.AutoWager
}

// CanPlaceInsuranceWager reports whether the bankroll covers an insurance
// side bet of half the first hand's wager
func (g *Gambler) CanPlaceInsuranceWager() bool {
	first := g.FirstHand()
	if first == nil {
		return false
	}
	return g.Bankroll >= first.Wager/2
}

// PlaceHandWager debits the bankroll and adds the amount to the hand's
// wager. Doubling places a second wager on the same hand.
func (g *Gambler) PlaceHandWager(amount float64, hand *GamblerHand) error {
	if amount > g.Bankroll {
		return ErrInsufficientBankroll
	}
	g.Bankroll -= amount
	hand.Wager += amount
	return nil
}

// PlaceInsuranceWager debits half the hand's wager as an insurance side bet
func (g *Gambler) PlaceInsuranceWager(hand *GamblerHand) error {
	amount := hand.Wager / 2
	if amount > g.Bankroll {
		return ErrInsufficientBankroll
	}
	g.Bankroll -= amount
	hand.Insurance = amount
	return nil
}

// Payout credits the bankroll and publishes the credit as a distinct
// ledger entry
func (g *Gambler) Payout(amount float64, message string) {
	g.Bankroll += amount
	g.events.Publish(NewPayoutEvent(amount, message, g.Bankroll))
}

// Dealer is the house side of the table. It holds a single hand per turn
// and plays it by fixed policy.
type Dealer struct {
	hand *DealerHand
}

// NewDealer creates a dealer
func NewDealer() *Dealer {
	return &Dealer{}
}

// Hand returns the dealer's current hand, nil between turns
func (d *Dealer) Hand() *DealerHand {
	return d.hand
}

// DiscardHand detaches and returns the dealer's hand at turn end
func (d *Dealer) DiscardHand() *DealerHand {
	hand := d.hand
	d.hand = nil
	return hand
}
