package game

import (
	"fmt"
	"strconv"
)

// PayoutKind selects which settlement arithmetic applies to a hand
type PayoutKind int

const (
	// PayoutWager pays winnings on the hand wager at the given odds and
	// reclaims the wager
	PayoutWager PayoutKind = iota
	// PayoutInsurance pays winnings on the insurance side bet at the given
	// odds and reclaims the side bet; the hand wager itself stays lost
	PayoutInsurance
	// PayoutPush reclaims the hand wager only
	PayoutPush
)

// GamblerHand is a hand the gambler is betting on. Splitting creates
// sibling hands on the same gambler, each carrying its own wager.
type GamblerHand struct {
	Hand

	Wager         float64
	Insurance     float64
	HandNumber    int
	Outcome       Outcome
	LostInsurance bool

	gambler *Gambler
}

// NewGamblerHand creates an empty hand for the gambler. HandNumber is the
// 1-based position among the gambler's concurrent hands.
func NewGamblerHand(gambler *Gambler, handNumber int) *GamblerHand {
	return &GamblerHand{HandNumber: handNumber, gambler: gambler}
}

// IsSplittable reports whether the hand may be split: two cards of the
// same rank, and enough bankroll to duplicate the wager
func (h *GamblerHand) IsSplittable() bool {
	return len(h.cards) == 2 &&
		h.cards[0].Rank == h.cards[1].Rank &&
		h.gambler.Bankroll >= h.Wager
}

// IsDoubleable reports whether the hand may be doubled: two cards and
// enough bankroll to double the wager
func (h *GamblerHand) IsDoubleable() bool {
	return len(h.cards) == 2 && h.gambler.Bankroll >= h.Wager
}

// AvailableActions returns the action menu for the hand. Hit and Stand are
// always offered; Double and Split only when the hand is eligible.
func (h *GamblerHand) AvailableActions() []Action {
	actions := []Action{ActionHit, ActionStand}
	if h.IsDoubleable() {
		actions = append(actions, ActionDouble)
	}
	if h.IsSplittable() {
		actions = append(actions, ActionSplit)
	}
	return actions
}

// Split moves the second card into a new sibling hand and places a
// matching wager on it. Eligibility must be checked via IsSplittable
// before calling.
func (h *GamblerHand) Split() error {
	splitCard := h.cards[1]
	h.cards = h.cards[:1]

	sibling := NewGamblerHand(h.gambler, len(h.gambler.Hands())+1)
	sibling.AddCard(splitCard)
	h.gambler.AddHand(sibling)

	if err := h.gambler.PlaceHandWager(h.Wager, sibling); err != nil {
		return fmt.Errorf("splitting hand %d: %w", h.HandNumber, err)
	}
	return nil
}

// Double places a second wager equal to the current one, then draws
// exactly one more card. The hand takes no further action this turn.
func (h *GamblerHand) Double(source CardSource) error {
	if err := h.gambler.PlaceHandWager(h.Wager, h); err != nil {
		return fmt.Errorf("doubling hand %d: %w", h.HandNumber, err)
	}
	return h.Hit(source)
}

// Play runs the hand's decision loop until it reaches a terminal status.
// Fresh split hands draw their second card automatically, and split Aces
// get exactly one card: 21 on a split Ace counts as blackjack, anything
// else stands immediately.
func (h *GamblerHand) Play(source CardSource, agent Agent, events *Publisher) error {
	h.Status = StatusPlaying

	for h.Status == StatusPlaying {
		if len(h.cards) == 1 {
			events.Publish(NewMessageEvent(fmt.Sprintf("Adding second card to hand %d...", h.HandNumber)))
			if err := h.Hit(source); err != nil {
				return err
			}
			if h.cards[0].IsAce() {
				if h.IsBlackjack() {
					h.Status = StatusBlackjack
				} else {
					h.Status = StatusStood
				}
				break
			}
		}

		action := agent.ChooseAction(h, h.AvailableActions())
		events.Publish(NewActionEvent(h.HandNumber, action))

		switch action {
		case ActionHit:
			if err := h.Hit(source); err != nil {
				return err
			}
		case ActionStand:
			h.Status = StatusStood
		case ActionDouble:
			if err := h.Double(source); err != nil {
				return err
			}
			h.Status = StatusDoubled
		case ActionSplit:
			if err := h.Split(); err != nil {
				return err
			}
			continue
		default:
			panic(fmt.Sprintf("game: unsupported action %v", action))
		}

		if h.Is21() {
			h.Status = StatusStood
		} else if h.IsBusted() {
			h.Status = StatusBusted
		}
	}
	return nil
}

// Payout credits the gambler per the payout kind. Winnings and stake
// reclaims are two separate bankroll entries, as on a table ledger. Odds
// are mandatory for the paying kinds; passing the zero Odds there is a
// bug in the caller.
func (h *GamblerHand) Payout(kind PayoutKind, odds Odds) {
	switch kind {
	case PayoutWager:
		if odds.IsZero() {
			panic("game: odds required for wager payouts")
		}
		winnings := odds.WinningsOn(h.Wager)
		h.gambler.Payout(winnings, fmt.Sprintf("Adding winning hand payout of %s to bankroll.", money(winnings)))
		h.gambler.Payout(h.Wager, fmt.Sprintf("Reclaiming hand wager of %s.", money(h.Wager)))
	case PayoutInsurance:
		if odds.IsZero() {
			panic("game: odds required for insurance payouts")
		}
		winnings := odds.WinningsOn(h.Insurance)
		h.gambler.Payout(winnings, fmt.Sprintf("Adding winning insurance payout of %s to bankroll.", money(winnings)))
		h.gambler.Payout(h.Insurance, fmt.Sprintf("Reclaiming insurance wager of %s.", money(h.Insurance)))
	case PayoutPush:
		h.gambler.Payout(h.Wager, fmt.Sprintf("Reclaiming hand wager of %s.", money(h.Wager)))
	default:
		panic(fmt.Sprintf("game: unsupported payout kind %d", int(kind)))
	}
}

// SettleUp decides and pays the non-blackjack outcome of the hand against
// the dealer's final hand. Blackjack payouts, even money and insurance are
// resolved during turn orchestration before play reaches this point.
func (h *GamblerHand) SettleUp(dealerHand *DealerHand) {
	switch {
	case h.Status == StatusBusted:
		// Wager was forfeit the moment the hand busted
		h.Outcome = OutcomeLoss
	case dealerHand.Status == StatusBusted:
		h.Outcome = OutcomeWin
		h.Payout(PayoutWager, EvenMoneyOdds)
	default:
		total, dealerTotal := h.FinalTotal(), dealerHand.FinalTotal()
		switch {
		case total > dealerTotal:
			h.Outcome = OutcomeWin
			h.Payout(PayoutWager, EvenMoneyOdds)
		case total == dealerTotal:
			h.Outcome = OutcomePush
			h.Payout(PayoutPush, Odds{})
		default:
			h.Outcome = OutcomeLoss
		}
	}
}

// money formats a dollar amount without trailing zeros
func money(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}
