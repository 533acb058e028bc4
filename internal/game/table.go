package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Table runs the turn-by-turn protocol between one gambler and the house:
// wager placement, the deal, blackjack checks, insurance and even money,
// hand play and settlement. Everything is strictly turn-sequential; the
// only early exit is the gambler cashing out before the deal.
type Table struct {
	Gambler *Gambler
	Dealer  *Dealer

	shoe   CardSource
	agent  Agent
	events *Publisher
	clock  quartz.Clock
	delay  time.Duration
	logger *log.Logger
	turn   int
}

// TableOption configures a Table
type TableOption func(*Table)

// WithDealerDelay sets the pause between dealer draws so play is
// watchable. Zero disables pacing.
func WithDealerDelay(d time.Duration) TableOption {
	return func(t *Table) { t.delay = d }
}

// WithClock injects the clock used for dealer pacing (mocked in tests)
func WithClock(clock quartz.Clock) TableOption {
	return func(t *Table) { t.clock = clock }
}

// WithLogger sets the table's logger
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger.WithPrefix("table") }
}

// WithObserver subscribes an observer to the table's event feed
func WithObserver(o Observer) TableOption {
	return func(t *Table) { t.events.Subscribe(o) }
}

// NewTable creates a table for the gambler. The agent supplies the
// gambler's decisions; the shoe supplies cards.
func NewTable(gambler *Gambler, agent Agent, shoe CardSource, opts ...TableOption) *Table {
	t := &Table{
		Gambler: gambler,
		Dealer:  NewDealer(),
		shoe:    shoe,
		agent:   agent,
		events:  &Publisher{},
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	gambler.events = t.events
	return t
}

// Events returns the table's event publisher for late subscriptions
func (t *Table) Events() *Publisher {
	return t.events
}

// TurnResult carries the detached hands of a finished turn for reporting
// and analytics. Played is false when the gambler cashed out before the
// deal.
type TurnResult struct {
	Turn         int
	Played       bool
	GamblerHands []*GamblerHand
	DealerHand   *DealerHand
	Bankroll     float64
}

// PlayTurn runs one complete turn. The returned result owns the turn's
// hands; the players no longer reference them. An empty shoe surfaces as
// an error wrapping deck.ErrEmptyShoe.
func (t *Table) PlayTurn() (*TurnResult, error) {
	t.turn++
	t.events.Publish(NewTurnStartEvent(t.turn, t.Gambler.Bankroll))
	t.logger.Debug("starting turn", "turn", t.turn, "bankroll", t.Gambler.Bankroll)

	t.reviseWager()
	if t.Gambler.IsFinished() {
		t.logger.Debug("gambler cashed out", "turn", t.turn)
		return &TurnResult{Turn: t.turn, Bankroll: t.Gambler.Bankroll}, nil
	}

	if err := t.deal(); err != nil {
		return nil, err
	}

	gamblerHand := t.Gambler.FirstHand()
	dealerHand := t.Dealer.Hand()
	t.events.Publish(NewDealEvent(gamblerHand, dealerHand.UpCard()))

	gamblerBlackjack := gamblerHand.IsBlackjack()
	if gamblerBlackjack {
		t.publishf("%s has BLACKJACK!", t.Gambler.Name)
	}

	var turnOver bool
	var err error
	switch up := dealerHand.UpCard(); {
	case up.IsAce():
		turnOver, err = t.resolveAceUp(gamblerHand, dealerHand, gamblerBlackjack)
	case up.IsTenValue():
		turnOver = t.resolveTenUp(gamblerHand, dealerHand, gamblerBlackjack)
	default:
		// Dealer cannot have blackjack, so a gambler blackjack pays out
		// immediately.
		if gamblerBlackjack {
			t.publishf("%s wins %s.", t.Gambler.Name, BlackjackOdds)
			gamblerHand.Outcome = OutcomeWin
			gamblerHand.Payout(PayoutWager, BlackjackOdds)
			turnOver = true
		}
	}
	if err != nil {
		return nil, err
	}

	if !turnOver {
		if err := t.normalPlay(); err != nil {
			return nil, err
		}
	}

	result := t.discardHands()
	t.events.Publish(NewTurnEndEvent(t.turn, t.Gambler.Bankroll))
	return result, nil
}

// reviseWager vets the standing wager against the bankroll before the
// deal. An affordable wager may still be changed by choice; an
// unaffordable one forces a change. Zero cashes the gambler out.
func (t *Table) reviseWager() {
	g := t.Gambler
	if g.CanPlaceAutoWager() {
		if !t.agent.WantsWagerChange(g.Bankroll, g.AutoWager) {
			return
		}
	} else {
		t.publishf("Insufficient bankroll for the standing wager of %s.", money(g.AutoWager))
	}

	for {
		amount := t.agent.ReviseWager(g.Bankroll, g.AutoWager)
		if amount >= 0 && amount <= g.Bankroll {
			g.SetAutoWager(amount)
			return
		}
		t.publishf("Cannot wager %s with a bankroll of %s.", money(amount), money(g.Bankroll))
	}
}

// deal creates fresh hands, charges the standing wager, and deals four
// cards in casino order: gambler, dealer, gambler, dealer
func (t *Table) deal() error {
	gamblerHand := NewGamblerHand(t.Gambler, 1)
	t.Gambler.AddHand(gamblerHand)
	dealerHand := NewDealerHand()
	t.Dealer.hand = dealerHand

	if err := t.Gambler.PlaceHandWager(t.Gambler.AutoWager, gamblerHand); err != nil {
		return fmt.Errorf("placing wager: %w", err)
	}

	cards, err := t.shoe.DealCards(4)
	if err != nil {
		return fmt.Errorf("dealing opening hands: %w", err)
	}
	gamblerHand.AddCard(cards[0])
	dealerHand.AddCard(cards[1])
	gamblerHand.AddCard(cards[2])
	dealerHand.AddCard(cards[3])

	if gamblerHand.IsBlackjack() {
		gamblerHand.Status = StatusBlackjack
	}
	return nil
}

// resolveAceUp handles the insurance and even-money protocol when the
// dealer shows an Ace. The hole card's value was fixed at the deal; only
// its disclosure is deferred. Returns true when the turn is settled.
func (t *Table) resolveAceUp(gamblerHand *GamblerHand, dealerHand *DealerHand, gamblerBlackjack bool) (bool, error) {
	t.publish("Dealer is showing an Ace.")
	dealerBlackjack := dealerHand.IsBlackjack()

	if gamblerBlackjack {
		switch {
		case t.agent.WantsEvenMoney():
			t.publishf("%s takes even money.", t.Gambler.Name)
			gamblerHand.Outcome = OutcomeEvenMoney
			gamblerHand.Payout(PayoutWager, EvenMoneyOdds)
		case dealerBlackjack:
			t.revealDealerBlackjack(dealerHand)
			t.publish("Hand is a push.")
			gamblerHand.Outcome = OutcomePush
			gamblerHand.Payout(PayoutPush, Odds{})
		default:
			t.publishf("Dealer does not have BLACKJACK. %s wins %s.", t.Gambler.Name, BlackjackOdds)
			gamblerHand.Outcome = OutcomeWin
			gamblerHand.Payout(PayoutWager, BlackjackOdds)
		}
		return true, nil
	}

	canAfford := t.Gambler.CanPlaceInsuranceWager()
	if canAfford && t.agent.WantsInsurance() {
		if err := t.Gambler.PlaceInsuranceWager(gamblerHand); err != nil {
			return false, fmt.Errorf("placing insurance: %w", err)
		}
		if dealerBlackjack {
			t.revealDealerBlackjack(dealerHand)
			t.publishf("Insurance wager wins %s but the hand wager loses.", InsuranceOdds)
			gamblerHand.Outcome = OutcomeInsuranceWin
			gamblerHand.Payout(PayoutInsurance, InsuranceOdds)
			return true, nil
		}
		t.publish("Dealer does not have BLACKJACK. Insurance wager loses.")
		gamblerHand.LostInsurance = true
		return false, nil
	}

	if !canAfford {
		t.publish("Insufficient bankroll to place insurance wager.")
	}
	if dealerBlackjack {
		t.revealDealerBlackjack(dealerHand)
		t.publishf("%s loses the hand.", t.Gambler.Name)
		gamblerHand.Outcome = OutcomeLoss
		return true, nil
	}
	t.publish("Dealer does not have BLACKJACK.")
	return false, nil
}

// resolveTenUp handles the silent blackjack check when the dealer shows a
// ten-value card. No insurance is offered. Returns true when the turn is
// settled.
func (t *Table) resolveTenUp(gamblerHand *GamblerHand, dealerHand *DealerHand, gamblerBlackjack bool) bool {
	t.publish("Checking if the dealer has BLACKJACK...")

	if dealerHand.IsBlackjack() {
		t.revealDealerBlackjack(dealerHand)
		if gamblerBlackjack {
			t.publish("Hand is a push.")
			gamblerHand.Outcome = OutcomePush
			gamblerHand.Payout(PayoutPush, Odds{})
		} else {
			t.publishf("%s loses the hand.", t.Gambler.Name)
			gamblerHand.Outcome = OutcomeLoss
		}
		return true
	}

	t.publish("Dealer does not have BLACKJACK.")
	if gamblerBlackjack {
		// A blackjack hand is never offered further actions; settle it here
		// rather than letting it fall into the play loop.
		t.publishf("%s wins %s.", t.Gambler.Name, BlackjackOdds)
		gamblerHand.Outcome = OutcomeWin
		gamblerHand.Payout(PayoutWager, BlackjackOdds)
		return true
	}
	return false
}

// revealDealerBlackjack discloses the hole card on a dealer blackjack
func (t *Table) revealDealerBlackjack(dealerHand *DealerHand) {
	dealerHand.Status = StatusBlackjack
	t.publish("Dealer has BLACKJACK.")
	t.events.Publish(NewDealerHandEvent(dealerHand))
}

// normalPlay plays out every gambler hand, then the dealer, then settles
// each hand against the dealer's final hand
func (t *Table) normalPlay() error {
	// Splits append hands mid-loop; iterating by index picks them up in
	// creation order.
	for i := 0; i < len(t.Gambler.Hands()); i++ {
		hand := t.Gambler.Hands()[i]
		if err := hand.Play(t.shoe, t.agent, t.events); err != nil {
			return err
		}
	}

	dealerHand := t.Dealer.Hand()
	if err := dealerHand.Play(t.shoe, t.pause, t.events); err != nil {
		return err
	}

	for _, hand := range t.Gambler.Hands() {
		hand.SettleUp(dealerHand)
		t.events.Publish(NewHandSettledEvent(hand))
		if hand.Outcome == OutcomeLoss {
			t.publishf("Hand %d: %s hand wager lost.", hand.HandNumber, money(hand.Wager))
		}
	}
	return nil
}

// discardHands detaches all hands from both parties and packages them as
// the turn's result. Cards are abandoned, not reshuffled into the shoe.
func (t *Table) discardHands() *TurnResult {
	return &TurnResult{
		Turn:         t.turn,
		Played:       true,
		GamblerHands: t.Gambler.DiscardHands(),
		DealerHand:   t.Dealer.DiscardHand(),
		Bankroll:     t.Gambler.Bankroll,
	}
}

// pause blocks for the configured dealer delay using the injected clock
func (t *Table) pause() {
	if t.delay <= 0 {
		return
	}
	done := make(chan struct{})
	timer := t.clock.AfterFunc(t.delay, func() { close(done) })
	defer timer.Stop()
	<-done
}

func (t *Table) publish(text string) {
	t.events.Publish(NewMessageEvent(text))
}

func (t *Table) publishf(format string, args ...any) {
	t.publish(fmt.Sprintf(format, args...))
}
