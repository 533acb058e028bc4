package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for table domain events
const (
	EventTypeTurnStart   EventType = "turn_start"
	EventTypeDeal        EventType = "deal"
	EventTypeMessage     EventType = "message"
	EventTypeAction      EventType = "action"
	EventTypeDealerHand  EventType = "dealer_hand"
	EventTypePayout      EventType = "payout"
	EventTypeHandSettled EventType = "hand_settled"
	EventTypeTurnEnd     EventType = "turn_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a turn
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// TurnStartEvent is published when a new turn begins
type TurnStartEvent struct {
	Turn      int
	Bankroll  float64
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(turn int, bankroll float64) TurnStartEvent {
	return TurnStartEvent{Turn: turn, Bankroll: bankroll, timestamp: time.Now()}
}

// DealEvent is published once the opening hands are dealt
type DealEvent struct {
	GamblerCards []deck.Card
	GamblerTotal string
	Wager        float64
	DealerUpCard deck.Card
	timestamp    time.Time
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }
func (e DealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealEvent creates a new deal event
func NewDealEvent(hand *GamblerHand, upCard deck.Card) DealEvent {
	return DealEvent{
		GamblerCards: hand.Cards(),
		GamblerTotal: hand.DisplayTotal(),
		Wager:        hand.Wager,
		DealerUpCard: upCard,
		timestamp:    time.Now(),
	}
}

// MessageEvent carries table talk: blackjack announcements, insurance
// outcomes, dealer status lines
type MessageEvent struct {
	Text      string
	timestamp time.Time
}

func (e MessageEvent) EventType() EventType { return EventTypeMessage }
func (e MessageEvent) Timestamp() time.Time { return e.timestamp }

// NewMessageEvent creates a new message event
func NewMessageEvent(text string) MessageEvent {
	return MessageEvent{Text: text, timestamp: time.Now()}
}

// ActionEvent is published when the gambler acts on a hand
type ActionEvent struct {
	HandNumber int
	Action     Action
	timestamp  time.Time
}

func (e ActionEvent) EventType() EventType { return EventTypeAction }
func (e ActionEvent) Timestamp() time.Time { return e.timestamp }

// NewActionEvent creates a new action event
func NewActionEvent(handNumber int, action Action) ActionEvent {
	return ActionEvent{HandNumber: handNumber, Action: action, timestamp: time.Now()}
}

// DealerHandEvent is published when the dealer's hand is disclosed or
// changes during dealer play
type DealerHandEvent struct {
	Cards     []deck.Card
	Total     string
	Status    HandStatus
	timestamp time.Time
}

func (e DealerHandEvent) EventType() EventType { return EventTypeDealerHand }
func (e DealerHandEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerHandEvent creates a new dealer hand event
func NewDealerHandEvent(hand *DealerHand) DealerHandEvent {
	return DealerHandEvent{
		Cards:     hand.Cards(),
		Total:     hand.DisplayTotal(),
		Status:    hand.Status,
		timestamp: time.Now(),
	}
}

// PayoutEvent is published for each bankroll credit: winnings, wager
// reclaims and insurance reclaims are distinct entries
type PayoutEvent struct {
	Amount    float64
	Message   string
	Bankroll  float64
	timestamp time.Time
}

func (e PayoutEvent) EventType() EventType { return EventTypePayout }
func (e PayoutEvent) Timestamp() time.Time { return e.timestamp }

// NewPayoutEvent creates a new payout event
func NewPayoutEvent(amount float64, message string, bankroll float64) PayoutEvent {
	return PayoutEvent{Amount: amount, Message: message, Bankroll: bankroll, timestamp: time.Now()}
}

// HandSettledEvent is published once a gambler hand has a final outcome
type HandSettledEvent struct {
	HandNumber int
	Outcome    Outcome
	Wager      float64
	timestamp  time.Time
}

func (e HandSettledEvent) EventType() EventType { return EventTypeHandSettled }
func (e HandSettledEvent) Timestamp() time.Time { return e.timestamp }

// NewHandSettledEvent creates a new hand settled event
func NewHandSettledEvent(hand *GamblerHand) HandSettledEvent {
	return HandSettledEvent{
		HandNumber: hand.HandNumber,
		Outcome:    hand.Outcome,
		Wager:      hand.Wager,
		timestamp:  time.Now(),
	}
}

// TurnEndEvent is published after hands are discarded
type TurnEndEvent struct {
	Turn      int
	Bankroll  float64
	timestamp time.Time
}

func (e TurnEndEvent) EventType() EventType { return EventTypeTurnEnd }
func (e TurnEndEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnEndEvent creates a new turn end event
func NewTurnEndEvent(turn int, bankroll float64) TurnEndEvent {
	return TurnEndEvent{Turn: turn, Bankroll: bankroll, timestamp: time.Now()}
}

// Observer receives game events as they are published
type Observer interface {
	HandleEvent(event GameEvent)
}

// Publisher fans events out to registered observers. The zero value is
// usable; a nil publisher drops events.
type Publisher struct {
	observers []Observer
}

// Subscribe registers an observer for all future events
func (p *Publisher) Subscribe(o Observer) {
	p.observers = append(p.observers, o)
}

// Publish delivers the event to every observer in subscription order
func (p *Publisher) Publish(event GameEvent) {
	if p == nil {
		return
	}
	for _, o := range p.observers {
		o.HandleEvent(event)
	}
}
