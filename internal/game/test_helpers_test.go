package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// scriptedAgent replays a fixed sequence of decisions. Once the action
// script is exhausted it stands, which keeps a misconfigured test from
// drawing the shoe dry.
type scriptedAgent struct {
	actions     []Action
	evenMoney   bool
	insurance   bool
	wagerChange bool
	newWager    float64
}

func (a *scriptedAgent) ChooseAction(hand *GamblerHand, actions []Action) Action {
	if len(a.actions) == 0 {
		return ActionStand
	}
	action := a.actions[0]
	a.actions = a.actions[1:]
	return action
}

func (a *scriptedAgent) WantsEvenMoney() bool { return a.evenMoney }
func (a *scriptedAgent) WantsInsurance() bool { return a.insurance }

func (a *scriptedAgent) WantsWagerChange(bankroll, autoWager float64) bool {
	return a.wagerChange
}

func (a *scriptedAgent) ReviseWager(bankroll, autoWager float64) float64 {
	return a.newWager
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

func handWith(cards ...deck.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// eventRecorder captures published events for assertions
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) HandleEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) messages() []string {
	var texts []string
	for _, e := range r.events {
		if m, ok := e.(MessageEvent); ok {
			texts = append(texts, m.Text)
		}
	}
	return texts
}
