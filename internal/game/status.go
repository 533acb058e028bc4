package game

import "fmt"

// HandStatus represents the lifecycle state of a hand
type HandStatus int

const (
	StatusPending HandStatus = iota
	StatusPlaying
	StatusBlackjack
	StatusStood
	StatusDoubled
	StatusBusted
)

// String returns the string representation of a hand status
func (s HandStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPlaying:
		return "Playing"
	case StatusBlackjack:
		return "Blackjack"
	case StatusStood:
		return "Stood"
	case StatusDoubled:
		return "Doubled"
	case StatusBusted:
		return "Busted"
	default:
		return fmt.Sprintf("HandStatus(%d)", int(s))
	}
}

// Final returns true once the hand can take no further action this turn
func (s HandStatus) Final() bool {
	switch s {
	case StatusBlackjack, StatusStood, StatusDoubled, StatusBusted:
		return true
	default:
		return false
	}
}

// Outcome represents the settled result of a gambler hand
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomePush
	OutcomeEvenMoney
	OutcomeInsuranceWin
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	case OutcomePush:
		return "Push"
	case OutcomeEvenMoney:
		return "Even Money"
	case OutcomeInsuranceWin:
		return "Insurance Win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Action represents a gambler decision on a hand
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSplit
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDouble:
		return "Double"
	case ActionSplit:
		return "Split"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
