package game

// Agent makes the gambler's decisions: hand actions, side bets and wager
// revisions. A human agent gathers these from an interface; automated
// agents compute them. The core only ever receives validated choices, so
// re-prompting on bad input is the input layer's concern.
type Agent interface {
	// ChooseAction picks one of the offered actions for the hand. The
	// offered slice always contains Hit and Stand; Double and Split appear
	// only when the hand is eligible.
	ChooseAction(hand *GamblerHand, actions []Action) Action

	// WantsEvenMoney is asked when the gambler holds blackjack against a
	// dealer Ace: a guaranteed 1:1 now versus 3:2 or a push later.
	WantsEvenMoney() bool

	// WantsInsurance is asked when the dealer shows an Ace, the gambler
	// lacks blackjack and the side bet is affordable.
	WantsInsurance() bool

	// WantsWagerChange is asked before each deal while the standing wager
	// is still affordable.
	WantsWagerChange(bankroll, autoWager float64) bool

	// ReviseWager returns a new standing wager. Zero cashes the gambler
	// out. Called when a change is wanted, or forced when the bankroll no
	// longer covers the standing wager.
	ReviseWager(bankroll, autoWager float64) float64
}
