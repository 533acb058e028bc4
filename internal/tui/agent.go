package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Agent collects the gambler's decisions through the TUI. It also
// observes the table's events and renders them into the game log, so a
// single subscription drives the whole display.
type Agent struct {
	model   *Model
	program *tea.Program
	logger  *log.Logger
	quit    bool
}

// NewAgent creates a TUI-backed agent
func NewAgent(logger *log.Logger) *Agent {
	model := NewModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	return &Agent{
		model:   model,
		program: program,
		logger:  logger.WithPrefix("tui"),
	}
}

// Run drives the terminal UI. Blocks until the gambler quits, so run the
// game loop on another goroutine.
func (a *Agent) Run() error {
	_, err := a.program.Run()
	return err
}

// Quit shuts the UI down
func (a *Agent) Quit() {
	a.model.Quit()
}

// HasQuit reports whether the gambler quit the UI mid-game
func (a *Agent) HasQuit() bool {
	return a.quit
}

// ChooseAction prompts for an action on the hand. Unrecognized input is
// re-prompted; quitting stands the hand so the turn can settle before
// the game loop notices the quit.
func (a *Agent) ChooseAction(hand *game.GamblerHand, actions []game.Action) game.Action {
	question := fmt.Sprintf("Hand %d: %s (%s). %s?",
		hand.HandNumber, formatCards(hand.Cards()), hand.DisplayTotal(), formatActions(actions))

	for {
		input, err := a.promptFor(question)
		if err != nil {
			a.quit = true
			return game.ActionStand
		}
		action, err := parseAction(input, actions)
		if err != nil {
			a.addLogEntry(ErrorStyle.Render(err.Error()))
			continue
		}
		return action
	}
}

// WantsEvenMoney prompts the even money offer
func (a *Agent) WantsEvenMoney() bool {
	return a.promptYesNo("Take even money?")
}

// WantsInsurance prompts the insurance offer
func (a *Agent) WantsInsurance() bool {
	return a.promptYesNo("Place an insurance wager?")
}

// WantsWagerChange asks whether to change the standing wager before the
// deal. Quitting answers yes so ReviseWager can cash the gambler out.
func (a *Agent) WantsWagerChange(bankroll, autoWager float64) bool {
	if a.quit {
		return true
	}
	question := fmt.Sprintf("Bankroll $%.2f, wagering $%.2f per turn. Change it? (y/n)", bankroll, autoWager)
	for {
		input, err := a.promptFor(question)
		if err != nil {
			a.quit = true
			return true
		}
		answer, err := parseYesNo(input)
		if err != nil {
			a.addLogEntry(ErrorStyle.Render(err.Error()))
			continue
		}
		return answer
	}
}

// ReviseWager prompts for a new standing wager. Zero cashes out, and a
// quit cashes out too.
func (a *Agent) ReviseWager(bankroll, autoWager float64) float64 {
	if a.quit {
		return 0
	}
	question := fmt.Sprintf("New wager (bankroll $%.2f, 0 cashes out)?", bankroll)
	for {
		input, err := a.promptFor(question)
		if err != nil {
			a.quit = true
			return 0
		}
		amount, err := parseWager(input)
		if err != nil {
			a.addLogEntry(ErrorStyle.Render(err.Error()))
			continue
		}
		return amount
	}
}

func (a *Agent) promptYesNo(question string) bool {
	for {
		input, err := a.promptFor(question + " (y/n)")
		if err != nil {
			a.quit = true
			return false
		}
		answer, err := parseYesNo(input)
		if err != nil {
			a.addLogEntry(ErrorStyle.Render(err.Error()))
			continue
		}
		return answer
	}
}

// promptFor shows the question, waits for a line, and clears the prompt.
// Once the gambler has quit every later prompt short-circuits, so a turn
// already in flight can wind down without blocking.
func (a *Agent) promptFor(question string) (string, error) {
	if a.quit {
		return "", ErrQuit
	}
	a.program.Send(PromptMsg{Question: question})
	input, err := a.model.WaitForInput()
	a.program.Send(PromptMsg{})
	return input, err
}

func (a *Agent) addLogEntry(text string) {
	a.program.Send(LogEntryMsg{Text: text})
}

// HandleEvent implements game.Observer by rendering events into the log
func (a *Agent) HandleEvent(event game.GameEvent) {
	if text := FormatEvent(event); text != "" {
		a.addLogEntry(text)
	}
}

// FormatEvent renders a game event as a styled log line. Returns the
// empty string for events with no visible representation.
func FormatEvent(event game.GameEvent) string {
	switch e := event.(type) {
	case game.TurnStartEvent:
		return HeaderStyle.Render(fmt.Sprintf(" Turn %d ", e.Turn)) +
			InfoStyle.Render(fmt.Sprintf("  bankroll $%.2f", e.Bankroll))
	case game.DealEvent:
		return fmt.Sprintf("Dealt %s (%s) against dealer %s. Wager $%.2f.",
			formatCards(e.GamblerCards), e.GamblerTotal, formatCard(e.DealerUpCard), e.Wager)
	case game.MessageEvent:
		return e.Text
	case game.ActionEvent:
		return ActionsStyle.Render(fmt.Sprintf("Hand %d: %s", e.HandNumber, e.Action))
	case game.DealerHandEvent:
		return fmt.Sprintf("Dealer shows %s (%s)", formatCards(e.Cards), e.Total)
	case game.PayoutEvent:
		return SuccessStyle.Render(e.Message) +
			InfoStyle.Render(fmt.Sprintf("  bankroll $%.2f", e.Bankroll))
	case game.HandSettledEvent:
		return HandInfoStyle.Render(fmt.Sprintf("Hand %d: %s", e.HandNumber, e.Outcome))
	case game.TurnEndEvent:
		return InfoStyle.Render(fmt.Sprintf("Turn %d over. Bankroll $%.2f.", e.Turn, e.Bankroll))
	}
	return ""
}

func formatCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func formatCards(cards []deck.Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = formatCard(c)
	}
	return strings.Join(rendered, " ")
}

func formatActions(actions []game.Action) string {
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.String()
	}
	return strings.Join(names, ", ")
}

// parseAction matches input against the offered actions. Single-letter
// shortcuts and full names are both accepted.
func parseAction(input string, actions []game.Action) (game.Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return 0, errors.New("Enter an action.")
	}
	for _, action := range actions {
		name := strings.ToLower(action.String())
		if normalized == name || normalized == name[:1] {
			return action, nil
		}
	}
	return 0, fmt.Errorf("Unrecognized action %q.", input)
}

func parseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("Answer y or n, not %q.", input)
}

func parseWager(input string) (float64, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(input), "$")
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("Invalid wager %q.", input)
	}
	return amount, nil
}
