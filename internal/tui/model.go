// Package tui renders the table in the terminal and collects the
// gambler's decisions through a prompt pane.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrQuit is returned from WaitForInput when the gambler quits the UI
var ErrQuit = errors.New("gambler quit")

// Model is the Bubble Tea model for the table screen: a scrolling game
// log on top and a prompt pane below it
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	promptInput textinput.Model

	// State
	gameLog     []string
	prompt      string
	input       chan inputResult
	quitSignal  chan bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

type inputResult struct {
	text string
	quit bool
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// LogEntryMsg appends a line to the game log
type LogEntryMsg struct {
	Text string
}

// PromptMsg sets the question shown above the input field. An empty
// question hides the prompt while the dealer is acting.
type PromptMsg struct {
	Question string
}

// NewModel creates a model for interactive play
func NewModel(logger *log.Logger) *Model {
	return NewModelWithOptions(logger, false)
}

// NewModelWithOptions creates a model with test mode option. In test
// mode no terminal is driven; log entries are captured for assertions
// and inputs are injected.
func NewModelWithOptions(logger *log.Logger, testMode bool) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Waiting for the dealer..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		promptInput: ti,
		gameLog:     []string{},
		input:       make(chan inputResult, 1),
		quitSignal:  make(chan bool, 1),
		focusedPane: 1,
		testMode:    testMode,
		capturedLog: []string{},
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case LogEntryMsg:
		m.AddLogEntry(msg.Text)
		m.logViewport.GotoBottom()

	case PromptMsg:
		m.prompt = msg.Question

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.sendInput(inputResult{quit: true})
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.promptInput.Focus()
			} else {
				m.focusedPane = 0
				m.promptInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 && m.prompt != "" {
				text := strings.TrimSpace(m.promptInput.Value())
				m.sendInput(inputResult{text: text})
				m.promptInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.promptInput, cmd = m.promptInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// sendInput forwards a submitted line without blocking the update loop.
// A stale pending line is dropped in favor of the newer one.
func (m *Model) sendInput(result inputResult) {
	select {
	case m.input <- result:
	default:
		select {
		case <-m.input:
		default:
		}
		m.input <- result
	}
}

// View renders the screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	promptContent := m.renderPromptPane()
	promptHeight := lipgloss.Height(promptContent)

	promptWidth := m.width - 2
	if promptWidth < 1 {
		promptWidth = 1
	}
	promptPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(promptWidth).
		Render(promptContent)

	logWidth := m.width - 4
	logHeight := m.height - promptHeight - 6
	if logWidth < 1 {
		logWidth = 1
	}
	if logHeight < 1 {
		logHeight = 1
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight

	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, logPane, promptPane)
}

func (m *Model) renderPromptPane() string {
	var content strings.Builder

	if m.prompt != "" {
		content.WriteString(ActionsStyle.Render(m.prompt))
		m.promptInput.Placeholder = ""
	} else {
		content.WriteString(HandInfoStyle.Render("Waiting..."))
		m.promptInput.Placeholder = "Waiting for the dealer..."
	}
	content.WriteString("\n")
	content.WriteString(m.promptInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return content.String()
}

// AddLogEntry appends a line to the game log
func (m *Model) AddLogEntry(text string) {
	m.gameLog = append(m.gameLog, text)
	if m.testMode {
		m.capturedLog = append(m.capturedLog, text)
	}
}

// WaitForInput blocks until the gambler submits a line or quits
func (m *Model) WaitForInput() (string, error) {
	result := <-m.input
	if result.quit {
		return "", ErrQuit
	}
	return result.text, nil
}

// InjectInput feeds a line as if the gambler typed it. Test mode only.
func (m *Model) InjectInput(text string) error {
	if !m.testMode {
		return fmt.Errorf("input injection requires test mode")
	}
	m.input <- inputResult{text: text}
	return nil
}

// IsTestMode reports whether the model was built in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// GetCapturedLog returns captured log entries in test mode, nil otherwise
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	return m.capturedLog
}

// Quit signals the UI to shut down
func (m *Model) Quit() {
	select {
	case m.quitSignal <- true:
	default:
	}
}
