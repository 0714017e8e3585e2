// Package tui is the interactive terminal table for playing Hearts
// against the computer strategies. It drives a local game engine
// directly; every keypress advances the same state machine the
// WebSocket server exposes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Model is the Bubble Tea model for a Hearts table.
type Model struct {
	game   *game.Game
	logger *log.Logger

	logViewport viewport.Model
	gameLog     []string

	// cursor indexes the human's hand, kept clamped to its size.
	cursor   int
	message  string
	errMsg   string
	err      error
	quitting bool

	width       int
	height      int
	initialized bool
}

// dealMsg asks the model to deal the next hand.
type dealMsg struct{}

// NewModel creates a table model around a fresh game.
func NewModel(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &Model{
		game:        g,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
	}
}

// Init deals the first hand.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return dealMsg{} }
}

// Err returns the engine error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Update handles messages in the TUI.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dealMsg:
		m.deal()
		if m.err != nil {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.handSize()-1 {
				m.cursor++
			}
		case "up", "k":
			m.logViewport.ScrollUp(1)
		case "down", "j":
			m.logViewport.ScrollDown(1)
		case "enter", " ":
			if cmd := m.confirm(); cmd != nil {
				return m, cmd
			}
			if m.err != nil {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// confirm advances the game on enter, according to its state.
func (m *Model) confirm() tea.Cmd {
	m.errMsg = ""
	switch m.game.State() {
	case game.AwaitingHuman:
		m.playSelected()
	case game.RoundEnd:
		m.continueRound()
	case game.HandStart:
		m.deal()
	case game.GameEnd:
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	}
	return nil
}

func (m *Model) deal() {
	if err := m.game.StartNewHand(); err != nil {
		m.err = err
		return
	}
	m.appendLog(fmt.Sprintf("--- Hand %d ---", m.game.HandNumber()))

	leader := m.game.Leader()
	m.message = game.OpeningMessage(leader)
	if leader != game.HumanSeat {
		if err := m.game.PlayTillHuman(); err != nil {
			m.err = err
			return
		}
	}
	m.cursor = 0
}

func (m *Model) playSelected() {
	hand := m.game.Hand(game.HumanSeat).Cards()
	if m.cursor >= len(hand) {
		return
	}
	card := hand[m.cursor]

	if result := m.game.ProcessHumanMove(card); result != game.MoveOK {
		m.errMsg = result.Message()
		return
	}

	winner, err := m.game.PlayTillEnd()
	if err != nil {
		m.err = err
		return
	}
	m.logTrick()

	ended := game.RoundEndMessage(m.game.State(), winner)
	switch {
	case m.game.State() == game.GameEnd:
		m.finishHandLog()
		m.message = ended + " Press enter to leave the table."
	case winner < 0:
		m.finishHandLog()
		m.message = ended + " Press enter to deal the next one."
	default:
		m.message = ended + " Press enter to continue."
	}
	if m.cursor >= m.handSize() && m.cursor > 0 {
		m.cursor = m.handSize() - 1
	}
}

func (m *Model) continueRound() {
	if m.game.State() == game.HandStart || m.game.State() == game.GameEnd {
		return
	}
	if err := m.game.PlayTillHuman(); err != nil {
		m.err = err
		return
	}
	m.message = "Your turn."
}

func (m *Model) logTrick() {
	trick := m.game.CurrentTrick()
	var parts []string
	for offset := 0; offset < game.NumPlayers; offset++ {
		seat := (trick.Leader + offset) % game.NumPlayers
		parts = append(parts, fmt.Sprintf("%s %s", game.SeatName(seat), trick.Cards[seat]))
	}
	winner := trick.Winner()
	entry := fmt.Sprintf("%s → %s", strings.Join(parts, ", "), game.SeatName(winner))
	if points := trick.Points(); points > 0 {
		entry += fmt.Sprintf(" (+%d)", points)
	}
	m.appendLog(entry)
}

func (m *Model) finishHandLog() {
	totals := m.game.Totals()
	scores := m.game.Scores()
	last := scores[len(scores)-1]
	m.appendLog(fmt.Sprintf("Hand over: %s", scoreLine(last)))
	m.appendLog(fmt.Sprintf("Totals:    %s", scoreLine(totals)))
}

func (m *Model) appendLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) handSize() int {
	return m.game.Hand(game.HumanSeat).Len()
}

// View renders the table.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Hearts — hand %d", m.game.HandNumber())))
	b.WriteString("\n\n")

	b.WriteString(m.renderScores())
	b.WriteString("\n")
	b.WriteString(m.renderLogPane())
	b.WriteString("\n")
	b.WriteString(m.renderTrick())
	b.WriteString("\n")
	b.WriteString(m.renderHand())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
	} else {
		b.WriteString(MessageStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("←/→ select · enter play · ↑/↓ scroll log · q quit"))
	return b.String()
}

func (m *Model) renderScores() string {
	totals := m.game.Totals()
	points := m.game.HandPoints()
	var parts []string
	for seat := 0; seat < game.NumPlayers; seat++ {
		parts = append(parts, fmt.Sprintf("%s %d (%d)", game.SeatName(seat), totals[seat], points[seat]))
	}
	return ScoreStyle.Render(strings.Join(parts, "   "))
}

func (m *Model) renderLogPane() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	m.logViewport.Width = width
	m.logViewport.Height = 6
	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(width).
		Render(m.logViewport.View())
}

func (m *Model) renderTrick() string {
	trick := m.game.CurrentTrick()
	var b strings.Builder
	b.WriteString(SeatLabelStyle.Render("On the table:"))
	b.WriteString("\n")
	for seat := 0; seat < game.NumPlayers; seat++ {
		label := fmt.Sprintf("  %-9s", game.SeatName(seat))
		b.WriteString(SeatLabelStyle.Render(label))
		if trick.Played(seat) {
			b.WriteString(renderCard(trick.Cards[seat], false))
		} else {
			b.WriteString(HelpStyle.Render("·"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderHand() string {
	cards := m.game.Hand(game.HumanSeat).Cards()
	var parts []string
	for i, card := range cards {
		parts = append(parts, renderCard(card, i == m.cursor && m.game.State() == game.AwaitingHuman))
	}
	return "Your hand: " + strings.Join(parts, " ")
}

func renderCard(card deck.Card, selected bool) string {
	style := BlackCardStyle
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		style = RedCardStyle
	}
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(card.String())
}

func scoreLine(points [game.NumPlayers]int) string {
	var parts []string
	for seat, p := range points {
		parts = append(parts, fmt.Sprintf("%s %d", game.SeatName(seat), p))
	}
	return strings.Join(parts, ", ")
}

// Run plays the game in the terminal until it ends or the user quits.
func Run(g *game.Game, logger *log.Logger) error {
	model := NewModel(g, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
