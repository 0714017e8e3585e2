package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/randutil"
	"github.com/cardtable/hearts/internal/strategy"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestGame(t *testing.T, seed int64) *game.Game {
	t.Helper()
	logger := testLogger()

	var players [game.NumPlayers]game.Player
	kinds := [game.NumPlayers]string{
		strategy.KindHuman, strategy.KindStandard, strategy.KindAdvanced, strategy.KindCounting,
	}
	for seat, kind := range kinds {
		player, err := strategy.New(kind, seat, logger)
		require.NoError(t, err)
		players[seat] = player
	}
	return game.New(randutil.New(seed), players, logger)
}

// newDealtModel deals a hand and returns the model ready for input.
func newDealtModel(t *testing.T, seed int64) *Model {
	t.Helper()
	m := NewModel(newTestGame(t, seed), testLogger())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(dealMsg{})
	require.NoError(t, m.Err())
	return m
}

// newHumanLeadModel searches seeds until the human is dealt the two of
// clubs, so the opening move is theirs.
func newHumanLeadModel(t *testing.T) *Model {
	t.Helper()
	for seed := int64(1); seed < 128; seed++ {
		m := newDealtModel(t, seed)
		if m.game.Leader() == game.HumanSeat {
			return m
		}
	}
	t.Fatal("no seed dealt the two of clubs to the human seat")
	return nil
}

// playAccepted finds and plays a card the engine accepts.
func playAccepted(t *testing.T, m *Model) {
	t.Helper()
	before := m.handSize()
	for i := 0; i < before; i++ {
		m.cursor = i
		m.confirm()
		require.NoError(t, m.Err())
		if m.handSize() < before {
			return
		}
	}
	t.Fatalf("no card in the hand was accepted (last error %q)", m.errMsg)
}

func TestDealReachesHumanTurn(t *testing.T) {
	m := newDealtModel(t, 1)

	assert.Equal(t, game.AwaitingHuman, m.game.State())
	assert.Equal(t, 13, m.handSize())
	assert.NotEmpty(t, m.message)
}

func TestCursorStaysWithinHand(t *testing.T) {
	m := newDealtModel(t, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor, "cursor must not move past the first card")

	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 12, m.cursor, "cursor must not move past the last card")
}

func TestOpeningMustBeTwoOfClubs(t *testing.T) {
	m := newHumanLeadModel(t)

	cards := m.game.Hand(game.HumanSeat).Cards()
	for i, card := range cards {
		if card != deck.TwoOfClubs {
			m.cursor = i
			break
		}
	}
	m.confirm()

	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, 13, m.handSize(), "a rejected card stays in the hand")

	for i, card := range cards {
		if card == deck.TwoOfClubs {
			m.cursor = i
			break
		}
	}
	m.confirm()
	assert.Empty(t, m.errMsg)
	assert.Equal(t, 12, m.handSize())
}

func TestEnterContinuesAfterTrick(t *testing.T) {
	m := newDealtModel(t, 1)

	playAccepted(t, m)
	require.Equal(t, game.RoundEnd, m.game.State())

	m.confirm()
	require.NoError(t, m.Err())
	assert.Equal(t, game.AwaitingHuman, m.game.State())
}

func TestModelPlaysFullGame(t *testing.T) {
	m := newDealtModel(t, 3)

	for i := 0; i < 10000; i++ {
		switch m.game.State() {
		case game.AwaitingHuman:
			playAccepted(t, m)
		case game.RoundEnd, game.HandStart:
			m.confirm()
			require.NoError(t, m.Err())
		case game.GameEnd:
			assert.NotEmpty(t, m.game.Scores())
			return
		}
	}
	t.Fatal("game did not finish")
}

func TestViewShowsHandAndMessage(t *testing.T) {
	m := newDealtModel(t, 1)

	view := m.View()
	assert.Contains(t, view, "Hearts — hand 1")
	assert.Contains(t, view, "Your hand:")
	assert.Contains(t, view, "On the table:")
}

func TestViewEmptyWhileQuitting(t *testing.T) {
	m := newDealtModel(t, 1)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "", m.View())
}

func TestTrickLogRecordsWinner(t *testing.T) {
	m := newDealtModel(t, 1)
	playAccepted(t, m)

	require.NotEmpty(t, m.gameLog)
	last := m.gameLog[len(m.gameLog)-1]
	assert.True(t, strings.Contains(last, "You") || strings.Contains(last, "Player"),
		"trick log should name the winner: %q", last)
}
