package server

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/randutil"
	"github.com/cardtable/hearts/internal/server/storage"
	"github.com/cardtable/hearts/internal/strategy"
)

// Sessions manages game sessions on top of a storage backend. Each
// request loads the session's snapshot, rebuilds the game with fresh
// strategies, advances it as far as it can go without the human, and
// saves the result back. Nothing is kept between requests.
type Sessions struct {
	store  storage.Store
	lineup [game.NumPlayers]string
	logger *log.Logger

	// seedFn provides the seed for each game's dealer; replaceable in
	// tests for deterministic deals.
	seedFn func() int64
}

// NewSessions creates a session manager playing the given lineup.
func NewSessions(store storage.Store, lineup [game.NumPlayers]string, logger *log.Logger) *Sessions {
	return &Sessions{
		store:  store,
		lineup: lineup,
		logger: logger.WithPrefix("session"),
		seedFn: func() int64 { return time.Now().UnixNano() },
	}
}

func (m *Sessions) newLineup() ([game.NumPlayers]game.Player, error) {
	var players [game.NumPlayers]game.Player
	for seat, kind := range m.lineup {
		player, err := strategy.New(kind, seat, m.logger)
		if err != nil {
			return players, fmt.Errorf("seat %d: %w", seat, err)
		}
		players[seat] = player
	}
	return players, nil
}

// NewGame creates a fresh session, deals the first hand and plays up
// to the human's turn.
func (m *Sessions) NewGame(ctx context.Context) (*GameStateData, error) {
	players, err := m.newLineup()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	g := game.New(randutil.New(m.seedFn()), players, m.logger)
	m.logger.Info("new game", "session", id)

	view, err := m.advance(g, id)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, id, g.Snapshot()); err != nil {
		return nil, err
	}
	return view, nil
}

// Resume loads an existing session and advances it up to the human's
// turn. Loading a session whose hand or game already ended leaves it
// there; the client continues with Continue.
func (m *Sessions) Resume(ctx context.Context, id string) (*GameStateData, error) {
	g, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var view *GameStateData
	switch g.State() {
	case game.HandStart:
		view, err = m.advance(g, id)
		if err != nil {
			return nil, err
		}
	case game.AwaitingHuman:
		view = m.view(g, id, "Your turn.")
	case game.RoundEnd:
		view = m.view(g, id, game.RoundEndMessage(g.State(), g.CurrentTrick().Winner()))
	case game.GameEnd:
		view = m.view(g, id, game.RoundEndMessage(g.State(), -1))
	}

	if err := m.store.Save(ctx, id, g.Snapshot()); err != nil {
		return nil, err
	}
	return view, nil
}

// Continue moves the session past a finished trick or hand: it plays
// the next trick up to the human, dealing a new hand first when the
// previous one ended.
func (m *Sessions) Continue(ctx context.Context, id string) (*GameStateData, error) {
	g, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var view *GameStateData
	switch g.State() {
	case game.HandStart:
		view, err = m.advance(g, id)
	case game.RoundEnd:
		if err = g.PlayTillHuman(); err == nil {
			view = m.view(g, id, "Your turn.")
		}
	case game.AwaitingHuman:
		view = m.view(g, id, "Your turn.")
	case game.GameEnd:
		view = m.view(g, id, game.RoundEndMessage(g.State(), -1))
	}
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, id, g.Snapshot()); err != nil {
		return nil, err
	}
	return view, nil
}

// PlayCard applies the human's card. A rejected card returns a view
// with MoveResult set and does not advance the game. An accepted card
// finishes the trick and plays on until the human is needed again.
func (m *Sessions) PlayCard(ctx context.Context, id, code string) (*GameStateData, error) {
	g, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.State() != game.AwaitingHuman {
		return nil, fmt.Errorf("session %s is not waiting for a card", id)
	}

	card, parseErr := deck.ParseCode(code)
	result := game.MoveBadCard
	if parseErr == nil {
		result = g.ProcessHumanMove(card)
	}
	if result != game.MoveOK {
		view := m.view(g, id, result.Message())
		view.MoveResult = result.String()
		return view, nil
	}

	winner, err := g.PlayTillEnd()
	if err != nil {
		return nil, err
	}
	view := m.view(g, id, game.RoundEndMessage(g.State(), winner))

	if err := m.store.Save(ctx, id, g.Snapshot()); err != nil {
		return nil, err
	}
	return view, nil
}

// Delete drops the session.
func (m *Sessions) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *Sessions) load(ctx context.Context, id string) (*game.Game, error) {
	snap, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	players, err := m.newLineup()
	if err != nil {
		return nil, err
	}
	g, err := game.Restore(snap, randutil.New(m.seedFn()), players, m.logger)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return g, nil
}

// advance deals a new hand and plays up to the human's first turn.
func (m *Sessions) advance(g *game.Game, id string) (*GameStateData, error) {
	if err := g.StartNewHand(); err != nil {
		return nil, err
	}
	leader := g.Leader()
	if leader != game.HumanSeat {
		if err := g.PlayTillHuman(); err != nil {
			return nil, err
		}
	}

	return m.view(g, id, game.OpeningMessage(leader)), nil
}

// view renders the human-visible state of the game.
func (m *Sessions) view(g *game.Game, id, message string) *GameStateData {
	trick := g.CurrentTrick()
	view := &GameStateData{
		SessionID:    id,
		State:        g.State().String(),
		HandNumber:   g.HandNumber(),
		Players:      m.lineup,
		Trick:        TrickView{Leader: trick.Leader},
		Leader:       g.Leader(),
		HeartsBroken: g.HeartsBroken(),
		OpenTwoClubs: g.NeedTwoOfClubs(),
		HandPoints:   g.HandPoints(),
		Totals:       g.Totals(),
		Scores:       g.Scores(),
		Message:      message,
	}
	for seat, card := range trick.Cards {
		if !card.IsZero() {
			view.Trick.Cards[seat] = card.Code()
		}
	}
	for _, card := range g.Hand(game.HumanSeat).Cards() {
		view.Hand = append(view.Hand, card.Code())
	}
	return view
}
