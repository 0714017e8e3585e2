package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/deck"
)

// Snapshot is the serializable image of a Game. Instead of persisting
// the strategies' belief state, it records each seat's initially dealt
// cards and the completed tricks of the current hand; Restore replays
// those through fresh strategies, which reconstructs the exact same
// belief state and therefore identical subsequent play.
type Snapshot struct {
	HandNumber     int                  `json:"handNumber"`
	State          State                `json:"state"`
	Players        [NumPlayers]string   `json:"players"`
	Scores         [][NumPlayers]int    `json:"scores,omitempty"`
	HandPoints     [NumPlayers]int      `json:"handPoints"`
	HeartsBroken   bool                 `json:"heartsBroken"`
	NeedTwoOfClubs bool                 `json:"needTwoOfClubs"`
	Leader         int                  `json:"leader"`
	InitialHands   [NumPlayers][]string `json:"initialHands,omitempty"`
	Tricks         []TrickSnapshot      `json:"tricks,omitempty"`
	Current        TrickSnapshot        `json:"current"`
}

// TrickSnapshot is the wire form of a Trick. An empty string marks a
// seat that has not played.
type TrickSnapshot struct {
	Cards  [NumPlayers]string `json:"cards"`
	Lead   int                `json:"lead"`
	Leader int                `json:"leader"`
}

func snapshotTrick(t Trick) TrickSnapshot {
	ts := TrickSnapshot{Lead: int(t.Lead), Leader: t.Leader}
	for seat, card := range t.Cards {
		if !card.IsZero() {
			ts.Cards[seat] = card.Code()
		}
	}
	return ts
}

func restoreTrick(ts TrickSnapshot) (Trick, error) {
	t := Trick{Lead: deck.Suit(ts.Lead), Leader: ts.Leader}
	if !t.Lead.Valid() {
		return Trick{}, fmt.Errorf("invalid lead suit %d", ts.Lead)
	}
	if ts.Leader < 0 || ts.Leader >= NumPlayers {
		return Trick{}, fmt.Errorf("invalid trick leader %d", ts.Leader)
	}
	for seat, code := range ts.Cards {
		if code == "" {
			continue
		}
		card, err := deck.ParseCode(code)
		if err != nil {
			return Trick{}, err
		}
		t.Cards[seat] = card
	}
	return t, nil
}

// Snapshot captures the game for persistence.
func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		HandNumber:     g.handNumber,
		State:          g.state,
		Scores:         g.Scores(),
		HandPoints:     g.handPoints,
		HeartsBroken:   g.heartsBroken,
		NeedTwoOfClubs: g.needTwoOfClubs,
		Leader:         g.leader,
		Current:        snapshotTrick(g.trick),
	}
	for seat := range g.players {
		snap.Players[seat] = g.players[seat].Kind()
	}
	for seat, cards := range g.initialHands {
		for _, card := range cards {
			snap.InitialHands[seat] = append(snap.InitialHands[seat], card.Code())
		}
	}
	for _, trick := range g.history {
		snap.Tricks = append(snap.Tricks, snapshotTrick(trick))
	}
	return snap
}

// Restore rebuilds a game from a snapshot. The players must be fresh
// strategy instances matching the snapshot's recorded kinds; their
// belief state is reconstructed by replaying the hand's history. Any
// inconsistency in the snapshot is an error; the caller should discard
// the session and offer a fresh game.
func Restore(snap *Snapshot, rng *rand.Rand, players [NumPlayers]Player, logger *log.Logger) (*Game, error) {
	for seat := range players {
		if players[seat].Kind() != snap.Players[seat] {
			return nil, fmt.Errorf("seat %d: snapshot expects strategy %q, got %q",
				seat, snap.Players[seat], players[seat].Kind())
		}
	}
	if snap.Leader < 0 || snap.Leader >= NumPlayers {
		return nil, fmt.Errorf("invalid leader %d", snap.Leader)
	}

	g := New(rng, players, logger)
	g.handNumber = snap.HandNumber
	g.state = snap.State
	g.handPoints = snap.HandPoints
	g.heartsBroken = snap.HeartsBroken
	g.needTwoOfClubs = snap.NeedTwoOfClubs
	g.leader = snap.Leader
	for _, hand := range snap.Scores {
		g.scores = append(g.scores, hand)
	}

	if snap.HandNumber == 0 {
		// Never dealt; nothing to replay.
		return g, nil
	}

	for seat, codes := range snap.InitialHands {
		if len(codes) != deck.Size/NumPlayers {
			return nil, fmt.Errorf("seat %d: snapshot has %d initial cards", seat, len(codes))
		}
		cards := make([]deck.Card, 0, len(codes))
		for _, code := range codes {
			card, err := deck.ParseCode(code)
			if err != nil {
				return nil, fmt.Errorf("seat %d: %w", seat, err)
			}
			cards = append(cards, card)
		}
		g.initialHands[seat] = cards
		g.hands[seat] = deck.NewContainer(cards)
		g.players[seat].ProcessCardsForNewHand(g.hands[seat].Copy())
	}

	for i, ts := range snap.Tricks {
		trick, err := restoreTrick(ts)
		if err != nil {
			return nil, fmt.Errorf("trick %d: %w", i, err)
		}
		if trick.Size() != NumPlayers {
			return nil, fmt.Errorf("trick %d: incomplete with %d cards", i, trick.Size())
		}
		for seat := range trick.Cards {
			if err := g.hands[seat].RemoveCard(trick.Cards[seat]); err != nil {
				return nil, fmt.Errorf("trick %d seat %d: %w", i, seat, err)
			}
		}
		for seat := range g.players {
			g.players[seat].ProcessRound(trick)
		}
		g.history = append(g.history, trick)
	}

	trick, err := restoreTrick(snap.Current)
	if err != nil {
		return nil, fmt.Errorf("current trick: %w", err)
	}
	// After a trick resolves it stays readable as the current trick and
	// is also the last history entry; its cards were already removed in
	// the replay above.
	resolved := len(g.history) > 0 && trick == g.history[len(g.history)-1]
	if !resolved {
		for seat := range trick.Cards {
			if trick.Played(seat) {
				if err := g.hands[seat].RemoveCard(trick.Cards[seat]); err != nil {
					return nil, fmt.Errorf("current trick seat %d: %w", seat, err)
				}
			}
		}
	}
	g.trick = trick
	return g, nil
}
