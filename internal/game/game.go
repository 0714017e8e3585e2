package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/deck"
)

// WinThreshold is the cumulative score that ends a game after a hand.
const WinThreshold = 100

// moonPoints is the full penalty of a hand: 13 hearts plus the queen
// of spades. A player taking all of it shoots the moon.
const moonPoints = 26

// Game is the orchestrator for one session of Hearts: it owns the four
// hands, the trick in progress, the scoring ledger, and sequences calls
// into the seat strategies while validating every move. It is a plain
// value aggregate with no global state; persistence across requests is
// the caller's job (see Snapshot).
//
// A Game is not safe for concurrent use.
type Game struct {
	rng    *rand.Rand
	logger *log.Logger

	players [NumPlayers]Player

	handNumber int
	scores     [][NumPlayers]int
	state      State

	// Hand-scoped state, reset by StartNewHand.
	hands          [NumPlayers]*deck.Container
	initialHands   [NumPlayers][]deck.Card
	handPoints     [NumPlayers]int
	heartsBroken   bool
	needTwoOfClubs bool
	history        []Trick

	// Trick-scoped state. The finished trick stays readable after a
	// round completes until the next one begins.
	trick  Trick
	leader int
}

// New creates a game with the given seat strategies. The RNG drives
// every shuffle; pass a randutil-seeded one.
func New(rng *rand.Rand, players [NumPlayers]Player, logger *log.Logger) *Game {
	g := &Game{
		rng:     rng,
		logger:  logger.WithPrefix("game"),
		players: players,
		state:   HandStart,
	}
	for seat := range g.hands {
		g.hands[seat] = deck.NewContainer(nil)
	}
	return g
}

// StartNewHand shuffles a fresh deck, deals 13 cards to each seat,
// resets the hand-scoped state and determines the opening leader (the
// holder of the two of clubs). Callers must only invoke it in the
// HandStart state; redealing mid-hand would be a cheat vector.
func (g *Game) StartNewHand() error {
	if g.state != HandStart {
		return fmt.Errorf("cannot start a new hand in state %s", g.state)
	}

	d := deck.NewDeck(g.rng)
	d.Shuffle()
	piles := d.DealAll(NumPlayers)

	g.handNumber++
	g.heartsBroken = false
	g.needTwoOfClubs = true
	g.history = nil
	leader := -1
	for seat, pile := range piles {
		g.initialHands[seat] = pile
		g.hands[seat] = deck.NewContainer(pile)
		g.handPoints[seat] = 0
		g.players[seat].ProcessCardsForNewHand(g.hands[seat].Copy())
		if g.hands[seat].HasCard(deck.TwoOfClubs) {
			leader = seat
		}
	}
	if leader < 0 {
		return fmt.Errorf("no seat holds the two of clubs after dealing")
	}
	g.leader = leader
	g.trick = Trick{Leader: leader}

	g.logger.Debug("dealt new hand", "hand", g.handNumber, "leader", leader)
	if leader == HumanSeat {
		g.state = AwaitingHuman
	}
	return nil
}

// PlayTillHuman starts a new trick and plays the computer seats in turn
// order until it is the human's turn, then blocks in AwaitingHuman.
// Valid in the HandStart state (right after dealing) and in RoundEnd.
func (g *Game) PlayTillHuman() error {
	if g.state != HandStart && g.state != RoundEnd {
		return fmt.Errorf("cannot play to human in state %s", g.state)
	}

	g.trick = Trick{Leader: g.leader}
	for seat := g.leader; seat != HumanSeat; seat = nextSeat(seat) {
		if err := g.playComputerSeat(seat); err != nil {
			return err
		}
	}
	g.state = AwaitingHuman
	return nil
}

// ProcessHumanMove validates the human's chosen card against the
// current trick and hand. On MoveOK the card is recorded and removed
// from the human's hand; on any other result nothing changes and the
// caller should re-prompt. It never advances the other seats.
func (g *Game) ProcessHumanMove(card deck.Card) MoveResult {
	if g.state != AwaitingHuman || g.trick.Played(HumanSeat) {
		return MoveBadCard
	}
	result := g.validateCardPlay(HumanSeat, card)
	if result == MoveOK {
		g.applyCard(HumanSeat, card)
	}
	return result
}

// PlayTillEnd plays the remaining computer seats after the human's
// card, resolves the completed trick and prepares the next one. It
// returns the seat leading the next trick, or -1 when the hand (and
// possibly the game) just ended.
func (g *Game) PlayTillEnd() (int, error) {
	if g.state != AwaitingHuman || !g.trick.Played(HumanSeat) {
		return 0, fmt.Errorf("human has not played yet (state %s)", g.state)
	}
	for seat := nextSeat(HumanSeat); seat != g.trick.Leader; seat = nextSeat(seat) {
		if g.trick.Played(seat) {
			return 0, fmt.Errorf("seat %d already has a card in the trick", seat)
		}
		if err := g.playComputerSeat(seat); err != nil {
			return 0, err
		}
	}
	return g.finishRound()
}

// PlayRound plays one complete trick with no human involvement, from
// dealing's leader through resolution. It is the driver used by the
// evaluation harness, where every seat is a computer strategy.
func (g *Game) PlayRound() (int, error) {
	if g.state != HandStart && g.state != RoundEnd {
		return 0, fmt.Errorf("cannot play a round in state %s", g.state)
	}

	g.trick = Trick{Leader: g.leader}
	seat := g.leader
	for i := 0; i < NumPlayers; i++ {
		if err := g.playComputerSeat(seat); err != nil {
			return 0, err
		}
		seat = nextSeat(seat)
	}
	return g.finishRound()
}

// playComputerSeat asks the seat's strategy for a card and applies it.
// An illegal choice is an engine bug and surfaces as an error.
func (g *Game) playComputerSeat(seat int) error {
	hand := g.hands[seat].Copy()
	var card deck.Card
	switch {
	case g.needTwoOfClubs:
		card = g.players[seat].StartHand(hand)
	case g.trick.Size() == 0:
		card = g.players[seat].StartRound(hand, g.heartsBroken)
	default:
		card = g.players[seat].PlayInRound(hand, g.trick)
	}

	if result := g.validateCardPlay(seat, card); result != MoveOK {
		return fmt.Errorf("seat %d (%s) chose illegal card %s: %s",
			seat, g.players[seat].Kind(), card, result)
	}
	g.applyCard(seat, card)
	g.logger.Debug("computer played", "seat", seat, "card", card.String())
	return nil
}

// validateCardPlay checks a card against the rules without mutating
// anything. The checks run in a fixed order so the caller gets the most
// specific result: held at all, forced two of clubs, suit following,
// hearts-breaking.
func (g *Game) validateCardPlay(seat int, card deck.Card) MoveResult {
	if !card.Valid() || !g.hands[seat].HasCard(card) {
		return MoveBadCard
	}
	if g.needTwoOfClubs {
		if card != deck.TwoOfClubs {
			return MoveExpectingTwoOfClubs
		}
		return MoveOK
	}
	if g.trick.Size() > 0 {
		if card.Suit == g.trick.Lead || !g.hands[seat].HasAnySuit(g.trick.Lead) {
			return MoveOK
		}
		return MoveBadSuit
	}
	// Leading a new trick: hearts stay barred until broken, unless the
	// hand holds nothing else.
	if card.Suit == deck.Hearts && !g.heartsBroken &&
		g.hands[seat].HasAnySuit(deck.Clubs, deck.Diamonds, deck.Spades) {
		return MoveNoHearts
	}
	return MoveOK
}

// applyCard records a validated card into the trick and removes it from
// the seat's hand.
func (g *Game) applyCard(seat int, card deck.Card) {
	if err := g.hands[seat].RemoveCard(card); err != nil {
		// Unreachable after validateCardPlay; a failure here means the
		// hand containers are corrupt.
		panic(fmt.Sprintf("hearts: remove validated card: %v", err))
	}
	if g.trick.Size() == 0 {
		g.trick.Lead = card.Suit
	}
	g.trick.Cards[seat] = card
	g.needTwoOfClubs = false
}

// finishRound resolves a complete trick: notifies every strategy,
// credits the trick's points to the winner, updates the hearts-broken
// flag and either prepares the next trick or ends the hand. Returns the
// next leader, or -1 when the hand completed.
func (g *Game) finishRound() (int, error) {
	if n := g.trick.Size(); n != NumPlayers {
		return 0, fmt.Errorf("trick completed with %d cards instead of %d", n, NumPlayers)
	}
	for seat := range g.players {
		g.players[seat].ProcessRound(g.trick)
	}

	winner := g.trick.Winner()
	if winner < 0 {
		return 0, fmt.Errorf("trick has no card in the lead suit %s", g.trick.Lead)
	}
	g.handPoints[winner] += g.trick.Points()
	g.leader = winner
	if g.trick.HasHeart() {
		g.heartsBroken = true
	}
	g.history = append(g.history, g.trick)
	g.logger.Debug("trick resolved", "winner", winner, "points", g.trick.Points())

	if g.hands[HumanSeat].IsEmpty() {
		for seat := range g.hands {
			if !g.hands[seat].IsEmpty() {
				return 0, fmt.Errorf("seat %d still holds cards at hand end", seat)
			}
		}
		g.endHand()
		return -1, nil
	}
	g.state = RoundEnd
	return winner, nil
}

// endHand applies the shoot-the-moon correction, appends the hand's
// points to the ledger and decides whether the game is over.
func (g *Game) endHand() {
	for seat := range g.handPoints {
		if g.handPoints[seat] == moonPoints {
			for other := range g.handPoints {
				if other == seat {
					g.handPoints[other] = 0
				} else {
					g.handPoints[other] = moonPoints
				}
			}
			g.logger.Info("moon shot", "seat", seat, "hand", g.handNumber)
			break
		}
	}

	g.scores = append(g.scores, g.handPoints)
	g.handPoints = [NumPlayers]int{}

	g.state = HandStart
	totals := g.Totals()
	for seat := range totals {
		if totals[seat] >= WinThreshold {
			g.state = GameEnd
			g.logger.Info("game over", "totals", totals)
			return
		}
	}
}

// State returns the current discrete state.
func (g *Game) State() State {
	return g.state
}

// HandNumber returns the 1-based number of the current hand, or 0
// before the first deal.
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Hand returns a deep copy of the seat's current cards.
func (g *Game) Hand(seat int) *deck.Container {
	return g.hands[seat].Copy()
}

// CurrentTrick returns the trick in progress (or the one that just
// finished, while in RoundEnd).
func (g *Game) CurrentTrick() Trick {
	return g.trick
}

// Leader returns the seat that leads (or led) the current trick.
func (g *Game) Leader() int {
	return g.leader
}

// HeartsBroken reports whether a heart has been played this hand.
func (g *Game) HeartsBroken() bool {
	return g.heartsBroken
}

// NeedTwoOfClubs reports whether the next card must be the two of
// clubs. Exposed for display only.
func (g *Game) NeedTwoOfClubs() bool {
	return g.needTwoOfClubs
}

// HandPoints returns the points accumulated in the current hand.
func (g *Game) HandPoints() [NumPlayers]int {
	return g.handPoints
}

// Scores returns the ledger of points per completed hand per seat.
func (g *Game) Scores() [][NumPlayers]int {
	scores := make([][NumPlayers]int, len(g.scores))
	copy(scores, g.scores)
	return scores
}

// Totals returns the cumulative points over all completed hands.
func (g *Game) Totals() [NumPlayers]int {
	var totals [NumPlayers]int
	for _, hand := range g.scores {
		for seat, points := range hand {
			totals[seat] += points
		}
	}
	return totals
}

func nextSeat(seat int) int {
	return (seat + 1) % NumPlayers
}
