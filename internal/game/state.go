package game

// State is the discrete state of a game, i.e. what should happen next.
type State int

const (
	// HandStart means a new hand must be dealt (or, right after dealing,
	// that play has not reached the human yet).
	HandStart State = iota
	// AwaitingHuman means the engine is blocked on the human's card.
	AwaitingHuman
	// RoundEnd means a trick just completed and the next one has not
	// started; the finished trick remains readable for display.
	RoundEnd
	// GameEnd is terminal: a player reached 100 points after a hand.
	GameEnd
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case HandStart:
		return "hand-start"
	case AwaitingHuman:
		return "awaiting-human"
	case RoundEnd:
		return "round-end"
	case GameEnd:
		return "game-end"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of validating a human move. Anything other
// than MoveOK is a user error to re-prompt on, never an engine failure.
type MoveResult int

const (
	// MoveOK means the card was accepted and applied.
	MoveOK MoveResult = iota
	// MoveBadSuit means the card does not follow the trick's lead suit
	// while the player still holds that suit.
	MoveBadSuit
	// MoveNoHearts means a heart was led before hearts were broken.
	MoveNoHearts
	// MoveBadCard means the card is malformed or not in the hand.
	MoveBadCard
	// MoveExpectingTwoOfClubs means the hand must open with the two of
	// clubs and another card was offered.
	MoveExpectingTwoOfClubs
)

// String returns a stable identifier for the move result, used on the
// wire and in logs.
func (m MoveResult) String() string {
	switch m {
	case MoveOK:
		return "ok"
	case MoveBadSuit:
		return "bad-suit"
	case MoveNoHearts:
		return "no-hearts"
	case MoveBadCard:
		return "bad-card"
	case MoveExpectingTwoOfClubs:
		return "expecting-two-of-clubs"
	default:
		return "unknown"
	}
}
