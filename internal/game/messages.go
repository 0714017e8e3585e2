package game

import "fmt"

// User-facing strings shared by the TUI and the WebSocket server.
// They live beside the state machine so the front ends cannot drift.

// Message returns the explanation to show the human when a move is
// rejected with this result.
func (m MoveResult) Message() string {
	switch m {
	case MoveBadSuit:
		return "Wrong suit!"
	case MoveNoHearts:
		return "You cannot play hearts yet!"
	case MoveExpectingTwoOfClubs:
		return "You must open with the two of clubs."
	default:
		return "Please play a card."
	}
}

// SeatName names a seat from the human's point of view.
func SeatName(seat int) string {
	if seat == HumanSeat {
		return "You"
	}
	return fmt.Sprintf("Player %d", seat+1)
}

// OpeningMessage describes who leads a freshly dealt hand.
func OpeningMessage(leader int) string {
	if leader == HumanSeat {
		return "You start. The two of clubs opens the hand."
	}
	return fmt.Sprintf("%s starts.", SeatName(leader))
}

// RoundEndMessage describes a finished trick, or the end of the hand
// or game. winner is the trick winner, or negative when the hand ended
// with that trick.
func RoundEndMessage(state State, winner int) string {
	switch {
	case state == GameEnd:
		return "End of game!"
	case winner < 0:
		return "End of hand."
	case winner == HumanSeat:
		return "You take the trick."
	default:
		return fmt.Sprintf("%s takes the trick.", SeatName(winner))
	}
}
