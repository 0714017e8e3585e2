package game

import "github.com/cardtable/hearts/internal/deck"

const (
	// NumPlayers is the fixed number of seats in a game.
	NumPlayers = 4
	// HumanSeat is the seat reserved for the human in interactive play.
	HumanSeat = 0
)

// Player decides which card a seat plays. Implementations are pure
// functions of the snapshots they are handed plus whatever belief state
// they accumulate through ProcessRound; they never see the engine's
// authoritative containers. Every returned card must be present in the
// given hand and legal for the position; the engine re-validates and
// treats a violation as an engine bug, not a recoverable condition.
type Player interface {
	// Kind returns a stable identifier for the strategy ("standard",
	// "counting", ...) used in snapshots and configuration.
	Kind() string

	// ProcessCardsForNewHand resets belief state for a freshly dealt
	// hand. The container is the player's own copy.
	ProcessCardsForNewHand(hand *deck.Container)

	// StartHand returns the card opening the hand. It must be the two
	// of clubs for every strategy.
	StartHand(hand *deck.Container) deck.Card

	// StartRound returns the card leading a new trick. heartsBroken
	// reports whether a heart may be led (barring the only-hearts
	// escape, which the strategy must detect from its own hand).
	StartRound(hand *deck.Container, heartsBroken bool) deck.Card

	// PlayInRound returns the card to play into an ongoing trick.
	PlayInRound(hand *deck.Container, trick Trick) deck.Card

	// ProcessRound notifies the player of a completed trick so it can
	// update belief state. Called for every seat, including the one
	// that won.
	ProcessRound(trick Trick)
}
