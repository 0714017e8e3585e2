package strategy

import (
	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Human fills the human's seat in the player array. The engine sources
// that seat's cards from user input instead of the strategy interface,
// so the card-selection methods must never be reached.
type Human struct{}

// NewHuman creates the human seat placeholder.
func NewHuman() *Human {
	return &Human{}
}

func (p *Human) Kind() string { return KindHuman }

func (p *Human) ProcessCardsForNewHand(hand *deck.Container) {}

func (p *Human) StartHand(hand *deck.Container) deck.Card {
	panic("hearts: human seat asked for a card")
}

func (p *Human) StartRound(hand *deck.Container, heartsBroken bool) deck.Card {
	panic("hearts: human seat asked for a card")
}

func (p *Human) PlayInRound(hand *deck.Container, trick game.Trick) deck.Card {
	panic("hearts: human seat asked for a card")
}

func (p *Human) ProcessRound(trick game.Trick) {}
