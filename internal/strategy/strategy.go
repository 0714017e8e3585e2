// Package strategy provides the computer player implementations for
// the Hearts engine: a heuristic baseline, a suit-tracking player, a
// full card counter, the human placeholder and a combiner used to
// compare strategies against each other.
package strategy

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Strategy kinds accepted by New.
const (
	KindHuman    = "human"
	KindStandard = "standard"
	KindAdvanced = "advanced"
	KindCounting = "counting"
	KindCombiner = "combiner"
)

// Kinds lists the computer strategy kinds usable for opponent seats.
func Kinds() []string {
	return []string{KindStandard, KindAdvanced, KindCounting, KindCombiner}
}

// New creates a player of the given kind for the given seat.
func New(kind string, seat int, logger *log.Logger) (game.Player, error) {
	switch kind {
	case KindHuman:
		return NewHuman(), nil
	case KindStandard:
		return NewStandard(), nil
	case KindAdvanced:
		return NewAdvanced(seat), nil
	case KindCounting:
		return NewCardCounting(seat), nil
	case KindCombiner:
		return NewCombiner(seat, logger), nil
	default:
		return nil, fmt.Errorf("unknown player strategy %q", kind)
	}
}

// largestBelow returns the largest held rank of the suit strictly below
// limit, or 0 when none qualifies. Used to win a trick as cheaply as
// possible without actually taking it.
func largestBelow(hand *deck.Container, suit deck.Suit, limit deck.Rank) deck.Rank {
	var best deck.Rank
	for _, rank := range hand.Ranks(suit) {
		if rank >= limit {
			break
		}
		best = rank
	}
	return best
}

// cheapestLead returns the card to consider when leading the suit:
// normally the lowest held. When that would be the queen of spades, the
// king goes instead; failing that the ace, but only while hearts are
// unbroken and the hand still holds hearts to lose the lead with later.
func cheapestLead(suit deck.Suit, hand *deck.Container, heartsBroken bool) deck.Card {
	min := hand.MinOfSuit(suit)
	if suit == deck.Spades && min == deck.Queen {
		if hand.HasCard(deck.KingOfSpades) {
			return deck.KingOfSpades
		}
		if hand.HasCard(deck.AceOfSpades) && !heartsBroken && hand.HasAnySuit(deck.Hearts) {
			return deck.AceOfSpades
		}
	}
	return deck.New(suit, min)
}

// spadesFollowSpecial handles the queen-of-spades special cases when
// following a spades trick before the queen has appeared: offload the
// queen onto a king or ace already on the table, or, as last to act
// with only high spades and no queen in sight, shed the highest spade.
func spadesFollowSpecial(hand *deck.Container, trick game.Trick, queenPlayed bool) (deck.Card, bool) {
	if trick.Lead != deck.Spades || queenPlayed {
		return deck.Card{}, false
	}
	if hand.HasCard(deck.QueenOfSpades) &&
		(trick.Contains(deck.KingOfSpades) || trick.Contains(deck.AceOfSpades)) {
		return deck.QueenOfSpades, true
	}
	if trick.Size() == game.NumPlayers-1 &&
		hand.MaxOfSuit(deck.Spades) >= deck.King &&
		!trick.Contains(deck.QueenOfSpades) {
		return deck.New(deck.Spades, hand.MaxOfSuit(deck.Spades)), true
	}
	return deck.Card{}, false
}
