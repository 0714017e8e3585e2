package strategy

import (
	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Standard is the baseline computer player. It tracks a single fact
// between tricks (whether the queen of spades has been played) and
// otherwise decides from its own hand and the visible trick: duck under
// the highest card when possible, shed dangerous spades and the single
// highest card when off suit, lead its lowest card.
type Standard struct {
	queenOfSpadesPlayed bool
}

// NewStandard creates a baseline player.
func NewStandard() *Standard {
	return &Standard{}
}

func (p *Standard) Kind() string { return KindStandard }

func (p *Standard) ProcessCardsForNewHand(hand *deck.Container) {
	p.queenOfSpadesPlayed = false
}

func (p *Standard) StartHand(hand *deck.Container) deck.Card {
	return deck.TwoOfClubs
}

// StartRound leads the lowest card in the hand, skipping hearts until
// they are broken unless hearts are all that is left.
func (p *Standard) StartRound(hand *deck.Container, heartsBroken bool) deck.Card {
	best := deck.Card{}
	for _, suit := range deck.Suits() {
		if suit == deck.Hearts && !heartsBroken {
			continue
		}
		min := hand.MinOfSuit(suit)
		if min == 0 {
			continue
		}
		if best.IsZero() || min < best.Rank {
			best = deck.New(suit, min)
		}
	}
	if !best.IsZero() {
		return best
	}
	if min := hand.MinOfSuit(deck.Hearts); min != 0 {
		return deck.New(deck.Hearts, min)
	}
	panic("hearts: standard player asked to lead from an empty hand")
}

func (p *Standard) PlayInRound(hand *deck.Container, trick game.Trick) deck.Card {
	if hand.HasAnySuit(trick.Lead) {
		return p.followSuit(hand, trick)
	}
	return p.worstCard(hand)
}

func (p *Standard) ProcessRound(trick game.Trick) {
	if !p.queenOfSpadesPlayed {
		p.queenOfSpadesPlayed = trick.Contains(deck.QueenOfSpades)
	}
}

// followSuit picks a card in the lead suit: queen-of-spades special
// cases first, then the largest rank that still ducks under the current
// high card. When ducking is impossible, take the trick with the top of
// the suit as last to act, otherwise give away as little as possible
// with the bottom of the suit.
func (p *Standard) followSuit(hand *deck.Container, trick game.Trick) deck.Card {
	if card, ok := spadesFollowSpecial(hand, trick, p.queenOfSpadesPlayed); ok {
		return card
	}
	suit := trick.Lead
	if rank := largestBelow(hand, suit, trick.HighestOfLead()); rank != 0 {
		return deck.New(suit, rank)
	}
	if trick.Size() == game.NumPlayers-1 {
		return deck.New(suit, hand.MaxOfSuit(suit))
	}
	return deck.New(suit, hand.MinOfSuit(suit))
}

// worstCard picks the card to shed when off suit: the queen of spades
// first, then the ace and king of spades while the queen is still out,
// then the single highest-ranked card across all suits.
func (p *Standard) worstCard(hand *deck.Container) deck.Card {
	if !p.queenOfSpadesPlayed && hand.HasAnySuit(deck.Spades) {
		for _, card := range []deck.Card{deck.QueenOfSpades, deck.AceOfSpades, deck.KingOfSpades} {
			if hand.HasCard(card) {
				return card
			}
		}
	}
	best := deck.Card{}
	for _, suit := range deck.Suits() {
		max := hand.MaxOfSuit(suit)
		if max == 0 {
			continue
		}
		if best.IsZero() || max > best.Rank {
			best = deck.New(suit, max)
		}
	}
	if best.IsZero() {
		panic("hearts: standard player asked to discard from an empty hand")
	}
	return best
}
