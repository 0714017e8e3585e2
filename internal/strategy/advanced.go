package strategy

import (
	"math"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Advanced improves on the baseline by tracking which seats can still
// hold each suit: a seat that discards off suit is marked void. Leads
// are chosen by weighing every suit's cheapest card against how many
// opponents can still follow it, and off-suit dumps weigh whole suits
// rather than single cards.
type Advanced struct {
	seat                int
	holders             [deck.NumSuits][game.NumPlayers]bool
	queenOfSpadesPlayed bool
}

// NewAdvanced creates a suit-tracking player for the given seat.
func NewAdvanced(seat int) *Advanced {
	return &Advanced{seat: seat}
}

func (p *Advanced) Kind() string { return KindAdvanced }

func (p *Advanced) ProcessCardsForNewHand(hand *deck.Container) {
	p.queenOfSpadesPlayed = false
	for suit := range p.holders {
		for seat := range p.holders[suit] {
			p.holders[suit][seat] = seat != p.seat
		}
	}
}

func (p *Advanced) StartHand(hand *deck.Container) deck.Card {
	return deck.TwoOfClubs
}

// StartRound weighs the cheapest playable card of every non-empty suit
// and leads the heaviest. Suits nobody can follow score badly, as do
// aces, unbroken hearts and high spades while the queen is out. Ties
// resolve to the first suit in ordinal order.
func (p *Advanced) StartRound(hand *deck.Container, heartsBroken bool) deck.Card {
	best := deck.Card{}
	bestWeight := math.Inf(-1)
	for _, suit := range deck.Suits() {
		if !hand.HasAnySuit(suit) {
			continue
		}
		card := cheapestLead(suit, hand, heartsBroken)
		weight := float64(p.holdersScore(suit)) +
			float64(p.leadValue(card.Rank)) +
			float64(leadPenalty(card, heartsBroken, p.queenOfSpadesPlayed))
		if weight > bestWeight {
			best, bestWeight = card, weight
		}
	}
	if best.IsZero() {
		panic("hearts: advanced player asked to lead from an empty hand")
	}
	return best
}

func (p *Advanced) PlayInRound(hand *deck.Container, trick game.Trick) deck.Card {
	if hand.HasAnySuit(trick.Lead) {
		return p.followSuit(hand, trick)
	}
	return p.dumpCard(hand)
}

// ProcessRound records queen sightings and marks seats void in the lead
// suit when they discarded something else.
func (p *Advanced) ProcessRound(trick game.Trick) {
	if !p.queenOfSpadesPlayed {
		p.queenOfSpadesPlayed = trick.Contains(deck.QueenOfSpades)
	}
	for seat := 0; seat < game.NumPlayers; seat++ {
		if trick.Cards[seat].Suit != trick.Lead {
			p.holders[trick.Lead][seat] = false
		}
	}
}

// holdersScore scores a suit by how many opponents can still follow it.
// A dead suit guarantees taking the trick, which is the worst outcome.
func (p *Advanced) holdersScore(suit deck.Suit) int {
	if n := p.holdersCount(suit); n > 0 {
		return n
	}
	return leadNoHoldersScore
}

func (p *Advanced) holdersCount(suit deck.Suit) int {
	n := 0
	for seat, holds := range p.holders[suit] {
		if seat != p.seat && holds {
			n++
		}
	}
	return n
}

// leadValue prefers low cards; an ace can never duck and gets a flat
// penalty instead.
func (p *Advanced) leadValue(rank deck.Rank) int {
	if rank == deck.Ace {
		return leadAceScore
	}
	return int(deck.Ace - rank)
}

// leadPenalty applies the hard rules-of-thumb shared by the weighing
// players: no unbroken hearts, no queen of spades, and high spades only
// reluctantly while the queen is still out.
func leadPenalty(card deck.Card, heartsBroken, queenPlayed bool) int {
	if card.Suit == deck.Hearts && !heartsBroken {
		return leadPenaltyUnbrokenHearts
	}
	if card.Suit == deck.Spades && !queenPlayed {
		if card.Rank == deck.Queen {
			return leadPenaltyQueenOfSpades
		}
		if card.Rank >= deck.King {
			return leadPenaltyHighSpade
		}
	}
	return 0
}

// followSuit ducks when possible. When forced over the current high
// card, it plays the suit's top card if every seat still to act is
// believed void (the trick cannot grow any riskier), and the bottom
// card otherwise.
func (p *Advanced) followSuit(hand *deck.Container, trick game.Trick) deck.Card {
	if card, ok := spadesFollowSpecial(hand, trick, p.queenOfSpadesPlayed); ok {
		return card
	}
	suit := trick.Lead
	if rank := largestBelow(hand, suit, trick.HighestOfLead()); rank != 0 {
		return deck.New(suit, rank)
	}
	if !p.suitHeldByUpcoming(suit, trick) {
		return deck.New(suit, hand.MaxOfSuit(suit))
	}
	return deck.New(suit, hand.MinOfSuit(suit))
}

// suitHeldByUpcoming reports whether any seat that has not played into
// the trick yet is still believed to hold the suit.
func (p *Advanced) suitHeldByUpcoming(suit deck.Suit, trick game.Trick) bool {
	for seat := 0; seat < game.NumPlayers; seat++ {
		if seat == p.seat || trick.Played(seat) {
			continue
		}
		if p.holders[suit][seat] {
			return true
		}
	}
	return false
}

// dumpCard sheds dangerous spades first, then the top card of the suit
// that most wants thinning: a high ceiling and little depth below it.
func (p *Advanced) dumpCard(hand *deck.Container) deck.Card {
	if !p.queenOfSpadesPlayed && hand.HasAnySuit(deck.Spades) {
		for _, card := range []deck.Card{deck.QueenOfSpades, deck.AceOfSpades, deck.KingOfSpades} {
			if hand.HasCard(card) {
				return card
			}
		}
	}
	best := deck.Card{}
	bestWeight := math.Inf(-1)
	for _, suit := range deck.Suits() {
		count := hand.SuitCount(suit)
		if count == 0 {
			continue
		}
		max, min := hand.MaxOfSuit(suit), hand.MinOfSuit(suit)
		weight := float64(max) +
			math.Pow(math.Max(float64(max-deck.Ten), 0), dumpHighCardExp) +
			math.Pow(float64(min-deck.Two), dumpLowCardExp) -
			math.Pow(float64(count-1), dumpSuitDepthExp)
		if weight > bestWeight {
			best, bestWeight = deck.New(suit, max), weight
		}
	}
	if best.IsZero() {
		panic("hearts: advanced player asked to discard from an empty hand")
	}
	return best
}
