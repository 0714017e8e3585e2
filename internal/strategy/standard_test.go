package strategy

import (
	"testing"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

func hand(cards ...deck.Card) *deck.Container {
	return deck.NewContainer(cards)
}

func trickWith(leader int, cards ...deck.Card) game.Trick {
	t := game.Trick{Leader: leader}
	if len(cards) > 0 {
		t.Lead = cards[0].Suit
	}
	seat := leader
	for _, card := range cards {
		t.Cards[seat] = card
		seat = (seat + 1) % game.NumPlayers
	}
	return t
}

func TestStandardStartHandPlaysTwoOfClubs(t *testing.T) {
	p := NewStandard()
	h := hand(deck.TwoOfClubs, deck.Card{Suit: deck.Hearts, Rank: deck.Ace})
	p.ProcessCardsForNewHand(h)
	if got := p.StartHand(h); got != deck.TwoOfClubs {
		t.Errorf("StartHand = %s, want ♣2", got)
	}
}

func TestStandardLeadsLowestCardSkippingUnbrokenHearts(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Hearts, Rank: deck.Two},
		deck.Card{Suit: deck.Diamonds, Rank: deck.Five},
		deck.Card{Suit: deck.Spades, Rank: deck.Three},
	)
	p.ProcessCardsForNewHand(h)

	if got := p.StartRound(h, false); got != (deck.Card{Suit: deck.Spades, Rank: deck.Three}) {
		t.Errorf("unbroken hearts lead = %s, want ♠3", got)
	}
	if got := p.StartRound(h, true); got != (deck.Card{Suit: deck.Hearts, Rank: deck.Two}) {
		t.Errorf("broken hearts lead = %s, want ♥2", got)
	}
}

func TestStandardLeadsHeartsWhenNothingElseLeft(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Hearts, Rank: deck.Four},
		deck.Card{Suit: deck.Hearts, Rank: deck.Jack},
	)
	p.ProcessCardsForNewHand(h)

	if got := p.StartRound(h, false); got != (deck.Card{Suit: deck.Hearts, Rank: deck.Four}) {
		t.Errorf("only-hearts lead = %s, want ♥4", got)
	}
}

func TestStandardDucksUnderHighestPlayed(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Clubs, Rank: deck.Three},
		deck.Card{Suit: deck.Clubs, Rank: deck.Nine},
		deck.Card{Suit: deck.Clubs, Rank: deck.King},
	)
	p.ProcessCardsForNewHand(h)
	tr := trickWith(1, deck.Card{Suit: deck.Clubs, Rank: deck.Ten})

	if got := p.PlayInRound(h, tr); got != (deck.Card{Suit: deck.Clubs, Rank: deck.Nine}) {
		t.Errorf("duck = %s, want ♣9 (largest below ♣10)", got)
	}
}

func TestStandardTakesWithMaxWhenLastAndCannotDuck(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Diamonds, Rank: deck.Jack},
		deck.Card{Suit: deck.Diamonds, Rank: deck.Ace},
	)
	p.ProcessCardsForNewHand(h)
	tr := trickWith(1,
		deck.Card{Suit: deck.Diamonds, Rank: deck.Two},
		deck.Card{Suit: deck.Diamonds, Rank: deck.Three},
		deck.Card{Suit: deck.Diamonds, Rank: deck.Four},
	)

	if got := p.PlayInRound(h, tr); got != (deck.Card{Suit: deck.Diamonds, Rank: deck.Ace}) {
		t.Errorf("last to act = %s, want ♦A", got)
	}
}

func TestStandardPlaysMinWhenForcedOverEarly(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Diamonds, Rank: deck.Jack},
		deck.Card{Suit: deck.Diamonds, Rank: deck.Ace},
	)
	p.ProcessCardsForNewHand(h)
	tr := trickWith(1, deck.Card{Suit: deck.Diamonds, Rank: deck.Five})

	if got := p.PlayInRound(h, tr); got != (deck.Card{Suit: deck.Diamonds, Rank: deck.Jack}) {
		t.Errorf("forced over = %s, want ♦J (smallest)", got)
	}
}

func TestStandardDropsQueenOnHigherSpade(t *testing.T) {
	p := NewStandard()
	h := hand(deck.QueenOfSpades, deck.Card{Suit: deck.Spades, Rank: deck.Two})
	p.ProcessCardsForNewHand(h)
	tr := trickWith(1, deck.KingOfSpades)

	if got := p.PlayInRound(h, tr); got != deck.QueenOfSpades {
		t.Errorf("spades trick with king = %s, want ♠Q", got)
	}
}

func TestStandardShedsHighSpadesWhenOffSuit(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.AceOfSpades,
		deck.Card{Suit: deck.Hearts, Rank: deck.Ace},
	)
	p.ProcessCardsForNewHand(h)
	tr := trickWith(1, deck.Card{Suit: deck.Clubs, Rank: deck.Five})

	if got := p.PlayInRound(h, tr); got != deck.AceOfSpades {
		t.Errorf("off-suit shed = %s, want ♠A while queen is out", got)
	}
}

func TestStandardShedsHighestCardAfterQueenGone(t *testing.T) {
	p := NewStandard()
	h := hand(
		deck.Card{Suit: deck.Spades, Rank: deck.Ten},
		deck.Card{Suit: deck.Hearts, Rank: deck.Two},
		deck.Card{Suit: deck.Diamonds, Rank: deck.King},
	)
	p.ProcessCardsForNewHand(h)
	// The queen falls in a resolved trick, lifting the spades rule.
	p.ProcessRound(trickWith(0,
		deck.Card{Suit: deck.Spades, Rank: deck.Five},
		deck.QueenOfSpades,
		deck.Card{Suit: deck.Spades, Rank: deck.Seven},
		deck.Card{Suit: deck.Spades, Rank: deck.Nine},
	))
	tr := trickWith(1, deck.Card{Suit: deck.Clubs, Rank: deck.Five})

	if got := p.PlayInRound(h, tr); got != (deck.Card{Suit: deck.Diamonds, Rank: deck.King}) {
		t.Errorf("off-suit shed = %s, want ♦K (highest rank overall)", got)
	}
}
