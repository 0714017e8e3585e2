package game

import "github.com/cardtable/hearts/internal/deck"

// Trick is one round of play: up to one card per seat. The zero Card
// value marks a seat that has not played yet. Strategies receive tricks
// by value, so they can never mutate the engine's bookkeeping.
type Trick struct {
	// Cards holds the card each seat played, indexed by seat.
	Cards [NumPlayers]deck.Card
	// Lead is the suit of the first card played. Only meaningful once
	// Size() > 0; it never changes until the trick completes.
	Lead deck.Suit
	// Leader is the seat that opened (or must open) the trick.
	Leader int
}

// Played reports whether the seat has played a card in this trick.
func (t Trick) Played(seat int) bool {
	return !t.Cards[seat].IsZero()
}

// Size returns how many cards have been played so far.
func (t Trick) Size() int {
	n := 0
	for seat := range t.Cards {
		if t.Played(seat) {
			n++
		}
	}
	return n
}

// Contains reports whether the given card has been played in this trick.
func (t Trick) Contains(card deck.Card) bool {
	for seat := range t.Cards {
		if t.Cards[seat] == card {
			return true
		}
	}
	return false
}

// HighestOfLead returns the highest rank played in the lead suit so
// far, or 0 when no lead-suit card has been played.
func (t Trick) HighestOfLead() deck.Rank {
	var highest deck.Rank
	for seat := range t.Cards {
		card := t.Cards[seat]
		if !card.IsZero() && card.Suit == t.Lead && card.Rank > highest {
			highest = card.Rank
		}
	}
	return highest
}

// Winner returns the seat that played the highest card of the lead
// suit. Cards of other suits never win regardless of rank. Returns -1
// for a trick with no lead-suit card, which cannot happen in play.
func (t Trick) Winner() int {
	winner := -1
	var best deck.Rank
	for seat := range t.Cards {
		card := t.Cards[seat]
		if !card.IsZero() && card.Suit == t.Lead && card.Rank > best {
			winner = seat
			best = card.Rank
		}
	}
	return winner
}

// Points returns the total penalty points carried by the trick.
func (t Trick) Points() int {
	total := 0
	for seat := range t.Cards {
		if !t.Cards[seat].IsZero() {
			total += t.Cards[seat].Points()
		}
	}
	return total
}

// HasHeart reports whether any heart has been played in this trick.
func (t Trick) HasHeart() bool {
	for seat := range t.Cards {
		if !t.Cards[seat].IsZero() && t.Cards[seat].Suit == deck.Hearts {
			return true
		}
	}
	return false
}
