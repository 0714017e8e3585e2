package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit. The ordinal is stable: it is used for
// array indexing, iteration order and the external card code.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// Suits returns all suits in ordinal order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Spades, Hearts}
}

// String returns the symbol for the suit.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Valid reports whether the suit is one of the four known suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Hearts
}

// Rank represents a card rank. Aces are high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the short form of the rank ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Valid reports whether the rank is in the playable range.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card is an immutable (suit, rank) value. The zero value is not a
// valid card, which lets callers use it as an "absent" marker.
type Card struct {
	Suit Suit
	Rank Rank
}

// Cards referenced throughout the rules.
var (
	TwoOfClubs    = Card{Clubs, Two}
	QueenOfSpades = Card{Spades, Queen}
	KingOfSpades  = Card{Spades, King}
	AceOfSpades   = Card{Spades, Ace}
)

// New creates a card from a suit and a rank.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Points returns the penalty points the card carries for whoever takes
// it in a trick: 1 for every heart, 13 for the queen of spades.
func (c Card) Points() int {
	if c.Suit == Hearts {
		return 1
	}
	if c == QueenOfSpades {
		return 13
	}
	return 0
}

// IsZero reports whether the card is the zero "no card" value.
func (c Card) IsZero() bool {
	return c == Card{}
}

// Valid reports whether both suit and rank are in range.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// String returns the display form of the card, e.g. "♠Q".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Code returns the external card code: the suit ordinal followed by the
// numeric rank, e.g. "212" for the queen of spades. The code is used on
// the wire and in snapshots.
func (c Card) Code() string {
	return strconv.Itoa(int(c.Suit)) + strconv.Itoa(int(c.Rank))
}

// ParseCode parses an external card code produced by Code.
func ParseCode(code string) (Card, error) {
	if len(code) < 2 || len(code) > 3 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	suit, err := strconv.Atoi(code[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	rank, err := strconv.Atoi(code[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	card := Card{Suit: Suit(suit), Rank: Rank(rank)}
	if !card.Valid() {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	return card, nil
}

// MarshalText encodes the card as its external code, so maps and slices
// of cards serialize compactly in JSON snapshots.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot encode invalid card %+v", c)
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes a card from its external code.
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}
