package deck

import (
	"fmt"
	"sort"
	"strings"
)

// ErrCardNotFound is returned when a card is removed from a container
// that does not hold it. Callers are expected to check HasCard first;
// hitting this error from the engine indicates a bookkeeping bug.
var ErrCardNotFound = fmt.Errorf("card not in container")

// Container holds a set of cards grouped by suit, with the ranks of
// each suit kept in ascending order. It backs both player hands and the
// unseen-card belief sets the AI players maintain. Cards can be removed
// but never added; a fresh container is built for every hand.
type Container struct {
	ranks [NumSuits][]Rank
}

// NewContainer creates a container holding the given cards.
func NewContainer(cards []Card) *Container {
	c := &Container{}
	for _, card := range cards {
		c.ranks[card.Suit] = append(c.ranks[card.Suit], card.Rank)
	}
	for suit := range c.ranks {
		sort.Slice(c.ranks[suit], func(i, j int) bool {
			return c.ranks[suit][i] < c.ranks[suit][j]
		})
	}
	return c
}

// ContainerFromCodes creates a container from external card codes.
// It fails on the first malformed code.
func ContainerFromCodes(codes []string) (*Container, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		card, err := ParseCode(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return NewContainer(cards), nil
}

// RemoveCard removes one matching card. It returns ErrCardNotFound if
// the container does not hold the card.
func (c *Container) RemoveCard(card Card) error {
	ranks := c.ranks[card.Suit]
	i := sort.Search(len(ranks), func(i int) bool { return ranks[i] >= card.Rank })
	if i == len(ranks) || ranks[i] != card.Rank {
		return fmt.Errorf("%w: %s", ErrCardNotFound, card)
	}
	c.ranks[card.Suit] = append(ranks[:i], ranks[i+1:]...)
	return nil
}

// HasCard reports whether the container holds the given card.
func (c *Container) HasCard(card Card) bool {
	ranks := c.ranks[card.Suit]
	i := sort.Search(len(ranks), func(i int) bool { return ranks[i] >= card.Rank })
	return i < len(ranks) && ranks[i] == card.Rank
}

// HasAnySuit reports whether the container holds at least one card in
// any of the given suits.
func (c *Container) HasAnySuit(suits ...Suit) bool {
	for _, suit := range suits {
		if len(c.ranks[suit]) > 0 {
			return true
		}
	}
	return false
}

// MinOfSuit returns the smallest rank held for the suit, or 0 when the
// suit is empty. Callers that have not checked HasAnySuit must treat 0
// as "no card".
func (c *Container) MinOfSuit(suit Suit) Rank {
	ranks := c.ranks[suit]
	if len(ranks) == 0 {
		return 0
	}
	return ranks[0]
}

// MaxOfSuit returns the largest rank held for the suit, or 0 when the
// suit is empty.
func (c *Container) MaxOfSuit(suit Suit) Rank {
	ranks := c.ranks[suit]
	if len(ranks) == 0 {
		return 0
	}
	return ranks[len(ranks)-1]
}

// Ranks returns the ascending ranks held for the suit. The slice is the
// container's own storage and must not be modified by the caller.
func (c *Container) Ranks(suit Suit) []Rank {
	return c.ranks[suit]
}

// SuitCount returns the number of cards held for the suit.
func (c *Container) SuitCount(suit Suit) int {
	return len(c.ranks[suit])
}

// CountAbove returns how many held cards of the suit rank strictly
// above the given rank.
func (c *Container) CountAbove(suit Suit, rank Rank) int {
	ranks := c.ranks[suit]
	i := sort.Search(len(ranks), func(i int) bool { return ranks[i] > rank })
	return len(ranks) - i
}

// CountBelow returns how many held cards of the suit rank strictly
// below the given rank.
func (c *Container) CountBelow(suit Suit, rank Rank) int {
	ranks := c.ranks[suit]
	return sort.Search(len(ranks), func(i int) bool { return ranks[i] >= rank })
}

// Len returns the total number of cards held.
func (c *Container) Len() int {
	n := 0
	for suit := range c.ranks {
		n += len(c.ranks[suit])
	}
	return n
}

// IsEmpty reports whether no cards are held at all.
func (c *Container) IsEmpty() bool {
	return c.Len() == 0
}

// Cards returns all held cards in suit-major, ascending-rank order.
func (c *Container) Cards() []Card {
	cards := make([]Card, 0, c.Len())
	for _, suit := range Suits() {
		for _, rank := range c.ranks[suit] {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Copy returns a deep copy. The copy and the original never share
// per-suit storage, so mutating one cannot affect the other.
func (c *Container) Copy() *Container {
	dup := &Container{}
	for suit := range c.ranks {
		if len(c.ranks[suit]) > 0 {
			dup.ranks[suit] = append([]Rank(nil), c.ranks[suit]...)
		}
	}
	return dup
}

// String renders the container for logs, e.g. "♣2 ♣5 | ♠Q".
func (c *Container) String() string {
	var parts []string
	for _, card := range c.Cards() {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
