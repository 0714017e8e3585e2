package deck

import rand "math/rand/v2"

// Size is the number of cards in a full deck.
const Size = 52

// All returns a full 52-card deck in suit-major order.
func All() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Deck is a shuffleable pile of cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full deck that shuffles with the given RNG.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{cards: All(), rng: rng}
}

// Shuffle permutes the deck uniformly at random (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealAll splits the whole deck into n equal piles in deal order.
func (d *Deck) DealAll(n int) [][]Card {
	per := len(d.cards) / n
	piles := make([][]Card, n)
	for i := 0; i < n; i++ {
		pile := make([]Card, per)
		copy(pile, d.cards[i*per:(i+1)*per])
		piles[i] = pile
	}
	return piles
}
