package strategy

import (
	"fmt"
	"math"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// CardCounting is the strongest computer player. On top of the suit
// voids the advanced player tracks, it maintains the full set of cards
// it has not seen yet, which turns duck-or-take decisions into counting
// problems: it knows when a card cannot be beaten anymore, estimates
// how likely a discard suit's top card is to win a future trick, and
// sometimes takes a pointless trick on purpose to cash a high card
// while it is still safe.
type CardCounting struct {
	seat                int
	unseen              *deck.Container
	holders             [deck.NumSuits][game.NumPlayers]bool
	suitRounds          [deck.NumSuits]int
	queenOfSpadesPlayed bool
	heartsPlayed        bool
}

// NewCardCounting creates a card-counting player for the given seat.
func NewCardCounting(seat int) *CardCounting {
	return &CardCounting{seat: seat}
}

func (p *CardCounting) Kind() string { return KindCounting }

func (p *CardCounting) ProcessCardsForNewHand(hand *deck.Container) {
	p.queenOfSpadesPlayed = false
	p.heartsPlayed = false
	p.suitRounds = [deck.NumSuits]int{}
	for suit := range p.holders {
		for seat := range p.holders[suit] {
			p.holders[suit][seat] = seat != p.seat
		}
	}

	var others []deck.Card
	for _, card := range deck.All() {
		if !hand.HasCard(card) {
			others = append(others, card)
		}
	}
	p.unseen = deck.NewContainer(others)
}

func (p *CardCounting) StartHand(hand *deck.Container) deck.Card {
	return deck.TwoOfClubs
}

func (p *CardCounting) PlayInRound(hand *deck.Container, trick game.Trick) deck.Card {
	if hand.HasAnySuit(trick.Lead) {
		return p.followSuit(hand, trick)
	}
	return p.dumpCard(hand, trick)
}

// ProcessRound consumes a finished trick: counts the suit's rounds,
// records queen and heart sightings, marks off-suit discarders void and
// strikes the other seats' cards from the unseen set. A suit with no
// unseen cards left cannot be held by anyone.
func (p *CardCounting) ProcessRound(trick game.Trick) {
	p.suitRounds[trick.Lead]++
	if !p.queenOfSpadesPlayed {
		p.queenOfSpadesPlayed = trick.Contains(deck.QueenOfSpades)
	}
	if !p.heartsPlayed {
		p.heartsPlayed = trick.HasHeart()
	}

	for seat := 0; seat < game.NumPlayers; seat++ {
		card := trick.Cards[seat]
		if card.Suit != trick.Lead {
			p.holders[trick.Lead][seat] = false
		}
		if seat != p.seat {
			if err := p.unseen.RemoveCard(card); err != nil {
				// The engine guarantees each card is played exactly once;
				// failing here means the count is corrupt.
				panic(fmt.Sprintf("hearts: card counter lost track: %v", err))
			}
		}
	}

	for _, suit := range deck.Suits() {
		if !p.unseen.HasAnySuit(suit) {
			for seat := range p.holders[suit] {
				p.holders[suit][seat] = false
			}
		}
	}
}

// followSuit picks a card in the lead suit. Queen-of-spades specials
// come first, then the deliberate-take heuristic, then the usual duck;
// when forced over the top it uses the count to decide between
// conceding with the maximum or praying with the minimum.
func (p *CardCounting) followSuit(hand *deck.Container, trick game.Trick) deck.Card {
	if card, ok := spadesFollowSpecial(hand, trick, p.queenOfSpadesPlayed); ok {
		return card
	}
	suit := trick.Lead
	biggestPlayed := trick.HighestOfLead()

	if card, ok := p.takeRoundIntentionally(suit, biggestPlayed, hand, trick); ok && p.safeSpadesTake(suit, card, hand) {
		return card
	}

	if rank := largestBelow(hand, suit, biggestPlayed); rank != 0 {
		return deck.New(suit, rank)
	}

	// Forced above the current high card. If everyone still to act is
	// void, or even our lowest card beats everything unseen, the trick
	// is ours anyway: concede with the biggest card. Otherwise play
	// small and hope a bigger one shows up behind us.
	if !p.suitHeldByUpcoming(suit, trick) || p.unseen.CountAbove(suit, hand.MinOfSuit(suit)) == 0 {
		return deck.New(suit, p.maxAvoidingQueen(suit, hand))
	}
	return deck.New(suit, p.minAvoidingQueen(suit, hand))
}

// safeSpadesTake reports whether taking the trick with the card cannot
// hand us the queen of spades: either the queen is gone, the card ducks
// under her, or we hold the queen ourselves.
func (p *CardCounting) safeSpadesTake(suit deck.Suit, card deck.Card, hand *deck.Container) bool {
	if suit != deck.Spades || p.queenOfSpadesPlayed {
		return true
	}
	return card.Rank < deck.Queen ||
		(card.Rank != deck.Queen && hand.HasCard(deck.QueenOfSpades))
}

// takeRoundIntentionally decides whether winning this pointless trick
// with the suit's top card is statistically favorable: the hand must be
// full of cards that can still be ducked later ("good" cards) and not
// hold so many good cards in the trick's suit that keeping the lead
// there stays comfortable. Acting last is risk-free, so its threshold
// is lower; mid-trick every opponent must be presumed to still follow.
func (p *CardCounting) takeRoundIntentionally(suit deck.Suit, biggestPlayed deck.Rank, hand *deck.Container, trick game.Trick) (deck.Card, bool) {
	if suit == deck.Hearts ||
		hand.SuitCount(suit) < takeMinSuitDepth ||
		hand.MaxOfSuit(suit) < biggestPlayed {
		return deck.Card{}, false
	}

	isLast := trick.Size() == game.NumPlayers-1
	if p.suitRounds[suit] >= takeMaxSuitRounds && !isLast {
		return deck.Card{}, false
	}
	if trick.Points() > 0 {
		return deck.Card{}, false
	}

	// Cards visible in the trick are no longer unaccounted for.
	unaccounted := p.unseen.Copy()
	for seat := 0; seat < game.NumPlayers; seat++ {
		if trick.Played(seat) && seat != p.seat {
			if err := unaccounted.RemoveCard(trick.Cards[seat]); err != nil {
				panic(fmt.Sprintf("hearts: card counter lost track: %v", err))
			}
		}
	}
	var holdersBySuit [deck.NumSuits]int
	for _, s := range deck.Suits() {
		holdersBySuit[s] = min(p.holdersCount(s), unaccounted.SuitCount(s))
	}

	// Too risky mid-trick unless all opponents can still follow.
	if !isLast && holdersBySuit[suit] < game.NumPlayers-1 {
		return deck.Card{}, false
	}

	// Rate every card we could realistically be asked to play: a card
	// with nothing unaccounted above it is stuck winning tricks (bad); a
	// card with nothing below it always ducks (good); in between it
	// depends on how thick the suit still is around it.
	var nGood, nGoodInSuit float64
	for _, s := range deck.Suits() {
		for _, rank := range hand.Ranks(s) {
			if !p.potentiallyPlayable(s, rank) {
				continue
			}
			below := unaccounted.CountBelow(s, rank)
			above := unaccounted.CountAbove(s, rank)
			var credit float64
			switch {
			case above == 0:
			case below == 0:
				credit = 1
			case below >= holdersBySuit[suit] || above < takeMinCardsAbove:
			default:
				credit = takeDoubtfulCredit
			}
			nGood += credit
			if s == suit {
				nGoodInSuit += credit
			}
		}
	}

	if isLast {
		threshold := takeLastLateScore
		if p.suitRounds[suit] < takeMaxSuitRounds {
			threshold = takeLastEarlyScore
		}
		if nGood < threshold {
			return deck.Card{}, false
		}
	} else {
		threshold := takeMidLaterScore
		if p.suitRounds[suit] == 0 {
			threshold = takeMidFirstScore
		}
		if holdersBySuit[suit] != game.NumPlayers-1 || nGood < threshold {
			return deck.Card{}, false
		}
	}

	// With enough good cards in the suit itself there is no hurry to
	// burn the top one now.
	keepThreshold := keepSuitLaterScore
	if p.suitRounds[suit] == 0 {
		keepThreshold = keepSuitFirstScore
	}
	if nGoodInSuit >= keepThreshold {
		return deck.Card{}, false
	}

	return deck.New(suit, hand.MaxOfSuit(suit)), true
}

// potentiallyPlayable filters cards that cannot sensibly be played
// while the board is hot: high spades before the queen surfaced, and
// hearts before they were broken.
func (p *CardCounting) potentiallyPlayable(suit deck.Suit, rank deck.Rank) bool {
	if suit == deck.Spades && !p.queenOfSpadesPlayed && rank >= deck.Queen {
		return false
	}
	if suit == deck.Hearts && !p.heartsPlayed {
		return false
	}
	return true
}

// dumpCard sheds when off suit: dangerous spades first, otherwise the
// top card of the suit whose top is most likely to win an unwanted
// trick later, estimated from the unaccounted cards above and below it.
func (p *CardCounting) dumpCard(hand *deck.Container, trick game.Trick) deck.Card {
	if !p.queenOfSpadesPlayed && hand.HasAnySuit(deck.Spades) {
		if hand.HasCard(deck.QueenOfSpades) {
			return deck.QueenOfSpades
		}
		if !trick.Contains(deck.QueenOfSpades) {
			if hand.HasCard(deck.AceOfSpades) {
				return deck.AceOfSpades
			}
			if hand.HasCard(deck.KingOfSpades) {
				return deck.KingOfSpades
			}
		}
	}

	unaccounted := p.unseen.Copy()
	for seat := 0; seat < game.NumPlayers; seat++ {
		if trick.Played(seat) && seat != p.seat {
			if err := unaccounted.RemoveCard(trick.Cards[seat]); err != nil {
				panic(fmt.Sprintf("hearts: card counter lost track: %v", err))
			}
		}
	}

	best := deck.Card{}
	bestWeight := math.Inf(-1)
	for _, suit := range deck.Suits() {
		if !hand.HasAnySuit(suit) {
			continue
		}
		min, max := hand.MinOfSuit(suit), hand.MaxOfSuit(suit)
		total := unaccounted.SuitCount(suit)

		var weight float64
		if total == 0 {
			// Our top card is also the last of the suit in play; mildly
			// more interesting to shed than a fully safe card.
			weight = dumpExhaustedSuit
		} else {
			middle := 0.0
			for _, rank := range hand.Ranks(suit) {
				if rank != min && rank != max {
					above := float64(unaccounted.CountAbove(suit, rank))
					middle += math.Pow(above/float64(total), dumpMiddleCardExp)
				}
			}
			middle = math.Min(middle, 1)

			probTopBeaten := float64(unaccounted.CountAbove(suit, max)) / float64(total)
			probBottomHighest := float64(unaccounted.CountBelow(suit, min)) / float64(total)

			topFactor := -1.0
			if probTopBeaten != 1 {
				topFactor = math.Pow(1-probTopBeaten, dumpSafetyExp)
			}
			weight = topFactor +
				math.Pow(probBottomHighest, dumpTopDeckExp) -
				middle*dumpMiddleCardWeight
		}

		if weight > bestWeight {
			best, bestWeight = deck.New(suit, max), weight
		}
	}
	if best.IsZero() {
		panic("hearts: card counter asked to discard from an empty hand")
	}
	return best
}

// StartRound leads a trick. Two forcing maneuvers come first: lead the
// queen of spades when only the king and ace are still out (she is
// guaranteed to be covered), and flush the queen with a smaller spade
// when she is the only spade unseen. Otherwise every suit's cheapest
// card is weighed by remaining holders, counting odds and the shared
// lead penalties.
func (p *CardCounting) StartRound(hand *deck.Container, heartsBroken bool) deck.Card {
	if !p.queenOfSpadesPlayed && hand.HasAnySuit(deck.Spades) {
		if hand.HasCard(deck.QueenOfSpades) && p.onlyUnseenSpadesAboveQueen() {
			return deck.QueenOfSpades
		}
		if p.onlyUnseenSpadeIsQueen() {
			if rank := largestBelow(hand, deck.Spades, deck.Queen); rank != 0 {
				return deck.New(deck.Spades, rank)
			}
		}
	}

	best := deck.Card{}
	bestWeight := math.Inf(-1)
	for _, suit := range deck.Suits() {
		if !hand.HasAnySuit(suit) {
			continue
		}
		card := cheapestLead(suit, hand, heartsBroken)
		weight := float64(p.holdersScore(suit)) +
			float64(p.countingLeadFactor(suit, card.Rank)) +
			float64(deck.Ace-card.Rank) +
			float64(leadPenalty(card, heartsBroken, p.queenOfSpadesPlayed))
		if weight > bestWeight {
			best, bestWeight = card, weight
		}
	}
	if best.IsZero() {
		panic("hearts: card counter asked to lead from an empty hand")
	}
	return best
}

// countingLeadFactor scores a lead candidate from the unseen counts:
// unbeatable cards are terrible leads, cards nothing can duck under are
// safe, and a thin layer below still looks decent.
func (p *CardCounting) countingLeadFactor(suit deck.Suit, rank deck.Rank) int {
	above := p.unseen.CountAbove(suit, rank)
	if above == 0 {
		return leadUnbeatableScore
	}
	below := p.unseen.CountBelow(suit, rank)
	if below == 0 {
		return leadSafestBoost + above
	}
	if below < deck.NumSuits {
		return leadLikelySafeBoost + above
	}
	return above
}

func (p *CardCounting) holdersScore(suit deck.Suit) int {
	if n := p.holdersCount(suit); n > 0 {
		return n
	}
	return leadNoHoldersScore
}

func (p *CardCounting) holdersCount(suit deck.Suit) int {
	n := 0
	for seat, holds := range p.holders[suit] {
		if seat != p.seat && holds {
			n++
		}
	}
	return n
}

func (p *CardCounting) suitHeldByUpcoming(suit deck.Suit, trick game.Trick) bool {
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

// maxAvoidingQueen returns the suit's top rank, stepping down one card
// when that top would be the queen of spades.
func (p *CardCounting) maxAvoidingQueen(suit deck.Suit, hand *deck.Container) deck.Rank {
	max := hand.MaxOfSuit(suit)
	if suit == deck.Spades && max == deck.Queen {
		if ranks := hand.Ranks(suit); len(ranks) > 1 {
			return ranks[len(ranks)-2]
		}
	}
	return max
}

// minAvoidingQueen returns the suit's bottom rank, stepping up one card
// when that bottom would be the queen of spades.
func (p *CardCounting) minAvoidingQueen(suit deck.Suit, hand *deck.Container) deck.Rank {
	min := hand.MinOfSuit(suit)
	if suit == deck.Spades && min == deck.Queen {
		if ranks := hand.Ranks(suit); len(ranks) > 1 {
			return ranks[1]
		}
	}
	return min
}

// onlyUnseenSpadesAboveQueen reports whether the spades still out are
// exactly the king, the ace, or both.
func (p *CardCounting) onlyUnseenSpadesAboveQueen() bool {
	ranks := p.unseen.Ranks(deck.Spades)
	switch len(ranks) {
	case 1:
		return ranks[0] == deck.King || ranks[0] == deck.Ace
	case 2:
		return ranks[0] == deck.King && ranks[1] == deck.Ace
	default:
		return false
	}
}

// onlyUnseenSpadeIsQueen reports whether the queen of spades is the
// single spade still out.
func (p *CardCounting) onlyUnseenSpadeIsQueen() bool {
	ranks := p.unseen.Ranks(deck.Spades)
	return len(ranks) == 1 && ranks[0] == deck.Queen
}
