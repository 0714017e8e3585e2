package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/cardtable/hearts/internal/deck"
	"github.com/cardtable/hearts/internal/game"
)

// Combiner runs every computer strategy side by side and logs whenever
// they disagree on a card. It plays the card-counting player's choice.
// Meant for evaluation runs, not for regular opponents.
type Combiner struct {
	seat    int
	logger  *log.Logger
	players []game.Player
}

// NewCombiner creates a combiner for the given seat.
func NewCombiner(seat int, logger *log.Logger) *Combiner {
	return &Combiner{
		seat:   seat,
		logger: logger.WithPrefix("combiner"),
		players: []game.Player{
			NewStandard(),
			NewAdvanced(seat),
			NewCardCounting(seat),
		},
	}
}

func (p *Combiner) Kind() string { return KindCombiner }

func (p *Combiner) ProcessCardsForNewHand(hand *deck.Container) {
	for _, player := range p.players {
		player.ProcessCardsForNewHand(hand)
	}
}

func (p *Combiner) StartHand(hand *deck.Container) deck.Card {
	return p.collect("start hand", func(player game.Player) deck.Card {
		return player.StartHand(hand)
	})
}

func (p *Combiner) StartRound(hand *deck.Container, heartsBroken bool) deck.Card {
	return p.collect("start round", func(player game.Player) deck.Card {
		return player.StartRound(hand, heartsBroken)
	})
}

func (p *Combiner) PlayInRound(hand *deck.Container, trick game.Trick) deck.Card {
	return p.collect("in round", func(player game.Player) deck.Card {
		return player.PlayInRound(hand, trick)
	})
}

func (p *Combiner) ProcessRound(trick game.Trick) {
	for _, player := range p.players {
		player.ProcessRound(trick)
	}
}

// collect asks every wrapped strategy for its card, logs a comparison
// line when the choices diverge and returns the last (card-counting)
// choice.
func (p *Combiner) collect(phase string, choose func(game.Player) deck.Card) deck.Card {
	choices := make([]deck.Card, len(p.players))
	differ := false
	for i, player := range p.players {
		choices[i] = choose(player)
		if choices[i] != choices[0] {
			differ = true
		}
	}
	if differ {
		fields := []any{"seat", p.seat, "phase", phase}
		for i, player := range p.players {
			fields = append(fields, player.Kind(), choices[i].String())
		}
		p.logger.Info("strategies disagree", fields...)
	}
	return choices[len(choices)-1]
}
