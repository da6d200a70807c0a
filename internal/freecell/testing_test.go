package freecell

import (
	"github.com/arcanaland/freecell/internal/card"
)

func cards(ss ...string) []card.Card {
	out := make([]card.Card, 0, len(ss))
	for _, s := range ss {
		out = append(out, card.MustParse(s))
	}
	return out
}

// newTestGame builds a game with hand-placed cascades and empty open and
// foundation piles, bypassing the deal.
func newTestGame(numOpen int, cascades ...[]card.Card) *Game {
	g := &Game{
		open:    make([]cell, numOpen),
		cascade: make([][]card.Card, len(cascades)),
	}
	for i := range g.foundation {
		g.foundation[i] = []card.Card{}
	}
	for i, pile := range cascades {
		g.cascade[i] = append([]card.Card{}, pile...)
	}
	return g
}

func (g *Game) setOpen(index int, s string) {
	g.open[index].put(card.MustParse(s))
}

func (g *Game) setFoundation(index int, ss ...string) {
	g.foundation[index] = cards(ss...)
}

// build returns a run of n cards starting at rank from, alternating spades
// and hearts and beginning with a spade.
func build(from card.Rank, n int) []card.Card {
	out := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		suit := card.Spades
		if i%2 == 1 {
			suit = card.Hearts
		}
		out = append(out, card.New(from-card.Rank(i), suit))
	}
	return out
}
