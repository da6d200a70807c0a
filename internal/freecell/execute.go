package freecell

import "github.com/arcanaland/freecell/internal/card"

// ExecuteMove carries out a move from src to dst. It does not check
// legality: callers must confirm the move with IsValidMove first, otherwise
// the game state may be left inconsistent.
func (g *Game) ExecuteMove(src, dst Location) {
	if src.Type == Cascade && dst.Type == Cascade {
		g.moveRun(src, dst.Index)
		return
	}
	g.push(dst, g.pop(src))
}

// moveRun moves the cards from src.CardIndex to the end of the source
// cascade onto cascade dstIndex, keeping their order.
func (g *Game) moveRun(src Location, dstIndex int) {
	pile := g.cascade[src.Index]
	start := src.CardIndex
	if start == TopCard {
		start = len(pile) - 1
	}
	g.cascade[dstIndex] = append(g.cascade[dstIndex], pile[start:]...)
	g.cascade[src.Index] = pile[:start]
}

// pop removes the single card an open pile holds or the top card of a cascade
func (g *Game) pop(src Location) card.Card {
	if src.Type == Open {
		return g.open[src.Index].take()
	}
	pile := g.cascade[src.Index]
	c := top(pile)
	g.cascade[src.Index] = pile[:len(pile)-1]
	return c
}

func (g *Game) push(dst Location, c card.Card) {
	switch dst.Type {
	case Open:
		g.open[dst.Index].put(c)
	case Cascade:
		g.cascade[dst.Index] = append(g.cascade[dst.Index], c)
	case Foundation:
		g.foundation[dst.Index] = append(g.foundation[dst.Index], c)
	}
}
