package freecell

import (
	"fmt"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

// IsValidMove reports whether moving src to dst is legal in the current
// state. It never changes the game and answers false for any malformed or
// illegal move, so it is safe to call speculatively.
func (g *Game) IsValidMove(src, dst Location) bool {
	if src.IsZero() || dst.IsZero() || src.Type == Foundation {
		return false
	}
	if src.Type == dst.Type && src.Index == dst.Index {
		return false
	}
	if !g.inRange(src) || !g.inRange(dst) {
		return false
	}

	switch src.Type {
	case Open:
		if g.open[src.Index].empty() {
			return false
		}
		return g.isValidMoveFromOpen(g.open[src.Index].card, dst)
	case Cascade:
		start, ok := g.runStart(src)
		if !ok {
			return false
		}
		return g.isValidMoveFromCascade(src.Index, start, dst)
	default:
		return false
	}
}

func (g *Game) isValidMoveFromOpen(c card.Card, dst Location) bool {
	switch dst.Type {
	case Open:
		return g.open[dst.Index].empty()
	case Cascade:
		pile := g.cascade[dst.Index]
		if len(pile) == 0 {
			return true
		}
		return canStack(top(pile), c)
	case Foundation:
		return g.canFound(c, dst.Index)
	default:
		return false
	}
}

func (g *Game) isValidMoveFromCascade(srcIndex, start int, dst Location) bool {
	pile := g.cascade[srcIndex]

	switch dst.Type {
	case Open:
		return g.open[dst.Index].empty()
	case Cascade:
		if g.movingTooManyCards(srcIndex, start, dst.Index) {
			return false
		}
		if !g.isBuildFrom(srcIndex, start) {
			return false
		}
		target := g.cascade[dst.Index]
		if len(target) == 0 {
			return true
		}
		return canStack(top(target), pile[start])
	case Foundation:
		// Only a single card may go home
		if start != len(pile)-1 {
			return false
		}
		return g.canFound(pile[start], dst.Index)
	default:
		return false
	}
}

// canFound reports whether c may be placed on the foundation at index. An
// empty foundation only accepts an Ace.
func (g *Game) canFound(c card.Card, index int) bool {
	pile := g.foundation[index]
	if c.Rank == card.Ace {
		return len(pile) == 0
	}
	if len(pile) == 0 {
		return false
	}
	return pile[0].Suit == c.Suit && top(pile).Rank == c.Rank-1
}

// canStack reports whether over may sit directly on under in a cascade
func canStack(under, over card.Card) bool {
	return under.Rank == over.Rank+1 && isStackable(under, over)
}

// isStackable reports whether the two cards have different colours. Rank is
// checked separately by the caller.
func isStackable(under, over card.Card) bool {
	return under.IsBlack() != over.IsBlack()
}

// IsBuild reports whether the cards of cascade pileIndex from cardIndex to the
// end form a descending run of alternating colours.
func (g *Game) IsBuild(pileIndex, cardIndex int) (bool, error) {
	if pileIndex < 0 || pileIndex >= len(g.cascade) {
		return false, fmt.Errorf("%w: cascade %d out of range [0, %d)", ErrInvalidIndex, pileIndex, len(g.cascade))
	}
	if cardIndex < 0 || cardIndex > len(g.cascade[pileIndex]) {
		return false, fmt.Errorf("%w: card %d out of range [0, %d] in cascade %d",
			ErrInvalidIndex, cardIndex, len(g.cascade[pileIndex]), pileIndex)
	}
	return g.isBuildFrom(pileIndex, cardIndex), nil
}

func (g *Game) isBuildFrom(pileIndex, cardIndex int) bool {
	pile := g.cascade[pileIndex]
	for i := cardIndex; i < len(pile)-1; i++ {
		if !canStack(pile[i], pile[i+1]) {
			return false
		}
	}
	return true
}

// MaxMovable returns how many cards a single move into cascade dstIndex can
// carry: each empty open pile holds one card in transit and each empty
// cascade other than the destination doubles the total.
func (g *Game) MaxMovable(dstIndex int) int {
	if dstIndex < 0 || dstIndex >= len(g.cascade) {
		return 0
	}

	emptyCascade := g.emptyCascade()
	if len(g.cascade[dstIndex]) == 0 {
		emptyCascade--
	}

	capacity := g.emptyOpen() + 1
	for i := 0; i < emptyCascade && capacity <= deck.Size; i++ {
		capacity *= 2
	}
	return capacity
}

func (g *Game) movingTooManyCards(srcIndex, start, dstIndex int) bool {
	numCards := len(g.cascade[srcIndex]) - start
	return numCards > g.MaxMovable(dstIndex)
}

// ValidDestinations lists every location src can legally move to, foundations
// first, then open piles, then cascades.
func (g *Game) ValidDestinations(src Location) []Location {
	var dsts []Location
	for i := 0; i < NumFoundation; i++ {
		if dst := FoundationPile(i); g.IsValidMove(src, dst) {
			dsts = append(dsts, dst)
		}
	}
	for i := range g.open {
		if dst := OpenPile(i); g.IsValidMove(src, dst) {
			dsts = append(dsts, dst)
		}
	}
	for i := range g.cascade {
		if dst := CascadeTop(i); g.IsValidMove(src, dst) {
			dsts = append(dsts, dst)
		}
	}
	return dsts
}
