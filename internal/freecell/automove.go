package freecell

import (
	"fmt"

	"github.com/arcanaland/freecell/internal/card"
)

// AttemptAutoMove sends the card at src home if a foundation accepts it,
// otherwise moves a cascade's top card into the first empty open pile.
// It returns false, without changing anything, when neither applies.
// Cascade sources always act on the top card.
func (g *Game) AttemptAutoMove(src Location) (bool, error) {
	if src.IsZero() || src.Type == Foundation || !g.inRange(src) {
		return false, fmt.Errorf("%w: %s", ErrInvalidSource, src)
	}

	switch src.Type {
	case Open:
		if g.open[src.Index].empty() {
			return false, fmt.Errorf("%w: open pile %d is empty", ErrInvalidSource, src.Index)
		}
	case Cascade:
		if len(g.cascade[src.Index]) == 0 {
			return false, fmt.Errorf("%w: cascade %d is empty", ErrInvalidSource, src.Index)
		}
		src.CardIndex = len(g.cascade[src.Index]) - 1
	}

	if f, ok := g.ValidFoundation(src); ok {
		g.push(FoundationPile(f), g.pop(src))
		return true, nil
	}

	// Moving from one open pile to another gains nothing
	if src.Type == Cascade {
		if o, ok := g.firstEmptyOpen(); ok {
			g.push(OpenPile(o), g.pop(src))
			return true, nil
		}
	}

	return false, nil
}

// ValidFoundation finds the foundation that accepts the card at src: the
// pile already holding its suit if the card is next in sequence, or the first
// empty pile for an Ace. ok is false when there is none.
func (g *Game) ValidFoundation(src Location) (int, bool) {
	if (src.Type != Open && src.Type != Cascade) || !g.inRange(src) {
		return 0, false
	}

	var c card.Card
	if src.Type == Open {
		if g.open[src.Index].empty() {
			return 0, false
		}
		c = g.open[src.Index].card
	} else {
		start, found := g.runStart(src)
		if !found {
			return 0, false
		}
		c = g.cascade[src.Index][start]
	}

	for i, pile := range g.foundation {
		if len(pile) > 0 && pile[0].Suit == c.Suit {
			// A suit is only ever built on one foundation
			if top(pile).Rank == c.Rank-1 {
				return i, true
			}
			return 0, false
		}
	}

	if c.Rank != card.Ace {
		return 0, false
	}
	for i, pile := range g.foundation {
		if len(pile) == 0 {
			return i, true
		}
	}
	return 0, false
}
