package freecell

import (
	"fmt"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

// Verify checks the game invariants: every card is on the table exactly once
// and each foundation is an Ace-up run of a single suit, with no suit on two
// foundations.
func (g *Game) Verify() error {
	all := make([]card.Card, 0, deck.Size)
	for _, pile := range g.foundation {
		all = append(all, pile...)
	}
	for i := range g.open {
		all = append(all, g.open[i].cards()...)
	}
	for _, pile := range g.cascade {
		all = append(all, pile...)
	}
	if err := deck.Validate(all); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	suits := make(map[card.Suit]int)
	for i, pile := range g.foundation {
		if len(pile) == 0 {
			continue
		}
		suit := pile[0].Suit
		if prev, ok := suits[suit]; ok {
			return fmt.Errorf("%w: %s built on foundations %d and %d", ErrCorruptState, suit.Name(), prev, i)
		}
		suits[suit] = i

		for j, c := range pile {
			if c.Suit != suit || c.Rank != card.Rank(j+1) {
				return fmt.Errorf("%w: foundation %d holds %s at position %d", ErrCorruptState, i, c, j)
			}
		}
	}
	return nil
}
