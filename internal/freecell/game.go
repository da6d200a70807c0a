// Package freecell implements the rules of FreeCell solitaire with a
// configurable number of open piles (free cells) and cascades.
//
// A Game is owned by a single caller; none of its methods are safe for
// concurrent use. Accessors return copies, and only ExecuteMove and
// AttemptAutoMove change the piles.
package freecell

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

const (
	// NumFoundation is the fixed number of foundation piles, one per suit
	NumFoundation = 4
	// MinCascade is the smallest number of cascades a game can be dealt into
	MinCascade = 4
)

// cell is an open pile. It holds at most one card.
type cell struct {
	card card.Card
	full bool
}

func (c *cell) empty() bool {
	return !c.full
}

func (c *cell) put(cd card.Card) {
	if c.full {
		panic(fmt.Sprintf("freecell: open pile already holds %s", c.card))
	}
	c.card, c.full = cd, true
}

func (c *cell) take() card.Card {
	cd := c.card
	c.card, c.full = card.Card{}, false
	return cd
}

func (c *cell) cards() []card.Card {
	if c.empty() {
		return []card.Card{}
	}
	return []card.Card{c.card}
}

// Game is the state of one FreeCell deal
type Game struct {
	foundation [NumFoundation][]card.Card
	open       []cell
	cascade    [][]card.Card
}

type options struct {
	rng   *rand.Rand
	cards []card.Card
}

// Option customises how New deals a game
type Option func(*options)

// WithRand deals from a deck shuffled with rng
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed deals a reproducible game for seed
func WithSeed(seed uint64) Option {
	return WithRand(deck.NewRand(seed))
}

// WithDeck deals cards in the given order without shuffling. The slice must
// hold each of the 52 cards exactly once.
func WithDeck(cards []card.Card) Option {
	return func(o *options) {
		o.cards = append([]card.Card(nil), cards...)
	}
}

// New deals a game with numOpen open piles and numCascade cascades
func New(numOpen, numCascade int, opts ...Option) (*Game, error) {
	if numOpen <= 0 || numCascade < MinCascade {
		return nil, fmt.Errorf("%w: need at least 1 open pile and %d cascades, got %d and %d",
			ErrInvalidConfiguration, MinCascade, numOpen, numCascade)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cards := o.cards
	if cards != nil {
		if err := deck.Validate(cards); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	} else {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		cards = deck.Shuffled(rng)
	}

	g := &Game{
		open:    make([]cell, numOpen),
		cascade: make([][]card.Card, numCascade),
	}
	for i := range g.foundation {
		g.foundation[i] = []card.Card{}
	}
	for i := range g.cascade {
		g.cascade[i] = make([]card.Card, 0, len(cards)/numCascade+1)
	}
	for i, c := range cards {
		g.cascade[i%numCascade] = append(g.cascade[i%numCascade], c)
	}
	return g, nil
}

// NumOpen returns the number of open piles
func (g *Game) NumOpen() int {
	return len(g.open)
}

// NumCascade returns the number of cascade piles
func (g *Game) NumCascade() int {
	return len(g.cascade)
}

// Foundation returns a copy of the foundation piles
func (g *Game) Foundation() [][]card.Card {
	return copyPiles(g.foundation[:])
}

// Open returns a copy of the open piles; each holds zero or one card
func (g *Game) Open() [][]card.Card {
	piles := make([][]card.Card, len(g.open))
	for i := range g.open {
		piles[i] = g.open[i].cards()
	}
	return piles
}

// Cascade returns a copy of the cascade piles, bottom card first
func (g *Game) Cascade() [][]card.Card {
	return copyPiles(g.cascade)
}

// IsWon reports whether every foundation holds a complete suit
func (g *Game) IsWon() bool {
	for _, pile := range g.foundation {
		if len(pile) != int(card.King) {
			return false
		}
	}
	return true
}

func copyPiles(piles [][]card.Card) [][]card.Card {
	out := make([][]card.Card, len(piles))
	for i, p := range piles {
		out[i] = append(make([]card.Card, 0, len(p)), p...)
	}
	return out
}

func top(pile []card.Card) card.Card {
	return pile[len(pile)-1]
}

func (g *Game) emptyOpen() int {
	n := 0
	for i := range g.open {
		if g.open[i].empty() {
			n++
		}
	}
	return n
}

func (g *Game) firstEmptyOpen() (int, bool) {
	for i := range g.open {
		if g.open[i].empty() {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) emptyCascade() int {
	n := 0
	for _, pile := range g.cascade {
		if len(pile) == 0 {
			n++
		}
	}
	return n
}

// inRange reports whether l names an existing pile
func (g *Game) inRange(l Location) bool {
	if l.Index < 0 {
		return false
	}
	switch l.Type {
	case Open:
		return l.Index < len(g.open)
	case Cascade:
		return l.Index < len(g.cascade)
	case Foundation:
		return l.Index < NumFoundation
	default:
		return false
	}
}

// runStart resolves the CardIndex of a cascade location against the live
// pile, reporting false when it does not address a card.
func (g *Game) runStart(l Location) (int, bool) {
	pile := g.cascade[l.Index]
	idx := l.CardIndex
	if idx == TopCard {
		idx = len(pile) - 1
	}
	if idx < 0 || idx >= len(pile) {
		return 0, false
	}
	return idx, true
}
