package deck

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/arcanaland/freecell/internal/card"
)

// Size is the number of cards in a standard deck
const Size = 52

// New returns the canonical, unshuffled deck: Kings first, Aces last, and
// within each rank spades, clubs, diamonds, hearts.
func New() []card.Card {
	cards := make([]card.Card, 0, Size)
	for r := card.King; r >= card.Ace; r-- {
		for _, s := range card.Suits {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}

// NewRand returns a deterministic random source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle reorders cards in place with a Fisher-Yates shuffle driven by rng
func Shuffle(cards []card.Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Shuffled returns a freshly built deck shuffled with rng
func Shuffled(rng *rand.Rand) []card.Card {
	cards := New()
	Shuffle(cards, rng)
	return cards
}

// Validate checks that cards hold each of the 52 cards exactly once
func Validate(cards []card.Card) error {
	seen := make(map[card.Card]int, Size)
	for _, c := range cards {
		if !c.Rank.Valid() {
			return fmt.Errorf("invalid rank %d", int(c.Rank))
		}
		if _, ok := card.SuitName(c.Suit); !ok {
			return fmt.Errorf("invalid suit %d", int(c.Suit))
		}
		seen[c]++
	}

	var problems []string
	for _, c := range New() {
		switch n := seen[c]; {
		case n == 0:
			problems = append(problems, "missing "+c.String())
		case n > 1:
			problems = append(problems, fmt.Sprintf("%s appears %d times", c, n))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("incomplete deck: %s", strings.Join(problems, ", "))
	}
	return nil
}
