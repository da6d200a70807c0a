package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is a card rank from Ace (1) to King (13)
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "A",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Suit is one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Suits lists the suits in canonical deck order
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
}

var suitNames = map[Suit]string{
	Spades:   "spades",
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Hearts:   "hearts",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Name returns the lower-case English name of the suit
func (s Suit) Name() string {
	return suitNames[s]
}

// SuitName looks up the English name of s, reporting whether s is a known suit
func SuitName(s Suit) (string, bool) {
	name, ok := suitNames[s]
	return name, ok
}

// Color is the binary colour derived from a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is an immutable playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New returns the card of the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsBlack reports whether the card is a spade or a club
func (c Card) IsBlack() bool {
	return c.Suit == Spades || c.Suit == Clubs
}

// Color returns the colour of the card's suit
func (c Card) Color() Color {
	if c.IsBlack() {
		return Black
	}
	return Red
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

var rankLetters = map[string]Rank{
	"A": Ace,
	"T": Ten,
	"J": Jack,
	"Q": Queen,
	"K": King,
}

var suitLetters = map[string]Suit{
	"S": Spades,
	"♠": Spades,
	"C": Clubs,
	"♣": Clubs,
	"D": Diamonds,
	"♦": Diamonds,
	"H": Hearts,
	"♥": Hearts,
}

// Parse reads a card written as rank followed by suit, e.g. "AS", "10h", "Q♦"
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	// The suit is the last rune; the symbols are multi-byte
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card: %q", s)
	}
	rankPart := string(runes[:len(runes)-1])
	suitPart := string(runes[len(runes)-1])

	suit, ok := suitLetters[suitPart]
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	rank, ok := rankLetters[rankPart]
	if !ok {
		n, err := strconv.Atoi(rankPart)
		if err != nil || !Rank(n).Valid() {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Rank(n)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is like Parse but panics on malformed input
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
