package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Card
		hasError bool
	}{
		{name: "Ace of spades", input: "AS", expected: Card{Rank: Ace, Suit: Spades}},
		{name: "Lower case", input: "qd", expected: Card{Rank: Queen, Suit: Diamonds}},
		{name: "Ten as digits", input: "10h", expected: Card{Rank: Ten, Suit: Hearts}},
		{name: "Ten as letter", input: "TC", expected: Card{Rank: Ten, Suit: Clubs}},
		{name: "Suit symbol", input: "7♣", expected: Card{Rank: Seven, Suit: Clubs}},
		{name: "Empty", input: "", hasError: true},
		{name: "Missing suit", input: "K", hasError: true},
		{name: "Unknown suit", input: "KX", hasError: true},
		{name: "Rank zero", input: "0S", hasError: true},
		{name: "Rank too high", input: "14S", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestCard_Color(t *testing.T) {
	t.Parallel()

	assert.True(t, New(Ace, Spades).IsBlack())
	assert.True(t, New(Two, Clubs).IsBlack())
	assert.False(t, New(Three, Diamonds).IsBlack())
	assert.False(t, New(Four, Hearts).IsBlack())

	assert.Equal(t, Black, New(King, Clubs).Color())
	assert.Equal(t, Red, New(King, Hearts).Color())
	assert.Equal(t, "red", Red.String())
}

func TestCard_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", New(Ace, Spades).String())
	assert.Equal(t, "10♥", New(Ten, Hearts).String())
	assert.Equal(t, "K♦", New(King, Diamonds).String())

	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			c := New(r, s)
			parsed, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("ZZ") })
}
