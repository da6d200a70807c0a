package freecell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/freecell/internal/card"
)

func TestExecuteMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		src            Location
		dst            Location
		wantCascade    [][]card.Card
		wantOpen       [][]card.Card
		wantFoundation []card.Card
	}{
		{
			name:           "Open to foundation",
			src:            OpenPile(0),
			dst:            FoundationPile(0),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H", "7S"), cards("10D"), cards("3S"), {}},
			wantOpen:       [][]card.Card{{}, {}},
			wantFoundation: cards("AS", "2S"),
		},
		{
			name:           "Open to cascade",
			src:            OpenPile(0),
			dst:            CascadeTop(3),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H", "7S"), cards("10D"), cards("3S"), cards("2S")},
			wantOpen:       [][]card.Card{{}, {}},
			wantFoundation: cards("AS"),
		},
		{
			name:           "Open to open",
			src:            OpenPile(0),
			dst:            OpenPile(1),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H", "7S"), cards("10D"), cards("3S"), {}},
			wantOpen:       [][]card.Card{{}, cards("2S")},
			wantFoundation: cards("AS"),
		},
		{
			name:           "Cascade to open",
			src:            CascadeTop(0),
			dst:            OpenPile(1),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H"), cards("10D"), cards("3S"), {}},
			wantOpen:       [][]card.Card{cards("2S"), cards("7S")},
			wantFoundation: cards("AS"),
		},
		{
			name:           "Cascade to foundation is not re-validated",
			src:            CascadePile(2, 0),
			dst:            FoundationPile(0),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H", "7S"), cards("10D"), {}, {}},
			wantOpen:       [][]card.Card{cards("2S"), {}},
			wantFoundation: cards("AS", "3S"),
		},
		{
			name:           "Run to cascade",
			src:            CascadePile(0, 1),
			dst:            CascadeTop(1),
			wantCascade:    [][]card.Card{cards("KC"), cards("10D", "9S", "8H", "7S"), cards("3S"), {}},
			wantOpen:       [][]card.Card{cards("2S"), {}},
			wantFoundation: cards("AS"),
		},
		{
			name:           "Run to empty cascade",
			src:            CascadePile(0, 2),
			dst:            CascadeTop(3),
			wantCascade:    [][]card.Card{cards("KC", "9S"), cards("10D"), cards("3S"), cards("8H", "7S")},
			wantOpen:       [][]card.Card{cards("2S"), {}},
			wantFoundation: cards("AS"),
		},
		{
			name:           "Top card to cascade",
			src:            CascadeTop(0),
			dst:            CascadeTop(3),
			wantCascade:    [][]card.Card{cards("KC", "9S", "8H"), cards("10D"), cards("3S"), cards("7S")},
			wantOpen:       [][]card.Card{cards("2S"), {}},
			wantFoundation: cards("AS"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGame(2, cards("KC", "9S", "8H", "7S"), cards("10D"), cards("3S"), nil)
			g.setOpen(0, "2S")
			g.setFoundation(0, "AS")

			g.ExecuteMove(tt.src, tt.dst)

			assert.Equal(t, tt.wantCascade, g.Cascade())
			assert.Equal(t, tt.wantOpen, g.Open())
			assert.Equal(t, tt.wantFoundation, g.Foundation()[0])
		})
	}
}

func TestExecuteMove_SourceReuseDoesNotClobberRun(t *testing.T) {
	t.Parallel()

	g := newTestGame(1, cards("KC", "QD", "JS"), cards("KH"), nil, nil)
	g.ExecuteMove(CascadePile(0, 1), CascadeTop(1))
	require.Equal(t, cards("KC"), g.Cascade()[0])

	// Growing the source again must not overwrite the moved cards
	g.setOpen(0, "5H")
	g.ExecuteMove(OpenPile(0), CascadeTop(0))

	assert.Equal(t, cards("KC", "5H"), g.Cascade()[0])
	assert.Equal(t, cards("KH", "QD", "JS"), g.Cascade()[1])
}
