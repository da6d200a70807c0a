package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/freecell"
)

// canonicalDeck renders the unshuffled deck. Dealt into 4 cascades it puts
// one whole suit, King at the bottom, in each cascade.
func canonicalDeck() []string {
	var out []string
	for _, c := range deck.New() {
		out = append(out, fmt.Sprintf("%q", c.String()))
	}
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate_WinningReplayYAML(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("open_piles: 1\ncascade_piles: 4\ndeck: [" + strings.Join(canonicalDeck(), ", ") + "]\nmoves:\n")
	for i := 0; i < 13; i++ {
		for c := 0; c < 4; c++ {
			fmt.Fprintf(&b, "  - auto c%d\n", c)
		}
	}

	results, err := NewValidator(writeFile(t, "win.yaml", b.String())).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
	assert.True(t, results.Won)
	assert.Equal(t, 52, results.MovesPlayed)
}

func TestValidate_ReportsBadMoves(t *testing.T) {
	t.Parallel()

	content := `
open_piles = 1
cascade_piles = 4
deck = [` + strings.Join(canonicalDeck(), ", ") + `]
moves = [
  "c0 f0",
  "c0 f0",
  "c0:9 f0",
  "c1 o0",
  "c2 o0",
  "auto c2",
  "nonsense",
  "auto f0",
]
`
	results, err := NewValidator(writeFile(t, "replay.toml", content)).Validate()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"move 3 (c0:9 f0): illegal move",
		"move 5 (c2 o0): illegal move",
		`move 7: invalid move "nonsense": want "<src> <dst>" or "auto <src>"`,
		"move 8 (auto f0): invalid auto-move source: f0",
	}, results.Errors)
	assert.Equal(t, []string{"game not finished: 3 of 52 cards on the foundations"}, results.Warnings)
	assert.Equal(t, 4, results.MovesPlayed)
	assert.False(t, results.Won)
}

func TestValidate_AutoMoveWithoutEffect(t *testing.T) {
	t.Parallel()

	content := `
open_piles = 1
cascade_piles = 4
deck = [` + strings.Join(canonicalDeck(), ", ") + `]
moves = ["c0 o0", "auto c0"]
`
	results, err := NewValidator(writeFile(t, "replay.toml", content)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Contains(t, results.Warnings, "move 2 (auto c0): no auto-move available")
}

func TestValidate_SeededDealDefaultsLayout(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "seeded.toml", "seed = 17\n")
	replay, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 4, replay.OpenPiles)
	assert.Equal(t, 8, replay.CascadePiles)

	g, err := replay.Deal()
	require.NoError(t, err)
	want, err := freecell.New(4, 8, freecell.WithSeed(17))
	require.NoError(t, err)
	assert.Equal(t, want.Cascade(), g.Cascade())

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, 0, results.MovesPlayed)
}

func TestValidate_FatalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "Bad TOML", file: "bad.toml", content: "moves = [\n"},
		{name: "Bad YAML", file: "bad.yml", content: "moves: [\n"},
		{name: "Too few cascades", file: "small.toml", content: "cascade_piles = 3\n"},
		{name: "Bad card", file: "card.toml", content: `deck = ["AS", "ZZ"]` + "\n"},
		{name: "Short deck", file: "short.toml", content: `deck = ["AS", "2S"]` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewValidator(writeFile(t, tt.file, tt.content)).Validate()
			assert.Error(t, err)
		})
	}

	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.ErrorContains(t, err, "replay file not found")
}
