package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/freecell"
)

// ReplayFile is a recorded game: how it was dealt and the moves played
type ReplayFile struct {
	OpenPiles    int      `toml:"open_piles" yaml:"open_piles"`
	CascadePiles int      `toml:"cascade_piles" yaml:"cascade_piles"`
	Seed         uint64   `toml:"seed" yaml:"seed"`
	Deck         []string `toml:"deck" yaml:"deck"` // explicit deal order, overrides seed
	Moves        []string `toml:"moves" yaml:"moves"`
}

type ValidationResults struct {
	Errors      []string
	Warnings    []string
	MovesPlayed int
	Won         bool
}

type Validator struct {
	ReplayPath string
	Results    ValidationResults
}

func NewValidator(replayPath string) *Validator {
	return &Validator{
		ReplayPath: replayPath,
		Results:    ValidationResults{},
	}
}

// Validate replays the file move by move. Problems with individual moves are
// collected in the results; an error is returned only when the file cannot
// be read or the game cannot be dealt.
func (v *Validator) Validate() (ValidationResults, error) {
	replay, err := LoadReplay(v.ReplayPath)
	if err != nil {
		return v.Results, err
	}

	g, err := replay.Deal()
	if err != nil {
		return v.Results, err
	}

	v.replayMoves(g, replay.Moves)
	return v.Results, nil
}

// LoadReplay decodes a replay file; .yaml and .yml files are read as YAML,
// everything else as TOML.
func LoadReplay(path string) (*ReplayFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("replay file not found: %s", path)
	}

	replay := &ReplayFile{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, replay); err != nil {
			return nil, fmt.Errorf("error parsing %s: %v", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, replay); err != nil {
			return nil, fmt.Errorf("error parsing %s: %v", path, err)
		}
	}

	if replay.OpenPiles == 0 {
		replay.OpenPiles = config.DefaultOpenPiles
	}
	if replay.CascadePiles == 0 {
		replay.CascadePiles = config.DefaultCascadePiles
	}
	return replay, nil
}

// Deal builds the starting position of the replay
func (r *ReplayFile) Deal() (*freecell.Game, error) {
	if len(r.Deck) == 0 {
		return freecell.New(r.OpenPiles, r.CascadePiles, freecell.WithSeed(r.Seed))
	}

	cards := make([]card.Card, 0, len(r.Deck))
	for i, s := range r.Deck {
		c, err := card.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("deck position %d: %v", i, err)
		}
		cards = append(cards, c)
	}
	return freecell.New(r.OpenPiles, r.CascadePiles, freecell.WithDeck(cards))
}

func (v *Validator) replayMoves(g *freecell.Game, moves []string) {
	for i, text := range moves {
		n := i + 1

		m, err := freecell.ParseMove(text)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("move %d: %v", n, err))
			continue
		}

		changed, err := g.Play(m)
		switch {
		case errors.Is(err, freecell.ErrIllegalMove):
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("move %d (%s): illegal move", n, m))
			continue
		case err != nil:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("move %d (%s): %v", n, m, err))
			continue
		case !changed:
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("move %d (%s): no auto-move available", n, m))
			continue
		}

		v.Results.MovesPlayed++
		if err := g.Verify(); err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("move %d (%s): %v", n, m, err))
			return
		}
	}

	v.Results.Won = g.IsWon()
	if !v.Results.Won {
		home := 0
		for _, pile := range g.Foundation() {
			home += len(pile)
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("game not finished: %d of 52 cards on the foundations", home))
	}
}
