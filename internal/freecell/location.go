package freecell

import (
	"fmt"
	"strconv"
	"strings"
)

// PileType selects one of the three pile groups. The zero value means no
// location was given.
type PileType int

const (
	Open PileType = iota + 1
	Cascade
	Foundation
)

func (t PileType) String() string {
	switch t {
	case Open:
		return "open"
	case Cascade:
		return "cascade"
	case Foundation:
		return "foundation"
	default:
		return "none"
	}
}

// TopCard as a CardIndex means "the last card of the cascade"
const TopCard = -1

// Location addresses a pile, and for cascades the first card of the run being
// moved. CardIndex is ignored for open and foundation piles.
type Location struct {
	Type      PileType
	Index     int
	CardIndex int
}

// OpenPile addresses the open pile (free cell) at index
func OpenPile(index int) Location {
	return Location{Type: Open, Index: index}
}

// CascadePile addresses the run starting at cardIndex in the cascade at index
func CascadePile(index, cardIndex int) Location {
	return Location{Type: Cascade, Index: index, CardIndex: cardIndex}
}

// CascadeTop addresses the top card of the cascade at index
func CascadeTop(index int) Location {
	return Location{Type: Cascade, Index: index, CardIndex: TopCard}
}

// FoundationPile addresses the foundation pile at index
func FoundationPile(index int) Location {
	return Location{Type: Foundation, Index: index}
}

// IsZero reports whether no location was given
func (l Location) IsZero() bool {
	return l.Type == 0
}

func (l Location) String() string {
	switch l.Type {
	case Open:
		return fmt.Sprintf("o%d", l.Index)
	case Foundation:
		return fmt.Sprintf("f%d", l.Index)
	case Cascade:
		if l.CardIndex == TopCard {
			return fmt.Sprintf("c%d", l.Index)
		}
		return fmt.Sprintf("c%d:%d", l.Index, l.CardIndex)
	default:
		return "-"
	}
}

var pilePrefixes = map[byte]PileType{
	'o': Open,
	'c': Cascade,
	'f': Foundation,
}

// ParseLocation reads the short text form used by the command line and replay
// files: "o1", "f0", "c3" (top card) or "c3:5" (run from card 5).
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Location{}, fmt.Errorf("invalid location: %q", s)
	}

	pileType, ok := pilePrefixes[s[0]]
	if !ok {
		return Location{}, fmt.Errorf("invalid pile type in location %q", s)
	}

	indexPart, cardPart, hasCard := strings.Cut(s[1:], ":")
	index, err := strconv.Atoi(indexPart)
	if err != nil || index < 0 {
		return Location{}, fmt.Errorf("invalid pile index in location %q", s)
	}

	loc := Location{Type: pileType, Index: index}
	if pileType == Cascade {
		loc.CardIndex = TopCard
	}
	if hasCard {
		if pileType != Cascade {
			return Location{}, fmt.Errorf("card index only allowed for cascades: %q", s)
		}
		cardIndex, err := strconv.Atoi(cardPart)
		if err != nil || cardIndex < 0 {
			return Location{}, fmt.Errorf("invalid card index in location %q", s)
		}
		loc.CardIndex = cardIndex
	}
	return loc, nil
}
