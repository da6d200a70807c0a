package freecell

import (
	"fmt"
	"strings"
)

// Move is a single player action: either a move from Src to Dst or, when
// Auto is set, an auto-move of Src.
type Move struct {
	Src  Location
	Dst  Location
	Auto bool
}

// ParseMove reads "<src> <dst>" or "auto <src>", e.g. "c3:5 c1" or "auto o0"
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("invalid move %q: want \"<src> <dst>\" or \"auto <src>\"", s)
	}

	if strings.EqualFold(fields[0], "auto") || strings.EqualFold(fields[0], "a") {
		src, err := ParseLocation(fields[1])
		if err != nil {
			return Move{}, err
		}
		return Move{Src: src, Auto: true}, nil
	}

	src, err := ParseLocation(fields[0])
	if err != nil {
		return Move{}, err
	}
	dst, err := ParseLocation(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{Src: src, Dst: dst}, nil
}

func (m Move) String() string {
	if m.Auto {
		return "auto " + m.Src.String()
	}
	return m.Src.String() + " " + m.Dst.String()
}

// Play checks and performs m, reporting whether the piles changed. Unlike
// ExecuteMove it never applies an illegal move.
func (g *Game) Play(m Move) (bool, error) {
	if m.Auto {
		return g.AttemptAutoMove(m.Src)
	}
	if !g.IsValidMove(m.Src, m.Dst) {
		return false, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	g.ExecuteMove(m.Src, m.Dst)
	return true, nil
}
