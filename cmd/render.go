package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/freecell"
)

const (
	minColumnWidth = 5
	maxColumnWidth = 8
)

// boardPrinter renders a game as text columns
type boardPrinter struct {
	red    *colorize.Color
	label  *colorize.Color
	column int
}

func newBoardPrinter(useColor bool, numCascade int) *boardPrinter {
	red := colorize.New(colorize.FgHiRed)
	label := colorize.New(colorize.FgCyan)
	if !useColor {
		red.DisableColor()
		label.DisableColor()
	}

	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	column := width / max(numCascade, 1)
	column = min(max(column, minColumnWidth), maxColumnWidth)

	return &boardPrinter{red: red, label: label, column: column}
}

// cardText pads the card to the column width before colouring it, so the
// escape codes do not count towards the width.
func (p *boardPrinter) cardText(c card.Card) string {
	text := pad(c.String(), p.column)
	if c.Color() == card.Red {
		return p.red.Sprint(text)
	}
	return text
}

func (p *boardPrinter) slot(pile []card.Card) string {
	if len(pile) == 0 {
		return pad("--", p.column)
	}
	return p.cardText(pile[len(pile)-1])
}

func (p *boardPrinter) print(w io.Writer, g *freecell.Game) {
	var b strings.Builder

	b.WriteString(p.label.Sprint(pad("Home:", 7)))
	for _, pile := range g.Foundation() {
		b.WriteString(p.slot(pile))
	}
	b.WriteString("\n")

	b.WriteString(p.label.Sprint(pad("Cells:", 7)))
	for _, pile := range g.Open() {
		b.WriteString(p.slot(pile))
	}
	b.WriteString("\n\n")

	cascades := g.Cascade()
	height := 0
	for i := range cascades {
		b.WriteString(p.label.Sprint(pad(fmt.Sprintf("c%d", i), p.column)))
		height = max(height, len(cascades[i]))
	}
	b.WriteString("\n")

	for row := 0; row < height; row++ {
		for _, pile := range cascades {
			if row < len(pile) {
				b.WriteString(p.cardText(pile[row]))
			} else {
				b.WriteString(pad("", p.column))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprint(w, b.String())
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
