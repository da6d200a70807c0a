package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/freecell/internal/freecell"
	"github.com/arcanaland/freecell/internal/logger"
)

const playHelp = `Commands:
  <src> <dst>   move cards, e.g. "c3 o0", "c2:4 c7", "o1 f0"
  auto <src>    send a card home, or to a free cell (also "a <src>")
  hint <src>    list the legal destinations for a source
  board         print the board again
  help          show this help
  quit          leave the game

Piles: oN open pile, fN foundation, cN top of cascade N,
cN:K the run starting at card K of cascade N (counting from 0).`

// session is one interactive game on a terminal or script
type session struct {
	id      string
	game    *freecell.Game
	printer *boardPrinter
	out     io.Writer
	prompt  bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of FreeCell on the terminal",
	Long: `Play deals a game and reads moves from standard input, one per line.
Type "help" during the game for the list of commands.

Examples:
  freecell play
  freecell play --seed 11982 --open 2
  echo "auto c0" | freecell play --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		g, err := settings.deal()
		if err != nil {
			return err
		}

		s := &session{
			id:      uuid.NewString(),
			game:    g,
			printer: newBoardPrinter(settings.color, g.NumCascade()),
			out:     cmd.OutOrStdout(),
			prompt:  term.IsTerminal(int(os.Stdin.Fd())),
		}
		logger.LogInfo("session %s: playing game %d", s.id, settings.seed)

		printHeader(s.out, settings)
		return s.run(cmd.InOrStdin())
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addGameFlags(playCmd)
}

func printHeader(w io.Writer, s gameSettings) {
	fmt.Fprintf(w, "Game %d (%d free cells, %d cascades)\n\n", s.seed, s.openPiles, s.cascadePiles)
}

// run reads commands until quit, end of input or a won game
func (s *session) run(in io.Reader) error {
	s.printer.print(s.out, s.game)

	scanner := bufio.NewScanner(in)
	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := s.handle(line); done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		logger.LogError("session %s: reading input: %v", s.id, err)
		return fmt.Errorf("error reading input: %v", err)
	}
	logger.LogInfo("session %s: input closed", s.id)
	return nil
}

// handle runs one command line and reports whether the session is over
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		logger.LogInfo("session %s: quit", s.id)
		return true
	case "help", "?":
		fmt.Fprintln(s.out, playHelp)
		return false
	case "board", "b":
		s.printer.print(s.out, s.game)
		return false
	case "hint", "h":
		s.hint(fields[1:])
		return false
	}

	m, err := freecell.ParseMove(line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}

	changed, err := s.game.Play(m)
	switch {
	case errors.Is(err, freecell.ErrIllegalMove):
		fmt.Fprintf(s.out, "Illegal move: %s\n", m)
		return false
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	case !changed:
		fmt.Fprintf(s.out, "No automatic move for %s\n", m.Src)
		return false
	}

	logger.LogInfo("session %s: %s", s.id, m)
	s.printer.print(s.out, s.game)

	if s.game.IsWon() {
		logger.LogInfo("session %s: won", s.id)
		fmt.Fprintln(s.out, "You won!")
		return true
	}
	return false
}

func (s *session) hint(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: hint <src>")
		return
	}

	src, err := freecell.ParseLocation(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	dsts := s.game.ValidDestinations(src)
	if len(dsts) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %s\n", src)
		return
	}

	names := make([]string, len(dsts))
	for i, dst := range dsts {
		names[i] = dst.String()
	}
	fmt.Fprintf(s.out, "%s can move to: %s\n", src, strings.Join(names, ", "))
}
