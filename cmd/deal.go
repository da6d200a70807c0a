package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/freecell"
	"github.com/arcanaland/freecell/internal/logger"
)

// gameSettings is the layout and deal resolved from config and flags
type gameSettings struct {
	openPiles    int
	cascadePiles int
	seed         uint64
	color        bool
}

// addGameFlags registers the flags shared by deal and play
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("open", "o", 0, "Number of open piles (free cells)")
	cmd.Flags().IntP("cascade", "c", 0, "Number of cascade piles")
	cmd.Flags().Uint64P("seed", "s", 0, "Deal number; 0 picks a random deal")
	cmd.Flags().Bool("no-color", false, "Disable coloured output")
}

// resolveSettings starts from the config file and applies any flags the user set
func resolveSettings(cmd *cobra.Command) (gameSettings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return gameSettings{}, err
	}

	s := gameSettings{
		openPiles:    cfg.OpenPiles,
		cascadePiles: cfg.CascadePiles,
		seed:         cfg.Seed,
		color:        cfg.Color,
	}
	if cmd.Flags().Changed("open") {
		s.openPiles, _ = cmd.Flags().GetInt("open")
	}
	if cmd.Flags().Changed("cascade") {
		s.cascadePiles, _ = cmd.Flags().GetInt("cascade")
	}
	if cmd.Flags().Changed("seed") {
		s.seed, _ = cmd.Flags().GetUint64("seed")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		s.color = false
	}

	// Pick the random deal here so it can be shown and replayed
	for s.seed == 0 {
		s.seed = rand.Uint64()
	}
	return s, nil
}

func (s gameSettings) deal() (*freecell.Game, error) {
	g, err := freecell.New(s.openPiles, s.cascadePiles, freecell.WithSeed(s.seed))
	if err != nil {
		logger.LogError("deal failed: %v", err)
		return nil, err
	}
	logger.LogInfo("dealt game %d with %d open and %d cascade piles", s.seed, s.openPiles, s.cascadePiles)
	return g, nil
}

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a game and print the starting position",
	Long: `Deal shuffles a deck and deals it into the cascades, then prints the board.
The same seed and layout always produce the same deal.

Examples:
  freecell deal
  freecell deal --seed 11982
  freecell deal --open 2 --cascade 6`,
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

		out := cmd.OutOrStdout()
		printHeader(out, settings)
		newBoardPrinter(settings.color, g.NumCascade()).print(out, g)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addGameFlags(dealCmd)
}
