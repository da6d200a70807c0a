package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/logger"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "Play and check games of FreeCell solitaire",
	Long: `Freecell is a command-line FreeCell solitaire with a configurable number of
free cells (open piles) and cascades. It deals and plays games on the terminal
and checks recorded games move by move.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.Init(config.GetLogPath()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
