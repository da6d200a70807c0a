package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/logger"
	"github.com/arcanaland/freecell/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Replay a recorded game and check every move",
	Long: `Validate replays a recorded game file (TOML, or YAML for .yaml/.yml files)
and checks that every move is legal and that the game stays consistent.

A replay file names the layout, the deal and the moves:

  open_piles = 4
  cascade_piles = 8
  seed = 11982
  moves = ["c3 o0", "c3:4 c1", "auto c5"]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replayPath := args[0]

		// Check if path exists
		if _, err := os.Stat(replayPath); os.IsNotExist(err) {
			return fmt.Errorf("replay file not found: %s", replayPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(replayPath)
		results, err := v.Validate()
		if err != nil {
			logger.LogError("validate %s: %v", replayPath, err)
			return fmt.Errorf("validation error: %v", err)
		}
		logger.LogInfo("validated %s: %d moves played, %d errors, won=%t",
			replayPath, results.MovesPlayed, len(results.Errors), results.Won)

		out := cmd.OutOrStdout()

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Replay '%s' is valid: %d moves played.\n", replayPath, results.MovesPlayed)
		} else {
			fmt.Fprintf(out, "❌ Replay '%s' has %d invalid moves:\n", replayPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if results.Won {
			fmt.Fprintln(out, "🏆 The game is won.")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
