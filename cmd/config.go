package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the freecell configuration",
	Long:  `Commands for creating, showing and changing the freecell config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetLayoutCmd represents the config set-layout command
var configSetLayoutCmd = &cobra.Command{
	Use:   "set-layout [open_piles] [cascade_piles]",
	Short: "Set the default number of open and cascade piles",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		openPiles, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number of open piles: %s", args[0])
		}
		cascadePiles, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number of cascade piles: %s", args[1])
		}

		if err := config.SetLayout(openPiles, cascadePiles); err != nil {
			return fmt.Errorf("error setting layout: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default layout set to %d open and %d cascade piles\n", openPiles, cascadePiles)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetLayoutCmd)
}
