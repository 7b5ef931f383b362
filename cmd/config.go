package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/trickster/internal/card"
	"github.com/arcanaland/trickster/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the trickster configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config file location and values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := session.renderer
		cfg := session.config
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, r.Field("Config       ", config.GetConfigFilePath()))
		fmt.Fprintln(out, r.Field("Default trump", cfg.DefaultTrump))
		fmt.Fprintln(out, r.Field("Color        ", fmt.Sprintf("%t", cfg.Color)))
		fmt.Fprintln(out, r.Field("Log level    ", cfg.LogLevel))
		fmt.Fprintln(out, r.Field("Theme        ",
			fmt.Sprintf("red %s, black %s, trump %s", cfg.Theme.Red, cfg.Theme.Black, cfg.Theme.Trump)))
	},
}

// configSetTrumpCmd represents the config set-trump command
var configSetTrumpCmd = &cobra.Command{
	Use:   "set-trump [suit]",
	Short: "Set the default trump suit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := card.ParseSuit(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultTrump(suit); err != nil {
			return fmt.Errorf("error setting default trump: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default trump set to: %s\n", suit)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTrumpCmd)
}
