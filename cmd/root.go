package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/trickster/internal/card"
	"github.com/arcanaland/trickster/internal/config"
	"github.com/arcanaland/trickster/internal/logging"
	"github.com/arcanaland/trickster/internal/render"
)

// session holds what every subcommand needs once flags and config are resolved
var session struct {
	config   *config.Config
	trump    card.Suit
	renderer *render.Renderer
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trickster",
	Short: "Inspect and compare packed trick-taking cards",
	Long: `Trickster packs playing cards for trick-taking games into a single byte
and orders them the way a trick is won: by rank within a suit, with the trump
suit beating every other suit.

Cards are written in short notation such as As, 10h, Qd or T♣. The trump suit
comes from --trump or from default_trump in the config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringP("trump", "t", "", "Trump suit (hearts, diamonds, clubs, spades); defaults to the config value")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	RootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error); defaults to the config value")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads config, then applies flags on top of it
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	useColor := render.ColorEnabled(int(os.Stdout.Fd()), cfg.Color && !noColor)

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Setup(cmd.ErrOrStderr(), level, useColor); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	trump, err := cfg.TrumpSuit()
	if err != nil {
		return err
	}
	if flag, _ := cmd.Flags().GetString("trump"); flag != "" {
		if trump, err = card.ParseSuit(flag); err != nil {
			return err
		}
	}

	renderer, err := render.New(cfg.Theme, useColor)
	if err != nil {
		return err
	}

	session.config = cfg
	session.trump = trump
	session.renderer = renderer

	log.Debug().
		Str("config", config.GetConfigFilePath()).
		Stringer("trump", trump).
		Bool("color", useColor).
		Msg("session ready")
	return nil
}

// parseCards reads card notation under the session trump
func parseCards(args []string) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(args))
	for _, arg := range args {
		c, err := card.Parse(arg, session.trump)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
