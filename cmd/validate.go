package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/trickster/internal/deck"
	"github.com/arcanaland/trickster/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [byte]...",
	Short: "Validate raw packed bytes destined for a deck",
	Long: `Validate decodes each packed byte and collects the good ones into a deck
for the current trump suit. Undecodable bytes and capacity overflow are
errors; duplicates and cards packed with a different trump are warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := make([]byte, 0, len(args))
		for _, arg := range args {
			b, err := parseByte(arg)
			if err != nil {
				return err
			}
			raw = append(raw, b)
		}

		capacity, _ := cmd.Flags().GetInt("capacity")

		v := validator.NewValidator(session.trump, capacity)
		results, err := v.Validate(raw)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ %d of %d cards accepted (trump %s)\n",
				results.Deck.Len(), len(raw), session.trump)
		} else {
			fmt.Fprintf(out, "❌ %d validation errors:\n", len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if results.Deck.Len() > 0 {
			fmt.Fprintln(out, "\nDeck:", session.renderer.Hand(results.Deck.Cards()))
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntP("capacity", "c", deck.MaxSize, "Deck capacity")
}
