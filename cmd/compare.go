package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/trickster/internal/card"
)

var compareCmd = &cobra.Command{
	Use:   "compare [card] [card]",
	Short: "Compare two cards by trick-taking rules",
	Long: `Compare orders two cards under the current trump suit. Cards of the same suit
are ranked by face value and a trump beats any other suit. Two cards of
different non-trump suits are incomparable.

With --strict the total order is used instead, which treats an incomparable
pair as an error.

Examples:
  trickster compare --trump spades As Kh
  trickster compare --strict Ac Kd`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := parseCards(args)
		if err != nil {
			return err
		}
		a, b := cards[0], cards[1]

		strict, _ := cmd.Flags().GetBool("strict")

		var result int
		ok := true
		if strict {
			if result, err = strictCompare(a, b); err != nil {
				return err
			}
		} else {
			result, ok = a.PartialCompare(b)
		}

		log.Debug().
			Uint8("a", a.Byte()).
			Uint8("b", b.Byte()).
			Bool("strict", strict).
			Bool("comparable", ok).
			Int("result", result).
			Msg("compared cards")

		r := session.renderer
		out := cmd.OutOrStdout()
		switch {
		case !ok:
			fmt.Fprintf(out, "%s and %s are incomparable\n", r.Short(a), r.Short(b))
		case result > 0:
			fmt.Fprintf(out, "%s is greater than %s\n", r.Short(a), r.Short(b))
		case result < 0:
			fmt.Fprintf(out, "%s is less than %s\n", r.Short(a), r.Short(b))
		default:
			fmt.Fprintf(out, "%s is equal to %s\n", r.Short(a), r.Short(b))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Bool("strict", false, "Use the total order and fail on incomparable cards")
}

// strictCompare turns the total order's panic into an error
func strictCompare(a, b card.Card) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return a.Compare(b), nil
}
