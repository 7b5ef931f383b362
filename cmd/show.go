package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card]...",
	Short: "Display the packed form of one or more cards",
	Long: `Show packs each card under the current trump suit and prints its display
form, the raw byte and the decoded fields.

Examples:
  trickster show As
  trickster show --trump hearts 10h Qd T♣`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := parseCards(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, c := range cards {
			if i > 0 {
				fmt.Fprintln(out)
			}
			for _, line := range session.renderer.Detail(c) {
				fmt.Fprintln(out, line)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
