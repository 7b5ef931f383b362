package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/trickster/internal/card"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [byte]...",
	Short: "Decode raw packed bytes into cards",
	Long: `Decode reads packed card bytes written in decimal, hex (0x), octal (0o)
or binary (0b) and prints the card each one encodes. The trump suit is taken
from the byte itself, not from --trump.

Examples:
  trickster decode 239
  trickster decode 0xEF 0b00100000 0o357`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		invalid := 0

		for i, arg := range args {
			if i > 0 {
				fmt.Fprintln(out)
			}

			b, err := parseByte(arg)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", arg, err)
				invalid++
				continue
			}

			c, err := card.FromByte(b)
			if err != nil {
				log.Debug().Err(err).Uint8("byte", b).Msg("decode failed")
				fmt.Fprintf(out, "%s: %v\n", arg, err)
				invalid++
				continue
			}

			log.Debug().Uint8("byte", b).Stringer("card", c).Msg("decoded")
			for _, line := range session.renderer.Detail(c) {
				fmt.Fprintln(out, line)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d bytes could not be decoded", invalid, len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(decodeCmd)
}

// parseByte accepts decimal, 0x hex, 0o octal and 0b binary literals
func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("not a byte value: %q", s)
	}
	return byte(v), nil
}
