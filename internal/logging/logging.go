package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at a console writer on w and sets
// the level. An empty level means warn; an unknown one falls back to warn and
// the parse error is returned.
func Setup(w io.Writer, level string, color bool) error {
	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	if strings.TrimSpace(level) == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		return nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
