package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/trickster/internal/card"
	"github.com/arcanaland/trickster/internal/config"
)

// Renderer formats cards for the terminal
type Renderer struct {
	enabled bool
	red     colorful.Color
	black   colorful.Color
	trump   colorful.Color
	label   *colorize.Color
	value   *colorize.Color
}

// ColorEnabled reports whether colour should be used on the file descriptor
func ColorEnabled(fd int, want bool) bool {
	return want && term.IsTerminal(fd)
}

// New builds a renderer from a theme of hex colours
func New(theme config.Theme, enabled bool) (*Renderer, error) {
	red, err := colorful.Hex(theme.Red)
	if err != nil {
		return nil, fmt.Errorf("invalid theme colour red %q: %w", theme.Red, err)
	}
	black, err := colorful.Hex(theme.Black)
	if err != nil {
		return nil, fmt.Errorf("invalid theme colour black %q: %w", theme.Black, err)
	}
	trump, err := colorful.Hex(theme.Trump)
	if err != nil {
		return nil, fmt.Errorf("invalid theme colour trump %q: %w", theme.Trump, err)
	}

	r := &Renderer{
		enabled: enabled,
		red:     red,
		black:   black,
		trump:   trump,
		label:   colorize.New(colorize.FgCyan),
		value:   colorize.New(colorize.FgHiWhite),
	}
	if enabled {
		r.label.EnableColor()
		r.value.EnableColor()
	} else {
		r.label.DisableColor()
		r.value.DisableColor()
	}
	return r, nil
}

// Short renders a card in notation form with its suit glyph, e.g. "Q♠"
func (r *Renderer) Short(c card.Card) string {
	text := c.Rank().Short() + c.Suit().Symbol()
	if !r.enabled {
		return text
	}

	col := r.black
	switch {
	case c.IsTrump():
		col = r.trump
	case c.Suit().IsRed():
		col = r.red
	}
	return paint(text, col)
}

// Field renders a "label: value" line
func (r *Renderer) Field(label, value string) string {
	return r.label.Sprint(label+": ") + r.value.Sprint(value)
}

// Detail lists the display form, notation and decoded fields of a card
func (r *Renderer) Detail(c card.Card) []string {
	trump := "no"
	if c.IsTrump() {
		trump = "yes"
	}

	return []string{
		r.Field("Card  ", c.String()+"  "+r.Short(c)),
		r.Field("Trump ", fmt.Sprintf("%s (%s)", c.TrumpSuit(), trump)),
		r.Field("Packed", fmt.Sprintf("%d (0x%02X)", c.Byte(), c.Byte())),
		r.Field("Debug ", c.GoString()),
	}
}

// Hand renders cards side by side
func (r *Renderer) Hand(cards []card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, r.Short(c))
	}
	return strings.Join(parts, " ")
}

// paint wraps text in a 24-bit foreground colour escape
func paint(text string, c colorful.Color) string {
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, text)
}
