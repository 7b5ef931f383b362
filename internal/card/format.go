package card

import (
	"fmt"
	"strings"
)

// String renders the card as "<Rank> of <Suit>", e.g. "Queen of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}

// GoString exposes the raw byte alongside the decoded fields. It backs %#v.
func (c Card) GoString() string {
	b := byte(c)
	return fmt.Sprintf("Card{packed: %d, binary: 0b%08b, trump: %s, suit: %s, rank: %s}",
		b, b, c.TrumpSuit(), c.Suit(), c.Rank())
}

// Notation returns the short form accepted by Parse, e.g. "Qs" or "10h"
func (c Card) Notation() string {
	return c.Rank().Short() + c.Suit().Initial()
}

// Parse reads short card notation such as "As", "10h", "Td" or "Q♣" and packs
// it under the given trump suit.
func Parse(notation string, trump Suit) (Card, error) {
	s := strings.TrimSpace(notation)
	if s == "" {
		return 0, fmt.Errorf("invalid card notation: %q", notation)
	}

	// The suit is the trailing character, which may be a multi-byte glyph
	runes := []rune(s)
	if len(runes) < 2 {
		return 0, fmt.Errorf("invalid card notation: %q", notation)
	}

	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return 0, fmt.Errorf("invalid card notation %q: %w", notation, err)
	}

	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return 0, fmt.Errorf("invalid card notation %q: %w", notation, err)
	}

	return New(suit, trump, rank), nil
}
