package card

import (
	"fmt"
	"strings"
)

// Suit represents one of the four French suits, stored in two bits
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in declaration order. The order has no game meaning.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}

var suitSymbols = [...]string{"♥", "♦", "♣", "♠"}

// SuitFromUint8 converts a raw two-bit value into a Suit
func SuitFromUint8(v uint8) (Suit, error) {
	if v > uint8(Spades) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, v)
	}
	return Suit(v), nil
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph, e.g. ♠
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Initial returns the lowercase one-letter abbreviation used in card notation
func (s Suit) Initial() string {
	if !s.Valid() {
		return "?"
	}
	return strings.ToLower(suitNames[s][:1])
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit name, its initial or its symbol, case-insensitively
func ParseSuit(str string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "h", "heart", "hearts", "♥", "♡":
		return Hearts, nil
	case "d", "diamond", "diamonds", "♦", "♢":
		return Diamonds, nil
	case "c", "club", "clubs", "♣", "♧":
		return Clubs, nil
	case "s", "spade", "spades", "♠", "♤":
		return Spades, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, str)
}
