package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/trickster/internal/card"
)

// MaxSize is the size of a full French deck
const MaxSize = 52

var (
	ErrDeckFull      = errors.New("deck is full")
	ErrTrumpMismatch = errors.New("card trump does not match deck trump")
	ErrInvalidSize   = errors.New("invalid deck size")
)

// Deck is a fixed-capacity holder of packed cards that share one trump suit.
// It does not generate, shuffle or deal; filling it is up to the caller.
type Deck struct {
	trump card.Suit
	cards []card.Card
}

// New creates an empty deck that holds at most size cards
func New(size int, trump card.Suit) (*Deck, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidSize, size, MaxSize)
	}
	if !trump.Valid() {
		return nil, fmt.Errorf("%w: %d", card.ErrInvalidSuit, uint8(trump))
	}

	return &Deck{
		trump: trump,
		cards: make([]card.Card, 0, size),
	}, nil
}

// Add appends a card. The card must be validly encoded and carry the deck's
// trump designation.
func (d *Deck) Add(c card.Card) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %#v", card.ErrInvalidEncoding, c)
	}
	if c.TrumpSuit() != d.trump {
		return fmt.Errorf("%w: %s has trump %s, deck has %s", ErrTrumpMismatch, c, c.TrumpSuit(), d.trump)
	}
	if len(d.cards) == cap(d.cards) {
		return fmt.Errorf("%w: capacity %d", ErrDeckFull, cap(d.cards))
	}

	d.cards = append(d.cards, c)
	return nil
}

// Contains reports whether the deck already holds c
func (d *Deck) Contains(c card.Card) bool {
	for _, held := range d.cards {
		if held == c {
			return true
		}
	}
	return false
}

func (d *Deck) Trump() card.Suit {
	return d.trump
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cap() int {
	return cap(d.cards)
}

// Full reports whether no more cards can be added
func (d *Deck) Full() bool {
	return len(d.cards) == cap(d.cards)
}

// Cards returns a copy of the held cards in insertion order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Bytes returns the packed representation of every held card
func (d *Deck) Bytes() []byte {
	out := make([]byte, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, c.Byte())
	}
	return out
}
