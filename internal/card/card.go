package card

import (
	"fmt"
)

// Card is a playing card packed into a single byte.
//
// Layout, bit 0 being the least significant:
//
//	 rank   trump suit
//	|=====| |=| |=|
//	7 6 5 4 3 2 1 0
//
// The trump field records the trump suit that was designated when the card
// was built. Two cards only compare meaningfully when they carry the same
// trump designation.
type Card byte

const (
	suitMask  byte = 0b0000_0011
	trumpMask byte = 0b0000_1100
	rankMask  byte = 0b1111_0000

	trumpShift = 2
	rankShift  = 4
)

// New packs suit, trump suit and rank into a Card
func New(suit, trump Suit, rank Rank) Card {
	return Card(byte(rank)<<rankShift |
		(byte(trump)<<trumpShift)&trumpMask |
		byte(suit)&suitMask)
}

// FromByte decodes an untrusted packed byte. The suit and trump fields are two
// bits wide and always valid; the rank field must hold Two..Ace.
func FromByte(b byte) (Card, error) {
	if _, err := RankFromUint8((b & rankMask) >> rankShift); err != nil {
		return 0, fmt.Errorf("%w 0x%02X: %w", ErrInvalidEncoding, b, err)
	}
	return Card(b), nil
}

// MustFromByte is like FromByte but panics on an invalid encoding
func MustFromByte(b byte) Card {
	c, err := FromByte(b)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether the card holds a rank in Two..Ace
func (c Card) Valid() bool {
	return c.Rank().Valid()
}

// Byte returns the packed representation
func (c Card) Byte() byte {
	return byte(c)
}

func (c Card) Suit() Suit {
	return Suit(byte(c) & suitMask)
}

func (c Card) TrumpSuit() Suit {
	return Suit((byte(c) & trumpMask) >> trumpShift)
}

func (c Card) Rank() Rank {
	return Rank((byte(c) & rankMask) >> rankShift)
}

// IsTrump reports whether the card belongs to the suit it was told is trump
func (c Card) IsTrump() bool {
	return c.Suit() == c.TrumpSuit()
}

// SameSuit compares suit fields only
func (c Card) SameSuit(other Card) bool {
	return byte(c)&suitMask == byte(other)&suitMask
}

// IsBigger compares rank fields only. It says nothing about which card wins a
// trick unless the caller already knows the pair is comparable.
func (c Card) IsBigger(other Card) bool {
	return byte(c)>>rankShift > byte(other)>>rankShift
}

// CmpRank is the three-way form of IsBigger: -1, 0 or +1
func (c Card) CmpRank(other Card) int {
	a, b := byte(c)&rankMask, byte(other)&rankMask
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// PartialCompare orders two cards by trick-taking rules. A card of the same
// suit is ranked by face value and a trump beats a non-trump of another suit.
// Two different suits where neither or both claim trump have no relation, in
// which case ok is false.
func (c Card) PartialCompare(other Card) (result int, ok bool) {
	switch {
	case c.SameSuit(other):
		return c.CmpRank(other), true
	case c.IsTrump() && !other.IsTrump():
		return 1, true
	case other.IsTrump() && !c.IsTrump():
		return -1, true
	}
	return 0, false
}

// Compare is the total form of PartialCompare. The caller must already know
// the pair is comparable; comparing two different suits where neither or both
// are trump panics.
func (c Card) Compare(other Card) int {
	result, ok := c.PartialCompare(other)
	if !ok {
		panic(fmt.Errorf("%w: %#v and %#v", ErrIncomparable, c, other))
	}
	return result
}

// Less reports c < other under the partial order. It is false for
// incomparable pairs.
func (c Card) Less(other Card) bool {
	result, ok := c.PartialCompare(other)
	return ok && result < 0
}

// Greater reports c > other under the partial order. It is false for
// incomparable pairs.
func (c Card) Greater(other Card) bool {
	result, ok := c.PartialCompare(other)
	return ok && result > 0
}

// Comparable reports whether PartialCompare defines an order for the pair
func (c Card) Comparable(other Card) bool {
	_, ok := c.PartialCompare(other)
	return ok
}

// Compare is Card.Compare in a form suited to slices.SortFunc
func Compare(a, b Card) int {
	return a.Compare(b)
}
