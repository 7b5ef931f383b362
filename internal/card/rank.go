package card

import (
	"fmt"
	"strings"
)

// Rank represents a card's face value. Two is 2 and Ace is 14, so a numerically
// higher rank always beats a lower one.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from lowest to highest
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// RankFromUint8 converts a raw four-bit value into a Rank
func RankFromUint8(v uint8) (Rank, error) {
	r := Rank(v)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, v)
	}
	return r, nil
}

// Valid reports whether r lies in Two..Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Short returns the rank as used in card notation: 2..10, J, Q, K, A
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if !r.Valid() {
		return "?"
	}
	return fmt.Sprintf("%d", uint8(r))
}

// ParseRank accepts 2..10, T, J, Q, K, A or a full rank name
func ParseRank(str string) (Rank, error) {
	s := strings.ToUpper(strings.TrimSpace(str))
	switch s {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	for r, name := range rankNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, str)
}
