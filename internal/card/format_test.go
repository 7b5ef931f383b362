package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		notation string
		want     Card
	}{
		{"As", New(Spades, Clubs, Ace)},
		{"10h", New(Hearts, Clubs, Ten)},
		{"Td", New(Diamonds, Clubs, Ten)},
		{"qC", New(Clubs, Clubs, Queen)},
		{"2♠", New(Spades, Clubs, Two)},
		{" K♥ ", New(Hearts, Clubs, King)},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := Parse(tt.notation, Clubs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, notation := range []string{"", "s", "1s", "11h", "Ax", "Zd"} {
		_, err := Parse(notation, Hearts)
		assert.Error(t, err, "notation %q", notation)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, trump := range Suits {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				c := New(suit, trump, rank)
				got, err := Parse(c.Notation(), trump)
				require.NoError(t, err, c.Notation())
				assert.Equal(t, c, got)
			}
		}
	}
}

func TestParseSuitNames(t *testing.T) {
	for _, s := range Suits {
		got, err := ParseSuit(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)

		got, err = ParseSuit(s.Symbol())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSuit("wands")
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestParseRankNames(t *testing.T) {
	for _, r := range Ranks {
		got, err := ParseRank(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestSuitAndRankStrings(t *testing.T) {
	assert.Equal(t, "Diamonds", Diamonds.String())
	assert.Equal(t, "♣", Clubs.Symbol())
	assert.Equal(t, "Suit(7)", Suit(7).String())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Spades.IsRed())

	assert.Equal(t, "Jack", Jack.String())
	assert.Equal(t, "10", Ten.Short())
	assert.Equal(t, "A", Ace.Short())
	assert.Equal(t, "Rank(1)", Rank(1).String())
}
