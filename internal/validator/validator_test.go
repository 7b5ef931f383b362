package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/trickster/internal/card"
	"github.com/arcanaland/trickster/internal/deck"
)

func TestValidate(t *testing.T) {
	aceOfSpades := card.New(card.Spades, card.Hearts, card.Ace)
	twoOfHearts := card.New(card.Hearts, card.Hearts, card.Two)
	wrongTrump := card.New(card.Clubs, card.Diamonds, card.King)

	raw := []byte{
		aceOfSpades.Byte(),
		0x13, // rank field 1
		twoOfHearts.Byte(),
		aceOfSpades.Byte(),
		wrongTrump.Byte(),
		0xF0, // rank field 15
	}

	v := NewValidator(card.Hearts, 4)
	results, err := v.Validate(raw)
	require.NoError(t, err)

	assert.False(t, results.Valid())
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], "byte 1 (0x13)")
	assert.Contains(t, results.Errors[1], "byte 5 (0xF0)")

	require.Len(t, results.Warnings, 2)
	assert.Contains(t, results.Warnings[0], "duplicate card Ace of Spades")
	assert.Contains(t, results.Warnings[1], "expected Hearts")

	assert.Equal(t, []card.Card{aceOfSpades, twoOfHearts}, results.Deck.Cards())
}

func TestValidateCapacity(t *testing.T) {
	raw := []byte{
		card.New(card.Clubs, card.Clubs, card.Two).Byte(),
		card.New(card.Clubs, card.Clubs, card.Three).Byte(),
	}

	results, err := NewValidator(card.Clubs, 1).Validate(raw)
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], deck.ErrDeckFull.Error())
	assert.Equal(t, 1, results.Deck.Len())
}

func TestValidateMisconfigured(t *testing.T) {
	_, err := NewValidator(card.Spades, 0).Validate(nil)
	assert.ErrorIs(t, err, deck.ErrInvalidSize)
}

func TestValidateClean(t *testing.T) {
	var raw []byte
	for _, r := range card.Ranks {
		raw = append(raw, card.New(card.Diamonds, card.Spades, r).Byte())
	}

	results, err := NewValidator(card.Spades, deck.MaxSize).Validate(raw)
	require.NoError(t, err)
	assert.True(t, results.Valid())
	assert.Empty(t, results.Warnings)
	assert.Equal(t, raw, results.Deck.Bytes())
}
