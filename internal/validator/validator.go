package validator

import (
	"errors"
	"fmt"

	"github.com/arcanaland/trickster/internal/card"
	"github.com/arcanaland/trickster/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Deck     *deck.Deck
}

// Valid reports whether validation produced no errors
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks raw packed bytes before they are collected into a deck
type Validator struct {
	Trump    card.Suit
	Capacity int
	Results  ValidationResults
}

func NewValidator(trump card.Suit, capacity int) *Validator {
	return &Validator{
		Trump:    trump,
		Capacity: capacity,
		Results:  ValidationResults{},
	}
}

// Validate decodes every byte and adds the good ones to a fresh deck. Bad
// input is reported in the results; the returned error is reserved for a
// misconfigured validator.
func (v *Validator) Validate(raw []byte) (ValidationResults, error) {
	d, err := deck.New(v.Capacity, v.Trump)
	if err != nil {
		return v.Results, fmt.Errorf("error creating deck: %w", err)
	}
	v.Results = ValidationResults{Deck: d}

	for i, b := range raw {
		v.validateByte(i, b)
	}

	return v.Results, nil
}

func (v *Validator) validateByte(i int, b byte) {
	c, err := card.FromByte(b)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("byte %d (0x%02X): %v", i, b, err))
		return
	}

	if v.Results.Deck.Contains(c) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("byte %d (0x%02X): duplicate card %s", i, b, c))
		return
	}

	err = v.Results.Deck.Add(c)
	switch {
	case err == nil:
	case errors.Is(err, deck.ErrTrumpMismatch):
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("byte %d (0x%02X): %s was packed with trump %s, expected %s; skipped",
				i, b, c, c.TrumpSuit(), v.Trump))
	default:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("byte %d (0x%02X): %v", i, b, err))
	}
}
