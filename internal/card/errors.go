package card

import "errors"

var (
	ErrInvalidSuit     = errors.New("invalid suit")
	ErrInvalidRank     = errors.New("invalid rank")
	ErrInvalidEncoding = errors.New("invalid card encoding")
	ErrIncomparable    = errors.New("cards are not comparable")
)
