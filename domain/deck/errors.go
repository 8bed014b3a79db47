package deck

import "errors"

var (
	ErrInsufficientCards = errors.New("not enough cards left in the deck")
	ErrDuplicateCard     = errors.New("card is already in the deck")
	ErrMissingCard       = errors.New("card is not in the deck")
	ErrInvalidCard       = errors.New("invalid card")
)
