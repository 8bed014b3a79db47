package poker

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBelowMinimum      = errors.New("bet below table minimum")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidHandSize   = errors.New("hand must hold exactly 3 cards")
	ErrInvalidCard       = errors.New("invalid card")
	ErrInvalidPhase      = errors.New("action not allowed in this phase")
	ErrGameOver          = errors.New("game over")
)
