package poker

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Table limits. The ante is flat and is not configurable.
var (
	defaultBalance = decimal.NewFromInt(250)
	ante           = decimal.NewFromInt(25)
	minPairPlusBet = decimal.Zero
	minPlayBet     = decimal.NewFromInt(10)
)

// StartingBalance returns the balance a new player sits down with.
func StartingBalance() decimal.Decimal { return defaultBalance }

// Ante returns the flat ante taken at the start of every round.
func Ante() decimal.Decimal { return ante }

// MinPairPlusBet returns the smallest pair plus bet; zero means no side bet.
func MinPairPlusBet() decimal.Decimal { return minPairPlusBet }

// MinPlayBet returns the smallest accepted play bet.
func MinPlayBet() decimal.Decimal { return minPlayBet }

// pairPlusOdds maps the player's hand to the multiple of the pair-plus
// stake paid out. Categories not listed pay nothing.
var pairPlusOdds = map[Category]int64{
	StraightFlush: 40,
	ThreeOfAKind:  30,
	Straight:      6,
	Flush:         4,
	Pair:          1,
}

// PairPlusPayout returns what a pair-plus stake pays for a hand category.
func PairPlusPayout(c Category, stake decimal.Decimal) decimal.Decimal {
	return stake.Mul(decimal.NewFromInt(pairPlusOdds[c]))
}

// checkWager validates a bet against the table minimum and the balance.
// It runs before any state is touched.
func checkWager(amount, minimum, balance decimal.Decimal) error {
	switch {
	case amount.IsNegative():
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	case amount.LessThan(minimum):
		return fmt.Errorf("%w: %s < %s", ErrBelowMinimum, amount, minimum)
	case amount.GreaterThan(balance):
		return fmt.Errorf("%w: bet %s, balance %s", ErrInsufficientFunds, amount, balance)
	}
	return nil
}

// checkPhase verifies that an action is allowed in the current phase.
func checkPhase(current Phase, action string, allowed ...Phase) error {
	if current == PhaseGameOver {
		return fmt.Errorf("%s: %w", action, ErrGameOver)
	}
	if !slices.Contains(allowed, current) {
		return fmt.Errorf("%w: cannot %s while %s", ErrInvalidPhase, action, current)
	}
	return nil
}
