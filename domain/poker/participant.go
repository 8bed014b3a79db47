package poker

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Role tells the dealer apart from the human player.
type Role string

const (
	RoleDealer Role = "dealer"
	RoleHuman  Role = "human"
)

// Participant is a seat at the table. Both seats hold a hand; only the
// human seat carries a bankroll.
type Participant struct {
	Role     Role
	hand     Hand
	bankroll *Bankroll
}

// NewDealer seats a dealer with an empty hand.
func NewDealer() *Participant {
	return &Participant{Role: RoleDealer}
}

// NewHuman seats a player with the given starting balance.
func NewHuman(balance decimal.Decimal) *Participant {
	return &Participant{Role: RoleHuman, bankroll: &Bankroll{balance: balance}}
}

// Hand returns the participant's current hand.
func (p *Participant) Hand() Hand {
	return p.hand
}

// Bankroll returns the participant's money, if it has any.
func (p *Participant) Bankroll() (*Bankroll, bool) {
	return p.bankroll, p.bankroll != nil
}

// Bankroll is a money balance that never goes negative.
type Bankroll struct {
	balance decimal.Decimal
}

// Balance returns the current balance.
func (b *Bankroll) Balance() decimal.Decimal {
	return b.balance
}

// Wager takes amount out of the balance. Nothing changes if the balance
// cannot cover it.
func (b *Bankroll) Wager(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: wager %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(b.balance) {
		return fmt.Errorf("%w: wager %s, balance %s", ErrInsufficientFunds, amount, b.balance)
	}
	b.balance = b.balance.Sub(amount)
	return nil
}

// Credit adds a payout to the balance.
func (b *Bankroll) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: credit %s", ErrInvalidAmount, amount)
	}
	b.balance = b.balance.Add(amount)
	return nil
}
