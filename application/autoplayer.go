// Package application drives a poker table without a human at the
// controls.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/domain/strategy"
)

// Policy is what the autoplayer stakes each round.
type Policy struct {
	PairPlus decimal.Decimal
	PlayBet  decimal.Decimal
}

// Validate rejects stakes the table would never accept.
func (p Policy) Validate() error {
	if p.PairPlus.IsNegative() {
		return fmt.Errorf("%w: pair plus %s", poker.ErrInvalidAmount, p.PairPlus)
	}
	if p.PlayBet.LessThan(poker.MinPlayBet()) {
		return fmt.Errorf("%w: play bet %s < %s", poker.ErrBelowMinimum, p.PlayBet, poker.MinPlayBet())
	}
	return nil
}

// Report sums up a run.
type Report struct {
	Rounds       int
	Wins         int
	Losses       int
	Pushes       int
	Folds        int
	FinalBalance decimal.Decimal
	GameOver     bool
}

// Autoplayer plays rounds on a table following the basic strategy.
type Autoplayer struct {
	table  *poker.Table
	policy Policy
	logger *slog.Logger
}

// NewAutoplayer returns an autoplayer for table.
func NewAutoplayer(table *poker.Table, policy Policy, logger *slog.Logger) *Autoplayer {
	return &Autoplayer{
		table:  table,
		policy: policy,
		logger: logger,
	}
}

// PlayRound plays a single round from ante to settlement. Stakes are
// reduced to what the balance can cover; if the play bet minimum cannot be
// met the hand is folded.
func (a *Autoplayer) PlayRound() (poker.Outcome, error) {
	t := a.table
	if err := t.StartRound(); err != nil {
		return "", err
	}
	if err := t.PlacePairPlusBet(decimal.Min(a.policy.PairPlus, t.Balance())); err != nil {
		return "", fmt.Errorf("pair plus bet: %w", err)
	}

	hand := t.UserHand()
	cards := [poker.HandSize]poker.Card(hand.Cards())
	bet := decimal.Min(a.policy.PlayBet, t.Balance())
	if !strategy.ShouldPlay(cards) || bet.LessThan(poker.MinPlayBet()) {
		if err := t.Fold(); err != nil {
			return "", fmt.Errorf("fold: %w", err)
		}
		a.logger.Debug("folded", "round", t.RoundNumber(), "hand", hand.String())
		return poker.OutcomeFold, nil
	}

	if err := t.PlaceBet(bet); err != nil {
		return "", fmt.Errorf("play bet: %w", err)
	}
	winner, err := t.CompareHands()
	if err != nil {
		return "", fmt.Errorf("compare hands: %w", err)
	}
	if _, err := t.SettleRound(); err != nil {
		return "", fmt.Errorf("settle round: %w", err)
	}

	outcome := poker.OutcomeLose
	switch winner {
	case poker.UserWon:
		outcome = poker.OutcomeWin
	case poker.Push:
		outcome = poker.OutcomePush
	}
	a.logger.Debug("round played", "round", t.RoundNumber(), "outcome", string(outcome), "balance", t.Balance().String())
	return outcome, nil
}

// Run plays up to rounds rounds. It stops early when the player can no
// longer pay the ante or ctx is done; running out of money is reported in
// the Report, not as an error.
func (a *Autoplayer) Run(ctx context.Context, rounds int) (Report, error) {
	var r Report
	for r.Rounds < rounds {
		if err := ctx.Err(); err != nil {
			r.FinalBalance = a.table.Balance()
			return r, err
		}
		outcome, err := a.PlayRound()
		if errors.Is(err, poker.ErrGameOver) {
			r.GameOver = true
			break
		}
		if err != nil {
			r.FinalBalance = a.table.Balance()
			return r, fmt.Errorf("round %d: %w", r.Rounds+1, err)
		}
		r.Rounds++
		switch outcome {
		case poker.OutcomeWin:
			r.Wins++
		case poker.OutcomeLose:
			r.Losses++
		case poker.OutcomePush:
			r.Pushes++
		case poker.OutcomeFold:
			r.Folds++
		}
	}
	r.FinalBalance = a.table.Balance()
	a.logger.Info("run finished",
		"rounds", r.Rounds,
		"wins", r.Wins,
		"losses", r.Losses,
		"pushes", r.Pushes,
		"folds", r.Folds,
		"balance", r.FinalBalance.String(),
		"game_over", r.GameOver,
	)
	return r, nil
}
