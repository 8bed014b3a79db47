package poker

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPairPlusPayout(t *testing.T) {
	stake := decimal.NewFromInt(10)
	tests := []struct {
		category Category
		want     int64
	}{
		{StraightFlush, 400},
		{ThreeOfAKind, 300},
		{Straight, 60},
		{Flush, 40},
		{Pair, 10},
		{HighCard, 0},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := PairPlusPayout(tt.category, stake)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Fatalf("expected %d, got %s", tt.want, got)
			}
		})
	}
}

func TestTableLimitsAreFixed(t *testing.T) {
	if !Ante().Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected ante 25, got %s", Ante())
	}
	if !StartingBalance().Equal(decimal.NewFromInt(250)) || !MinPlayBet().Equal(decimal.NewFromInt(10)) || !MinPairPlusBet().IsZero() {
		t.Fatalf("unexpected limits %s %s %s", StartingBalance(), MinPlayBet(), MinPairPlusBet())
	}

	tb := NewTable()
	if err := tb.StartRound(); err != nil {
		t.Fatal(err)
	}
	if !tb.Pot().Equal(decimal.NewFromInt(25)) || !tb.Balance().Equal(decimal.NewFromInt(225)) {
		t.Fatalf("expected the flat ante, got pot %s balance %s", tb.Pot(), tb.Balance())
	}
}

func TestCheckWager(t *testing.T) {
	balance := decimal.NewFromInt(100)
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"within balance", decimal.NewFromInt(50), nil},
		{"whole balance", decimal.NewFromInt(100), nil},
		{"at minimum", MinPlayBet(), nil},
		{"over balance", decimal.NewFromInt(101), ErrInsufficientFunds},
		{"below minimum", decimal.NewFromInt(9), ErrBelowMinimum},
		{"negative", decimal.NewFromInt(-5), ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWager(tt.amount, MinPlayBet(), balance)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckPhase(t *testing.T) {
	if err := checkPhase(PhaseShowdown, "compare", PhaseShowdown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := checkPhase(PhaseAwaitingAnte, "compare", PhaseShowdown); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase, got %v", err)
	}
	if err := checkPhase(PhaseGameOver, "start", PhaseAwaitingAnte); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestBankroll(t *testing.T) {
	p := NewHuman(decimal.NewFromInt(30))
	bank, ok := p.Bankroll()
	if !ok {
		t.Fatal("human should have a bankroll")
	}
	if err := bank.Wager(decimal.NewFromInt(31)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !bank.Balance().Equal(decimal.NewFromInt(30)) {
		t.Fatalf("failed wager changed the balance to %s", bank.Balance())
	}
	if err := bank.Wager(decimal.NewFromInt(30)); err != nil {
		t.Fatal(err)
	}
	if !bank.Balance().IsZero() {
		t.Fatalf("expected 0, got %s", bank.Balance())
	}
	if err := bank.Credit(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := bank.Credit(decimal.NewFromInt(5)); err != nil {
		t.Fatal(err)
	}
	if !bank.Balance().Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected 5, got %s", bank.Balance())
	}
}

func TestDealerHasNoBankroll(t *testing.T) {
	if _, ok := NewDealer().Bankroll(); ok {
		t.Fatal("dealer should not have a bankroll")
	}
}
