package poker

import "github.com/shopspring/decimal"

// RoundRecord summarises a finished round.
type RoundRecord struct {
	RoundID        string          `json:"round_id"`
	Number         int             `json:"number"`
	Outcome        Outcome         `json:"outcome"`
	UserCards      []string        `json:"user_cards"`
	DealerCards    []string        `json:"dealer_cards"`
	UserCategory   string          `json:"user_category"`
	DealerCategory string          `json:"dealer_category,omitempty"`
	Ante           decimal.Decimal `json:"ante"`
	PlayBet        decimal.Decimal `json:"play_bet"`
	PairPlusStake  decimal.Decimal `json:"pair_plus_stake"`
	PairPlusPayout decimal.Decimal `json:"pair_plus_payout"`
	PotPayout      decimal.Decimal `json:"pot_payout"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
}

// History receives a record for every round that finishes, folded or not.
type History interface {
	Record(RoundRecord) error
}

func cardCodes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
