package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-card-poker/application"
	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

// lastRounds is how many recorded rounds the summary lists.
const lastRounds = 5

func printReport(r application.Report, chain *ledger.Blockchain) error {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	status := pterm.LightGreen("Still playing")
	if r.GameOver {
		status = pterm.LightRed("Game over")
	}
	summary := pbox.WithTitle(pterm.LightYellow("|SUMMARY|")).WithTitleTopCenter().Sprintf(
		"%s\nRounds: %d\nWins: %d  Losses: %d  Pushes: %d  Folds: %d\nBankroll: %s (started at %s)\n",
		status, r.Rounds, r.Wins, r.Losses, r.Pushes, r.Folds,
		r.FinalBalance.StringFixed(2), poker.StartingBalance().StringFixed(2),
	)

	if err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: summary}},
	}).Render(); err != nil {
		return err
	}
	return pterm.DefaultTable.WithHasHeader().WithData(roundsTable(chain.Records(), lastRounds)).Render()
}

// roundsTable lists the last n records, oldest first.
func roundsTable(records []poker.RoundRecord, n int) pterm.TableData {
	data := pterm.TableData{{"#", "Outcome", "Player", "Dealer", "Pair plus", "Pot", "Balance"}}
	for _, rec := range records[max(0, len(records)-n):] {
		data = append(data, []string{
			strconv.Itoa(rec.Number),
			outcomeLabel(rec.Outcome),
			handLabel(rec.UserCards, rec.UserCategory),
			handLabel(rec.DealerCards, rec.DealerCategory),
			rec.PairPlusPayout.String(),
			rec.PotPayout.String(),
			rec.BalanceAfter.StringFixed(2),
		})
	}
	return data
}

func outcomeLabel(o poker.Outcome) string {
	switch o {
	case poker.OutcomeWin:
		return pterm.LightGreen(string(o))
	case poker.OutcomeLose:
		return pterm.LightRed(string(o))
	case poker.OutcomeFold:
		return pterm.Gray(string(o))
	}
	return string(o)
}

func handLabel(codes []string, category string) string {
	hand := ""
	for i, c := range codes {
		if i > 0 {
			hand += " "
		}
		hand += c
	}
	if category == "" {
		return hand
	}
	return hand + " (" + category + ")"
}
