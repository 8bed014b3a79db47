package poker

// Phase is the step a round is in.
//
// A round moves AwaitingAnte -> AwaitingPairPlusBet -> AwaitingPlayBet ->
// Showdown -> RoundComplete. Folding jumps from AwaitingPlayBet straight to
// RoundComplete. GameOver is terminal and is reached when the ante cannot
// be paid.
type Phase string

const (
	PhaseAwaitingAnte        Phase = "awaiting ante"
	PhaseAwaitingPairPlusBet Phase = "awaiting pair plus bet"
	PhaseAwaitingPlayBet     Phase = "awaiting play bet"
	PhaseShowdown            Phase = "showdown"
	PhaseRoundComplete       Phase = "round complete"
	PhaseGameOver            Phase = "game over"
)

// Winner of the main bet.
type Winner string

const (
	Undetermined Winner = ""
	UserWon      Winner = "user"
	DealerWon    Winner = "dealer"
	// Push is an exact tie: same category and same high-card rank.
	Push Winner = "push"
)

// Outcome of a finished round from the player's point of view.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
	OutcomeFold Outcome = "fold"
)

func outcomeOf(w Winner) Outcome {
	switch w {
	case UserWon:
		return OutcomeWin
	case Push:
		return OutcomePush
	}
	return OutcomeLose
}
