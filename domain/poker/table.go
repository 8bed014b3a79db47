package poker

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/luca-patrignani/three-card-poker/domain/deck"
)

// Table runs three card poker rounds between one player and the dealer.
//
// A Table is not safe for concurrent use. Callers drive it one call at a
// time: StartRound, PlacePairPlusBet, then either Fold or PlaceBet followed
// by CompareHands, SettlePairPlus and SettleRound.
type Table struct {
	deck   PokerDeck
	user   *Participant
	dealer *Participant

	pot           decimal.Decimal
	pairPlusStake decimal.Decimal
	winner        Winner
	phase         Phase
	roundOver     bool
	gameOver      bool

	roundID     string
	roundNumber int
	// what this round has staked and paid, kept for the round record
	playBet        decimal.Decimal
	pairPlusPlaced decimal.Decimal
	pairPlusPaid   decimal.Decimal
	pairPlusDone   bool

	startingBalance decimal.Decimal
	deckOpts        []deck.Option
	logger          *slog.Logger
	history         History
}

// Option configures a Table.
type Option func(*Table)

// WithBalance sets the player's starting balance.
func WithBalance(balance decimal.Decimal) Option {
	return func(t *Table) {
		t.startingBalance = balance
	}
}

// WithRandomStream sets the randomness used to deal cards.
func WithRandomStream(stream cipher.Stream) Option {
	return func(t *Table) {
		t.deckOpts = append(t.deckOpts, deck.WithRandomStream(stream))
	}
}

// WithLogger sets the logger for table events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithHistory records every finished round.
func WithHistory(h History) Option {
	return func(t *Table) {
		t.history = h
	}
}

// NewTable seats a new player with a fresh deck.
func NewTable(opts ...Option) *Table {
	t := &Table{
		startingBalance: defaultBalance,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)))
	}
	t.newGame()
	return t
}

// Reset starts a new game: a fresh deck, a fresh player with the starting
// balance and no round history on the table.
func (t *Table) Reset() {
	t.newGame()
	t.logger.Info("new game", "balance", t.startingBalance.String())
}

func (t *Table) newGame() {
	t.deck = NewPokerDeck(t.deckOpts...)
	t.user = NewHuman(t.startingBalance)
	t.dealer = NewDealer()
	t.clearRound()
	t.phase = PhaseAwaitingAnte
	t.gameOver = false
	t.roundNumber = 0
	t.roundID = ""
}

func (t *Table) clearRound() {
	t.pot = decimal.Zero
	t.pairPlusStake = decimal.Zero
	t.winner = Undetermined
	t.roundOver = false
	t.playBet = decimal.Zero
	t.pairPlusPlaced = decimal.Zero
	t.pairPlusPaid = decimal.Zero
	t.pairPlusDone = false
}

// StartRound collects last round's cards and takes the ante. If the player
// cannot cover the ante the game is over and the balance is left as it is.
func (t *Table) StartRound() error {
	if err := checkPhase(t.phase, "start a round", PhaseAwaitingAnte, PhaseRoundComplete); err != nil {
		return err
	}
	t.collectCards()
	t.clearRound()

	if err := t.wager(ante, ante); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			t.gameOver = true
			t.phase = PhaseGameOver
			t.logger.Info("game over", "balance", t.Balance().String(), "rounds", t.roundNumber)
			return fmt.Errorf("%w: %w", ErrGameOver, err)
		}
		return err
	}
	t.roundNumber++
	t.roundID = uuid.NewString()
	t.phase = PhaseAwaitingPairPlusBet
	t.logger.Debug("round started", "round", t.roundNumber, "id", t.roundID, "pot", t.pot.String())
	return nil
}

// PlacePairPlusBet takes the optional side bet (zero for none) and deals
// three cards to each seat: the player's face up, the dealer's face down.
func (t *Table) PlacePairPlusBet(amount decimal.Decimal) error {
	if err := checkPhase(t.phase, "place a pair plus bet", PhaseAwaitingPairPlusBet); err != nil {
		return err
	}
	bank := t.user.bankroll
	if err := checkWager(amount, minPairPlusBet, bank.Balance()); err != nil {
		return err
	}
	if err := bank.Wager(amount); err != nil {
		return err
	}
	t.pairPlusStake = amount
	t.pairPlusPlaced = amount
	t.deal()
	t.phase = PhaseAwaitingPlayBet
	t.logger.Debug("hands dealt", "round", t.roundNumber, "pair_plus", amount.String(), "user", t.user.hand.String())
	return nil
}

// PlaceBet places the play wager. It fails without changing anything if the
// amount is below the minimum or above the balance.
func (t *Table) PlaceBet(amount decimal.Decimal) error {
	if err := checkPhase(t.phase, "place a bet", PhaseAwaitingPlayBet); err != nil {
		return err
	}
	if err := t.wager(amount, minPlayBet); err != nil {
		return err
	}
	t.playBet = amount
	t.phase = PhaseShowdown
	t.logger.Debug("play bet placed", "round", t.roundNumber, "amount", amount.String(), "pot", t.pot.String())
	return nil
}

// Fold ends the round without a showdown. The ante and the pair plus stake
// are lost.
func (t *Table) Fold() error {
	if err := checkPhase(t.phase, "fold", PhaseAwaitingPlayBet); err != nil {
		return err
	}
	t.roundOver = true
	t.phase = PhaseRoundComplete
	t.logger.Info("player folded", "round", t.roundNumber, "lost", t.pot.Add(t.pairPlusStake).String())
	t.record(OutcomeFold)
	return nil
}

// RevealDealer turns the dealer's cards face up. The dealer is only shown
// once the play bet is in or the round is over.
func (t *Table) RevealDealer() error {
	if err := checkPhase(t.phase, "reveal the dealer", PhaseShowdown, PhaseRoundComplete); err != nil {
		return err
	}
	t.dealer.hand.Reveal()
	return nil
}

// CompareHands reveals the dealer and decides the main bet. The higher
// category wins; within a category the higher high card wins. Hands that
// tie on both are a push.
func (t *Table) CompareHands() (Winner, error) {
	if err := checkPhase(t.phase, "compare hands", PhaseShowdown); err != nil {
		return Undetermined, err
	}
	if t.winner != Undetermined {
		return t.winner, nil
	}
	user, err := t.user.hand.Evaluate()
	if err != nil {
		return Undetermined, fmt.Errorf("evaluate player hand: %w", err)
	}
	dealer, err := t.dealer.hand.Evaluate()
	if err != nil {
		return Undetermined, fmt.Errorf("evaluate dealer hand: %w", err)
	}
	t.dealer.hand.Reveal()

	switch c := user.Compare(dealer); {
	case c > 0:
		t.winner = UserWon
	case c < 0:
		t.winner = DealerWon
	default:
		t.winner = Push
	}
	t.logger.Debug("showdown", "round", t.roundNumber, "user", user.String(), "dealer", dealer.String(), "winner", string(t.winner))
	return t.winner, nil
}

// SettlePairPlus pays the side bet on the player's hand alone, whatever the
// showdown says, and clears the stake.
func (t *Table) SettlePairPlus() (decimal.Decimal, error) {
	if err := checkPhase(t.phase, "settle pair plus", PhaseShowdown); err != nil {
		return decimal.Zero, err
	}
	if t.pairPlusDone {
		return decimal.Zero, nil
	}
	value, err := t.user.hand.Evaluate()
	if err != nil {
		return decimal.Zero, fmt.Errorf("evaluate player hand: %w", err)
	}
	payout := PairPlusPayout(value.Category, t.pairPlusStake)
	if err := t.user.bankroll.Credit(payout); err != nil {
		return decimal.Zero, err
	}
	t.pairPlusPaid = payout
	t.pairPlusStake = decimal.Zero
	t.pairPlusDone = true
	t.logger.Debug("pair plus settled", "round", t.roundNumber, "category", value.Category.String(), "payout", payout.String())
	return payout, nil
}

// SettleRound pays the main bet once the hands are compared: the pot goes
// to the player on a win and back to the player on a push. A pair plus
// stake that is still open is settled too. It returns what the pot paid.
func (t *Table) SettleRound() (decimal.Decimal, error) {
	if err := checkPhase(t.phase, "settle the round", PhaseShowdown); err != nil {
		return decimal.Zero, err
	}
	if t.winner == Undetermined {
		return decimal.Zero, fmt.Errorf("%w: hands have not been compared", ErrInvalidPhase)
	}
	if _, err := t.SettlePairPlus(); err != nil {
		return decimal.Zero, err
	}
	paid := decimal.Zero
	if t.winner == UserWon || t.winner == Push {
		paid = t.pot
		if err := t.user.bankroll.Credit(paid); err != nil {
			return decimal.Zero, err
		}
	}
	t.roundOver = true
	t.phase = PhaseRoundComplete
	t.logger.Info("round settled",
		"round", t.roundNumber,
		"winner", string(t.winner),
		"pot", t.pot.String(),
		"paid", paid.String(),
		"balance", t.Balance().String(),
	)
	t.recordPaid(outcomeOf(t.winner), paid)
	return paid, nil
}

// Pot returns the main-bet stakes of the current round.
func (t *Table) Pot() decimal.Decimal {
	return t.pot
}

// PairPlusStake returns the open pair plus stake.
func (t *Table) PairPlusStake() decimal.Decimal {
	return t.pairPlusStake
}

// Balance returns the player's balance.
func (t *Table) Balance() decimal.Decimal {
	return t.user.bankroll.Balance()
}

// CardsOnTable returns both hands as the table shows them. The dealer's
// cards stay hidden until the showdown.
func (t *Table) CardsOnTable() (user, dealer []CardView) {
	return t.user.hand.Views(), t.dealer.hand.Views()
}

// UserHand returns the player's hand.
func (t *Table) UserHand() Hand {
	return t.user.Hand()
}

// DeckRemaining returns how many cards are left in the deck.
func (t *Table) DeckRemaining() int {
	return t.deck.Remaining()
}

// Winner returns the main-bet winner of the current round.
func (t *Table) Winner() Winner {
	return t.winner
}

// IsRoundOver reports whether the current round has finished.
func (t *Table) IsRoundOver() bool {
	return t.roundOver
}

// IsGameOver reports whether the player ran out of money for the ante.
func (t *Table) IsGameOver() bool {
	return t.gameOver
}

// Phase returns the current phase.
func (t *Table) Phase() Phase {
	return t.phase
}

// RoundID returns the identifier of the current round.
func (t *Table) RoundID() string {
	return t.roundID
}

// RoundNumber returns how many rounds have been started in this game.
func (t *Table) RoundNumber() int {
	return t.roundNumber
}

func (t *Table) wager(amount, minimum decimal.Decimal) error {
	bank := t.user.bankroll
	if err := checkWager(amount, minimum, bank.Balance()); err != nil {
		return err
	}
	if err := bank.Wager(amount); err != nil {
		return err
	}
	t.pot = t.pot.Add(amount)
	return nil
}

// deal gives each seat a fresh hand. Only six of the 52 cards are ever out,
// so a failure here means the deck bookkeeping is broken.
func (t *Table) deal() {
	user, err := t.deck.DealHand(true)
	if err != nil {
		panic(fmt.Errorf("deal player hand: %w", err))
	}
	dealer, err := t.deck.DealHand(false)
	if err != nil {
		panic(fmt.Errorf("deal dealer hand: %w", err))
	}
	t.user.hand = user
	t.dealer.hand = dealer
}

// collectCards returns both hands to the deck.
func (t *Table) collectCards() {
	for _, p := range []*Participant{t.user, t.dealer} {
		if err := t.deck.Return(p.hand.Discard()); err != nil {
			panic(fmt.Errorf("return %s cards: %w", p.Role, err))
		}
	}
}

func (t *Table) record(outcome Outcome) {
	t.recordPaid(outcome, decimal.Zero)
}

func (t *Table) recordPaid(outcome Outcome, potPaid decimal.Decimal) {
	if t.history == nil {
		return
	}
	rec := RoundRecord{
		RoundID:        t.roundID,
		Number:         t.roundNumber,
		Outcome:        outcome,
		UserCards:      cardCodes(t.user.hand.Cards()),
		DealerCards:    cardCodes(t.dealer.hand.Cards()),
		Ante:           ante,
		PlayBet:        t.playBet,
		PairPlusStake:  t.pairPlusPlaced,
		PairPlusPayout: t.pairPlusPaid,
		PotPayout:      potPaid,
		BalanceAfter:   t.Balance(),
	}
	if v, err := t.user.hand.Evaluate(); err == nil {
		rec.UserCategory = v.Category.String()
	}
	if outcome != OutcomeFold {
		if v, err := t.dealer.hand.Evaluate(); err == nil {
			rec.DealerCategory = v.Category.String()
		}
	}
	if err := t.history.Record(rec); err != nil {
		t.logger.Error("failed to record round", "round", t.roundNumber, "error", err)
	}
}
