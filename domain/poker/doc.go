// Package poker implements the rules of three card poker played by one
// player against the dealer.
//
// # Core Types
//
// Card: a playing card with suit and rank. Aces are high only.
//
// Hand: the three cards held by a Participant, dealt face up or face down.
//
// Participant: a seat at the table. The dealer holds only a hand; the human
// player also holds a Bankroll.
//
// Table: the round engine. It owns the deck, both participants, the pot
// and the pair plus stake.
//
// # Round Flow
//
// A round moves through explicit phases driven by the caller:
// StartRound (ante) → PlacePairPlusBet (deal) → PlaceBet or Fold →
// CompareHands → SettlePairPlus → SettleRound. When the player cannot
// cover the ante the game is over until Reset.
//
// # Hand Evaluation
//
// Three-card categories rank StraightFlush > ThreeOfAKind > Straight >
// Flush > Pair > HighCard. Hands of the same category are separated by
// their highest card; hands still level are a push.
package poker
