// Package strategy decides whether the player should back a dealt hand with
// a play bet.
package strategy

import (
	ph "github.com/paulhankin/poker"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
)

// threshold is Q-6-4, the weakest high card hand worth playing.
var threshold = score([poker.HandSize]poker.Card{
	poker.MustParseCard("Qc"),
	poker.MustParseCard("6d"),
	poker.MustParseCard("4h"),
})

// ShouldPlay reports whether to place the play bet on cards. Any pair or
// better is played; a high card hand is played if it ranks at least Q-6-4.
func ShouldPlay(cards [poker.HandSize]poker.Card) bool {
	if poker.Evaluate(cards).Category > poker.HighCard {
		return true
	}
	return score(cards) >= threshold
}

// score ranks three cards by pairs and high cards only. Higher is better.
func score(cards [poker.HandSize]poker.Card) int16 {
	var hand [poker.HandSize]ph.Card
	for i, c := range cards {
		hand[i] = toPH(c)
	}
	return ph.Eval3(&hand)
}

// toPH converts a card to the evaluator's representation, where aces are
// rank 1.
func toPH(c poker.Card) ph.Card {
	var s ph.Suit
	switch c.Suit() {
	case poker.Club:
		s = ph.Club
	case poker.Diamond:
		s = ph.Diamond
	case poker.Heart:
		s = ph.Heart
	default:
		s = ph.Spade
	}
	r := ph.Rank(c.Rank())
	if c.Rank() == poker.Ace {
		r = 1
	}
	card, err := ph.MakeCard(s, r)
	if err != nil {
		panic(err)
	}
	return card
}
