package poker

import (
	"fmt"

	"github.com/luca-patrignani/three-card-poker/domain/deck"
)

// DeckSize is the number of distinct cards in play.
const DeckSize = 52

// PokerDeck wraps a generic deck of raw card numbers and provides poker
// card handling on top of it. It converts between Card values and the raw
// numbers the underlying deck keeps track of.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a full 52-card deck.
func NewPokerDeck(opts ...deck.Option) PokerDeck {
	return PokerDeck{
		Deck: deck.New(DeckSize, opts...),
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to
// suits in order (clubs, diamonds, hearts, spades) with ranks two through ace
// within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Two through Ace)
//   - 14-26: Diamonds (Two through Ace)
//   - 27-39: Hearts (Two through Ace)
//   - 40-52: Spades (Two through Ace)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: raw card %d", ErrInvalidCard, rawCard)
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13) + Two
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()-Two) + 1
}

// Deal draws n cards at random and removes them from the deck.
func (d PokerDeck) Deal(n int) ([]Card, error) {
	raw, err := d.Deck.Draw(n)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(raw))
	for i, r := range raw {
		c, err := IntToCard(r)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// DealHand deals a complete three-card hand, either face up or face down.
func (d PokerDeck) DealHand(faceUp bool) (Hand, error) {
	cards, err := d.Deal(HandSize)
	if err != nil {
		return Hand{}, err
	}
	return NewHand([HandSize]Card(cards), faceUp), nil
}

// Return puts cards back into the deck.
func (d PokerDeck) Return(cards []Card) error {
	raw := make([]int, len(cards))
	for i, c := range cards {
		raw[i] = CardToInt(c)
	}
	return d.Deck.Return(raw)
}

// Take removes specific cards from the deck. The table never calls it; it
// lets tests stage known hands.
func (d PokerDeck) Take(cards ...Card) error {
	raw := make([]int, len(cards))
	for i, c := range cards {
		raw[i] = CardToInt(c)
	}
	return d.Deck.Remove(raw...)
}
