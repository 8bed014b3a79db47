package poker

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suit of a card.
type Suit uint8

const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Rank of a card. Aces are high and only high.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Color is the cosmetic colour of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// FaceDown is the display character for hidden cards
const FaceDown = "▓"

// Card identifies one of the 52 cards. The zero Card is not a valid card;
// it stands for a card the viewer is not allowed to see.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: 2-14 (Jack=11, Queen=12, King=13, Ace=14)
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Color returns the colour of the card's suit.
func (c Card) Color() Color {
	return c.suit.Color()
}

// IsZero reports whether c is the placeholder for a hidden card.
func (c Card) IsZero() bool {
	return c.rank == 0
}

// Color returns Black for spades and clubs, Red for hearts and diamonds.
func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

func (s Suit) symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	}
	return "?"
}

// Compare orders cards by rank only. Suits never break ties.
func Compare(a, b Card) int {
	return cmp.Compare(a.rank, b.rank)
}

const (
	rankLetters = "..23456789TJQKA"
	suitLetters = "cdhs"
)

// Code returns the compact two-letter notation of the card, e.g. "Ts" or "7h".
func (c Card) Code() string {
	if c.IsZero() {
		return "??"
	}
	return string(rankLetters[c.rank]) + string(suitLetters[c.suit])
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) coloured by suit, and rank abbreviations
// (A, J, Q, K, or number).
func (c Card) String() string {
	if c.IsZero() {
		return FaceDown
	}
	var suit string
	if c.Color() == Red {
		suit = pterm.LightRed(c.suit.symbol())
	} else {
		suit = pterm.Black(c.suit.symbol())
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case King:
		rankStr = "K"
	case Queen:
		rankStr = "Q"
	case Jack:
		rankStr = "J"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}

// ParseCard reads the notation produced by Code. "10" is accepted as well
// as "T" for tens, and letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank := strings.IndexByte(rankLetters, s[0])
	suit := strings.IndexByte(strings.ToUpper(suitLetters), s[1])
	if rank < int(Two) || suit < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	return NewCard(Suit(suit), Rank(rank))
}

// MustParseCard is like ParseCard but panics on malformed input.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// CardView is a card as seen from the table. Face-down cards carry the zero
// Card so their identity never leaks to the viewer.
type CardView struct {
	Card   Card
	FaceUp bool
}

func (v CardView) String() string {
	return v.Card.String()
}
