package poker

import (
	"fmt"
	"slices"
)

// HandSize is the number of cards in a dealt hand.
const HandSize = 3

// Category is the rank of a three-card hand. The order is the three-card
// order, not the five-card one: a straight beats a flush and trips beat a
// straight.
type Category int

const (
	HighCard Category = iota
	Pair
	Flush
	Straight
	ThreeOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case Flush:
		return "flush"
	case Straight:
		return "straight"
	case ThreeOfAKind:
		return "three of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// HandValue is the result of evaluating a hand: its category and its
// highest card, which breaks ties between hands of the same category.
type HandValue struct {
	Category Category
	High     Card
}

// Compare returns a positive number if v beats o, a negative number if o
// beats v and 0 if neither category nor high-card rank separate them.
func (v HandValue) Compare(o HandValue) int {
	if v.Category != o.Category {
		if v.Category > o.Category {
			return 1
		}
		return -1
	}
	return Compare(v.High, o.High)
}

func (v HandValue) String() string {
	return fmt.Sprintf("%s, %s high", v.Category, v.High.Code())
}

// Evaluate classifies three cards. The result does not depend on the
// order of the cards.
func Evaluate(cards [HandSize]Card) HandValue {
	high := slices.MaxFunc(cards[:], Compare)
	straight := isStraight(cards)
	flush := isFlush(cards)

	var cat Category
	switch {
	case straight && flush:
		cat = StraightFlush
	case distinctRanks(cards) == 1:
		cat = ThreeOfAKind
	case straight:
		cat = Straight
	case flush:
		cat = Flush
	case distinctRanks(cards) == 2:
		cat = Pair
	default:
		cat = HighCard
	}
	return HandValue{Category: cat, High: high}
}

func distinctRanks(cards [HandSize]Card) int {
	n := 0
	for i, c := range cards {
		if !slices.ContainsFunc(cards[:i], func(o Card) bool { return o.rank == c.rank }) {
			n++
		}
	}
	return n
}

func isFlush(cards [HandSize]Card) bool {
	return cards[0].suit == cards[1].suit && cards[1].suit == cards[2].suit
}

// isStraight reports three consecutive ranks. Aces only play high, so
// A-2-3 is not a straight and Q-K-A is.
func isStraight(cards [HandSize]Card) bool {
	ranks := []Rank{cards[0].rank, cards[1].rank, cards[2].rank}
	slices.Sort(ranks)
	return ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1
}

// Hand is the cards held by one participant: either none or exactly three.
// Visibility belongs to the hand, not to the cards.
type Hand struct {
	cards  []Card
	faceUp bool
}

// NewHand builds a dealt hand.
func NewHand(cards [HandSize]Card, faceUp bool) Hand {
	return Hand{cards: cards[:], faceUp: faceUp}
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the hand.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// FaceUp reports whether the hand is visible.
func (h Hand) FaceUp() bool {
	return h.faceUp
}

// Views returns the hand as the table shows it.
func (h Hand) Views() []CardView {
	views := make([]CardView, len(h.cards))
	for i, c := range h.cards {
		if h.faceUp {
			views[i] = CardView{Card: c, FaceUp: true}
		}
	}
	return views
}

// Reveal turns the hand face up.
func (h *Hand) Reveal() {
	h.faceUp = true
}

// Discard empties the hand and returns the cards it held.
func (h *Hand) Discard() []Card {
	cards := h.cards
	h.cards = nil
	h.faceUp = false
	return cards
}

// Evaluate classifies the hand. A hand that has not been dealt cannot be
// ranked.
func (h Hand) Evaluate() (HandValue, error) {
	if len(h.cards) != HandSize {
		return HandValue{}, fmt.Errorf("%w: hand has %d cards", ErrInvalidHandSize, len(h.cards))
	}
	return Evaluate([HandSize]Card(h.cards)), nil
}

func (h Hand) String() string {
	s := ""
	for i, v := range h.Views() {
		if i > 0 {
			s += " - "
		}
		s += v.String()
	}
	return s
}
