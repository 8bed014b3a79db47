package deck

import (
	"crypto/cipher"
	"fmt"
	"slices"

	"go.dedis.ch/kyber/v4/util/random"
)

// Deck is the set of raw cards, numbered 1..Size, that are not currently
// held by anyone. Cards leave the deck through Draw or Remove and come back
// through Return.
type Deck struct {
	size   int
	cards  []int
	stream cipher.Stream
}

// Option configures a Deck.
type Option func(*Deck)

// WithRandomStream sets the source of randomness used by Draw.
// By default the deck reads from kyber's random stream, which is backed by
// crypto/rand.
func WithRandomStream(stream cipher.Stream) Option {
	return func(d *Deck) {
		d.stream = stream
	}
}

// New creates a full deck holding the raw cards 1..size.
func New(size int, opts ...Option) *Deck {
	d := &Deck{
		size:   size,
		cards:  make([]int, 0, size),
		stream: random.New(),
	}
	for i := 1; i <= size; i++ {
		d.cards = append(d.cards, i)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Remaining returns how many cards are still in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Contains reports whether the raw card is currently in the deck.
func (d *Deck) Contains(card int) bool {
	return slices.Contains(d.cards, card)
}

// Cards returns a sorted copy of the raw cards left in the deck.
func (d *Deck) Cards() []int {
	out := slices.Clone(d.cards)
	slices.Sort(out)
	return out
}

// Draw removes n cards chosen uniformly at random, without replacement.
func (d *Deck) Draw(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}
	drawn := make([]int, 0, n)
	for j := 0; j < n; j++ {
		i := d.pick(len(d.cards))
		drawn = append(drawn, d.cards[i])
		last := len(d.cards) - 1
		d.cards[i] = d.cards[last]
		d.cards = d.cards[:last]
	}
	return drawn, nil
}

// Remove takes the given cards out of the deck. Either all cards are
// removed or, on error, none are. Dealing goes through Draw; Remove is
// there for setting up known hands, which only the tests do.
func (d *Deck) Remove(cards ...int) error {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if err := d.checkRange(c); err != nil {
			return err
		}
		if seen[c] || !d.Contains(c) {
			return fmt.Errorf("%w: %d", ErrMissingCard, c)
		}
		seen[c] = true
	}
	d.cards = slices.DeleteFunc(d.cards, func(c int) bool { return seen[c] })
	return nil
}

// Return puts previously drawn cards back into the deck. A card that is
// already in the deck, or repeated in cards, is rejected with
// ErrDuplicateCard and the deck is left untouched.
func (d *Deck) Return(cards []int) error {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if err := d.checkRange(c); err != nil {
			return err
		}
		if seen[c] || d.Contains(c) {
			return fmt.Errorf("%w: %d", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	d.cards = append(d.cards, cards...)
	return nil
}

func (d *Deck) checkRange(card int) error {
	if card < 1 || card > d.size {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidCard, card, d.size)
	}
	return nil
}
