package deck

import (
	"errors"
	"slices"
	"testing"
)

// zeroStream is a keystream of zero bytes: every pick lands on index 0.
type zeroStream struct{}

func (zeroStream) XORKeyStream(dst, src []byte) { copy(dst, src) }

// counterStream yields 0, 1, 2, ... byte by byte.
type counterStream struct{ next byte }

func (s *counterStream) XORKeyStream(dst, src []byte) {
	for i := range src {
		dst[i] = src[i] ^ s.next
		s.next++
	}
}

func TestNewDeckIsFull(t *testing.T) {
	d := New(52)
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	for i := 1; i <= 52; i++ {
		if !d.Contains(i) {
			t.Fatalf("card %d missing from a new deck", i)
		}
	}
	if d.Contains(0) || d.Contains(53) {
		t.Fatal("deck contains a card outside 1..52")
	}
}

func TestDrawRemovesCards(t *testing.T) {
	d := New(52)
	drawn, err := d.Draw(6)
	if err != nil {
		t.Fatal(err)
	}
	if len(drawn) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(drawn))
	}
	if d.Remaining() != 46 {
		t.Fatalf("expected 46 cards left, got %d", d.Remaining())
	}
	seen := map[int]bool{}
	for _, c := range drawn {
		if seen[c] {
			t.Fatalf("card %d drawn twice", c)
		}
		seen[c] = true
		if d.Contains(c) {
			t.Fatalf("drawn card %d still in the deck", c)
		}
	}
}

func TestDrawIsDeterministicWithStream(t *testing.T) {
	a := New(52, WithRandomStream(zeroStream{}))
	b := New(52, WithRandomStream(zeroStream{}))
	da, err := a.Draw(3)
	if err != nil {
		t.Fatal(err)
	}
	db, err := b.Draw(3)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(da, db) {
		t.Fatalf("expected equal draws, got %v and %v", da, db)
	}
	// index 0 every time: 1, then the swapped-in last card 52, then 51
	if !slices.Equal(da, []int{1, 52, 51}) {
		t.Fatalf("unexpected draw %v", da)
	}
}

func TestDrawRejectsOutOfRangeValues(t *testing.T) {
	// 3 cards need 2 bits; the first value read is 3 and must be redrawn
	d := New(3, WithRandomStream(&counterStream{next: 3}))
	drawn, err := d.Draw(3)
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Clone(drawn)
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected every card once, got %v", drawn)
	}
}

func TestDrawInsufficientCards(t *testing.T) {
	d := New(52)
	if _, err := d.Draw(50); err != nil {
		t.Fatal(err)
	}
	_, err := d.Draw(3)
	if !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
	if d.Remaining() != 2 {
		t.Fatalf("failed draw changed the deck: %d cards left", d.Remaining())
	}
}

func TestDrawNegative(t *testing.T) {
	d := New(52)
	if _, err := d.Draw(-1); err == nil {
		t.Fatal("expected error for a negative draw")
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name    string
		cards   func(drawn []int) []int
		wantErr error
	}{
		{"drawn cards", func(drawn []int) []int { return drawn }, nil},
		{"already in deck", func([]int) []int { return []int{10} }, ErrDuplicateCard},
		{"repeated in argument", func(drawn []int) []int { return []int{drawn[0], drawn[0]} }, ErrDuplicateCard},
		{"out of range", func([]int) []int { return []int{53} }, ErrInvalidCard},
		{"zero", func([]int) []int { return []int{0} }, ErrInvalidCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the zero stream draws 1, 52 and 51
			d := New(52, WithRandomStream(zeroStream{}))
			drawn, err := d.Draw(3)
			if err != nil {
				t.Fatal(err)
			}
			err = d.Return(tt.cards(drawn))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if d.Remaining() != 52 {
					t.Fatalf("expected a full deck, got %d", d.Remaining())
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if d.Remaining() != 49 {
				t.Fatalf("failed return changed the deck: %d cards", d.Remaining())
			}
		})
	}
}

func TestRemove(t *testing.T) {
	d := New(52)
	if err := d.Remove(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != 49 || d.Contains(2) {
		t.Fatalf("remove did not take the cards out: %v", d.Cards())
	}
	if err := d.Remove(4, 2); !errors.Is(err, ErrMissingCard) {
		t.Fatalf("expected ErrMissingCard, got %v", err)
	}
	if !d.Contains(4) {
		t.Fatal("failed remove took card 4 out")
	}
	if err := d.Remove(5, 5); !errors.Is(err, ErrMissingCard) {
		t.Fatalf("expected ErrMissingCard for a repeated card, got %v", err)
	}
	if err := d.Remove(60); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestDrawReturnKeepsAllCards(t *testing.T) {
	d := New(52)
	var out [][]int
	for round := 0; round < 40; round++ {
		if len(out) > 0 && round%3 == 0 {
			if err := d.Return(out[0]); err != nil {
				t.Fatal(err)
			}
			out = out[1:]
		}
		drawn, err := d.Draw(3)
		if err != nil {
			if errors.Is(err, ErrInsufficientCards) {
				continue
			}
			t.Fatal(err)
		}
		out = append(out, drawn)

		all := d.Cards()
		for _, hand := range out {
			all = append(all, hand...)
		}
		slices.Sort(all)
		if len(all) != 52 {
			t.Fatalf("round %d: expected 52 cards in total, got %d", round, len(all))
		}
		for i, c := range all {
			if c != i+1 {
				t.Fatalf("round %d: card set broken at %d: %v", round, i, all)
			}
		}
	}
}
