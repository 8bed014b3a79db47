package poker

import (
	"errors"
	"strings"
	"testing"
)

func TestIntToCard(t *testing.T) {
	expectedCard := Card{suit: Heart, rank: Two}
	testCard, err := IntToCard(27)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
}

func TestAllCardConvert(t *testing.T) {
	seen := make(map[Card]bool)
	for i := 1; i <= DeckSize; i++ {
		c, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Fatalf("card %s produced twice", c.Code())
		}
		seen[c] = true
		if got := CardToInt(c); got != i {
			t.Fatalf("expected %d, get %d", i, got)
		}
	}
}

func TestIntToCardOutOfRange(t *testing.T) {
	for _, raw := range []int{0, -1, 53} {
		if _, err := IntToCard(raw); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("raw card %d: expected ErrInvalidCard, got %v", raw, err)
		}
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Spade, Ace); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCard(Spade, 1); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("rank 1: expected ErrInvalidCard, got %v", err)
	}
	if _, err := NewCard(Suit(4), Ten); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("suit 4: expected ErrInvalidCard, got %v", err)
	}
}

func TestCardColor(t *testing.T) {
	tests := []struct {
		suit Suit
		want Color
	}{
		{Club, Black},
		{Spade, Black},
		{Heart, Red},
		{Diamond, Red},
	}
	for _, tt := range tests {
		c := Card{suit: tt.suit, rank: Five}
		if c.Color() != tt.want {
			t.Errorf("%s: expected %s, got %s", c.Code(), tt.want, c.Color())
		}
	}
}

func TestCompareIgnoresSuit(t *testing.T) {
	if Compare(MustParseCard("Kc"), MustParseCard("Kh")) != 0 {
		t.Fatal("cards of equal rank should compare equal")
	}
	if Compare(MustParseCard("Ac"), MustParseCard("Ks")) <= 0 {
		t.Fatal("ace should beat king")
	}
	if Compare(MustParseCard("2s"), MustParseCard("3c")) >= 0 {
		t.Fatal("two should lose to three")
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"As", Card{suit: Spade, rank: Ace}},
		{"td", Card{suit: Diamond, rank: Ten}},
		{"10h", Card{suit: Heart, rank: Ten}},
		{" 2c ", Card{suit: Club, rank: Two}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, get %v", tt.want.Code(), got.Code())
			}
		})
	}

	for _, bad := range []string{"", "1s", "Ax", "Asd", "..", "11c"} {
		if _, err := ParseCard(bad); !errors.Is(err, ErrInvalidCard) {
			t.Errorf("%q: expected ErrInvalidCard, got %v", bad, err)
		}
	}
}

func TestCardCodeRoundTrip(t *testing.T) {
	for i := 1; i <= DeckSize; i++ {
		c, _ := IntToCard(i)
		if got := MustParseCard(c.Code()); got != c {
			t.Fatalf("expected %s, get %s", c.Code(), got.Code())
		}
	}
}

func TestCardStringFaces(t *testing.T) {
	c := Card{suit: Heart, rank: Ace}
	if !strings.HasPrefix(c.String(), "A") || !strings.Contains(c.String(), "♥") {
		t.Fatalf("expected A♥, got %s", c.String())
	}
	c = Card{suit: Club, rank: Jack}
	if !strings.HasPrefix(c.String(), "J") || !strings.Contains(c.String(), "♣") {
		t.Fatalf("expected J♣, got %s", c.String())
	}
	c = Card{suit: Diamond, rank: Ten}
	if !strings.HasPrefix(c.String(), "10") {
		t.Fatalf("expected 10♦, got %s", c.String())
	}
}

func TestHiddenCardString(t *testing.T) {
	var v CardView
	if v.String() != FaceDown {
		t.Fatalf("expected %s, got %s", FaceDown, v.String())
	}
	if (Card{}).Code() != "??" {
		t.Fatalf("expected ??, got %s", Card{}.Code())
	}
}
