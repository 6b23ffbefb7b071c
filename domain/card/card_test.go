package card

import (
	"errors"
	"testing"
)

func TestNewMasksOutOfRangeValues(t *testing.T) {
	c := New(Suit(7), Rank(17))
	if c.Suit() != Spade {
		t.Fatalf("expected suit %v, got %v", Spade, c.Suit())
	}
	if c.Rank() != Ace {
		t.Fatalf("expected rank %d, got %d", Ace, c.Rank())
	}
	if New(Club, None) != (Card{}) {
		t.Fatal("zero card must equal New(Club, None)")
	}
}

func TestRankLabel(t *testing.T) {
	expected := map[Rank]string{
		None: "", Ace: "A", 2: "2", 9: "9", 10: "10",
		Jack: "J", Queen: "Q", King: "K", Joker: "JOKER",
	}
	for r, label := range expected {
		if r.Label() != label {
			t.Errorf("rank %d: expected %q, got %q", r, label, r.Label())
		}
	}
}

func TestCardFormat(t *testing.T) {
	cases := []struct {
		card Card
		want string
	}{
		{New(Heart, Ace), "♥  A"},
		{New(Club, Jack), "♣  J"},
		{New(Spade, 10), "♠ 10"},
		{New(Diamond, 7), "♦  7"},
		{New(Diamond, Joker), "JOKER"},
		{New(Spade, Joker), "JOKER"},
		{New(Club, None), "♣   "},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.card.Format(UnicodeGlyphs); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCodePageGlyphs(t *testing.T) {
	if got := New(Spade, King).Format(CodePage437Glyphs); got != "\x06  K" {
		t.Fatalf("expected %q, got %q", "\x06  K", got)
	}
	seen := map[string]bool{}
	for _, s := range Suits() {
		seen[CodePage437Glyphs.Symbol(s)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct glyphs, got %d", len(seen))
	}
}

func TestSetGlyphs(t *testing.T) {
	prev := ActiveGlyphs()
	defer SetGlyphs(prev)

	SetGlyphs(CodePage437Glyphs)
	if Heart.Symbol() != "\x03" {
		t.Fatalf("expected code page heart, got %q", Heart.Symbol())
	}
	SetGlyphs(UnicodeGlyphs)
	if New(Heart, Queen).String() != "♥  Q" {
		t.Fatalf("unexpected %q", New(Heart, Queen).String())
	}
}

func TestEqual(t *testing.T) {
	if !New(Heart, 2).Equal(New(Heart, 2)) {
		t.Fatal("same suit and rank must be equal")
	}
	if New(Heart, 2).Equal(New(Diamond, 2)) {
		t.Fatal("different suits must differ")
	}
	if New(Heart, 2).Equal(New(Heart, 3)) {
		t.Fatal("different ranks must differ")
	}
}

func TestFromIndex(t *testing.T) {
	c, err := FromIndex(28)
	if err != nil {
		t.Fatal(err)
	}
	if c != New(Heart, 2) {
		t.Fatalf("expected %v, get %v", New(Heart, 2), c)
	}
	for i := 1; i < 53; i++ {
		c, err := FromIndex(i)
		if err != nil {
			t.Fatal(err)
		}
		back, err := c.Index()
		if err != nil {
			t.Fatal(err)
		}
		if back != i {
			t.Fatalf("expected %d, got %d", i, back)
		}
	}
	if _, err := FromIndex(0); err == nil {
		t.Fatal("expected error for ordinal 0")
	}
	if _, err := FromIndex(53); err == nil {
		t.Fatal("expected error for ordinal 53")
	}
}

func TestJokerHasNoIndex(t *testing.T) {
	_, err := New(Diamond, Joker).Index()
	if !errors.Is(err, ErrNoIndex) {
		t.Fatalf("expected ErrNoIndex, got %v", err)
	}
}
