package deck

import (
	"testing"

	"github.com/luca-patrignani/poker-pile/domain/card"
)

func sampleHand() *Deck {
	return New(
		card.New(card.Heart, 10),
		card.New(card.Spade, 3),
		card.New(card.Heart, card.Ace),
		card.New(card.Club, card.Queen),
		card.New(card.Diamond, card.Joker),
	)
}

func TestDisplayModes(t *testing.T) {
	cases := []struct {
		mode DisplayMode
		want string
	}{
		{NoSort, "♥ 10  ♠  3  ♥  A  ♣  Q  JOKER"},
		{SortByNumber, "♥  A  JOKER  ♣  Q  ♥ 10  ♠  3"},
		{RankOnly, "10 3 A Q JOKER"},
		{SortBySuit, "♠  3\n♥  10 A\n♦  JOKER\n♣  Q"},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			d := sampleHand()
			d.SetDisplayMode(tc.mode)
			if got := d.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if got := New(d.Cards()...).String(); got != "♥ 10  ♠  3  ♥  A  ♣  Q  JOKER" {
				t.Fatalf("rendering changed the stored order: %q", got)
			}
		})
	}
}

func TestSortBySuitEmptyDeck(t *testing.T) {
	d := New()
	d.SetDisplayMode(SortBySuit)
	if got, want := d.String(), "♠  \n♥  \n♦  \n♣  "; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseDisplayMode(t *testing.T) {
	for _, m := range []DisplayMode{NoSort, SortByNumber, SortBySuit, RankOnly} {
		got, err := ParseDisplayMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Fatalf("expected %v, got %v", m, got)
		}
	}
	if _, err := ParseDisplayMode("diagonal"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
