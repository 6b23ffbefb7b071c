package card

import (
	"errors"
	"fmt"
	"strconv"
)

// Suit of a card (0-3).
type Suit uint8

// Rank of a card (0-14).
type Rank uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣
	Diamond Suit = 1 // ♦
	Heart   Suit = 2 // ♥
	Spade   Suit = 3 // ♠
)

// Card rank constants for the non pip cards
const (
	None  Rank = 0 // no card
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Joker Rank = 14
)

const (
	suitMask = 0x3
	rankMask = 0xf
)

var ErrNoIndex = errors.New("card has no ordinal")

// Card represents a playing card with suit and rank.
// Rank 0 indicates an empty slot, rank 14 a joker whose suit is meaningless.
type Card struct {
	suit Suit
	rank Rank
}

// New creates a Card. Values are not validated: suit is truncated to 2 bits
// and rank to 4 bits, so callers must pass values in range.
func New(suit Suit, rank Rank) Card {
	return Card{
		suit: suit & suitMask,
		rank: rank & rankMask,
	}
}

// Suits returns the four suits in construction order, clubs first.
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) IsJoker() bool {
	return c.rank == Joker
}

// Equal reports whether both cards have the same suit and rank.
func (c Card) Equal(o Card) bool {
	return c == o
}

// Label returns the display label of the rank.
func (r Rank) Label() string {
	switch r {
	case None:
		return ""
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Joker:
		return "JOKER"
	default:
		return strconv.Itoa(int(r))
	}
}

// Symbol returns the glyph of the suit in the active glyph set.
func (s Suit) Symbol() string {
	return ActiveGlyphs().Symbol(s)
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	case Heart:
		return "heart"
	case Spade:
		return "spade"
	default:
		return "?"
	}
}

// Format renders the card with the given glyph set.
func (c Card) Format(g Glyphs) string {
	if c.rank == Joker {
		return c.rank.Label()
	}
	return fmt.Sprintf("%s %2s", g.Symbol(c.suit), c.rank.Label())
}

// String renders the card with the active glyph set, e.g. "♠  A" or "♥ 10".
// Jokers render as "JOKER".
func (c Card) String() string {
	return c.Format(ActiveGlyphs())
}

// FromIndex converts an ordinal (1-52) to a Card. Ordinals map to suits in order
// (clubs, diamonds, hearts, spades) with ranks Ace to King within each suit.
func FromIndex(i int) (Card, error) {
	if i > 52 || i < 1 {
		return Card{}, fmt.Errorf("ordinal %d out of range 1-52", i)
	}
	return New(Suit((i-1)/13), Rank((i-1)%13+1)), nil
}

// Index is the inverse of FromIndex.
func (c Card) Index() (int, error) {
	if c.rank == None || c.rank > King {
		return 0, fmt.Errorf("%v: %w", c, ErrNoIndex)
	}
	return int(c.suit)*13 + int(c.rank), nil
}
