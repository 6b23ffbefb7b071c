package deck

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/poker-pile/domain/card"
)

// DisplayMode selects how String renders a deck.
type DisplayMode int

const (
	NoSort DisplayMode = iota
	SortByNumber
	SortBySuit
	RankOnly
)

const cardSeparator = "  "

var modeNames = map[DisplayMode]string{
	NoSort:       "nosort",
	SortByNumber: "number",
	SortBySuit:   "suit",
	RankOnly:     "rank",
}

func (m DisplayMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// ParseDisplayMode is the inverse of DisplayMode.String.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return NoSort, fmt.Errorf("unknown display mode %q", s)
}

func (d *Deck) SetDisplayMode(m DisplayMode) {
	d.mode = m
}

func (d *Deck) DisplayMode() DisplayMode {
	return d.mode
}

// String renders the deck according to its display mode.
func (d *Deck) String() string {
	switch d.mode {
	case SortByNumber:
		return d.sortedByNumber()
	case SortBySuit:
		return d.groupedBySuit()
	case RankOnly:
		return d.ranks()
	default:
		return joinCards(d.cards)
	}
}

func joinCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, cardSeparator)
}

func (d *Deck) sortedByNumber() string {
	sorted := New(d.cards...)
	sorted.Sort(RankFirst)
	return joinCards(sorted.cards)
}

func (d *Deck) ranks() string {
	labels := make([]string, len(d.cards))
	for i, c := range d.cards {
		labels[i] = c.Rank().Label()
	}
	return strings.Join(labels, " ")
}

// groupedBySuit writes one line per suit, spades first.
func (d *Deck) groupedBySuit() string {
	suits := card.Suits()
	lines := make([]string, 0, len(suits))
	for i := len(suits) - 1; i >= 0; i-- {
		lines = append(lines, suits[i].Symbol()+cardSeparator+d.SubsetBySuit(suits[i]).ranks())
	}
	return strings.Join(lines, "\n")
}
