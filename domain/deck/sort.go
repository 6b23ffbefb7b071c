package deck

import (
	"sort"

	"github.com/luca-patrignani/poker-pile/domain/card"
)

type SortOrder int

const (
	// RankFirst orders by rank descending with the ace highest, ties by suit descending.
	RankFirst SortOrder = iota
	// SuitFirst orders by suit descending (spades first), then like RankFirst.
	SuitFirst
)

// weight places the ace above every other rank, joker included.
func weight(r card.Rank) int {
	if r == card.Ace {
		return int(card.Joker) + 1
	}
	return int(r)
}

// RankFirstLess reports whether a sorts before b in RankFirst order.
func RankFirstLess(a, b card.Card) bool {
	if wa, wb := weight(a.Rank()), weight(b.Rank()); wa != wb {
		return wa > wb
	}
	return a.Suit() > b.Suit()
}

// SuitFirstLess reports whether a sorts before b in SuitFirst order.
func SuitFirstLess(a, b card.Card) bool {
	if a.Suit() != b.Suit() {
		return a.Suit() > b.Suit()
	}
	return weight(a.Rank()) > weight(b.Rank())
}

// Sort reorders the deck in place.
func (d *Deck) Sort(order SortOrder) {
	less := RankFirstLess
	if order == SuitFirst {
		less = SuitFirstLess
	}
	sort.SliceStable(d.cards, func(i, j int) bool {
		return less(d.cards[i], d.cards[j])
	})
}
