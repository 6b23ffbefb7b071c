package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/poker-pile/domain/card"
)

var (
	ErrEmpty           = errors.New("deck is empty")
	ErrCardNotHeld     = errors.New("card not held")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Deck is an ordered stack of cards: index 0 is the bottom, the last index
// is the top. The display mode only affects String, never the stored order.
type Deck struct {
	cards []card.Card
	mode  DisplayMode
}

// New returns a deck holding a copy of cards, bottom first.
func New(cards ...card.Card) *Deck {
	d := &Deck{}
	if len(cards) > 0 {
		d.cards = append(make([]card.Card, 0, len(cards)), cards...)
	}
	return d
}

// Push puts c on top of the deck.
func (d *Deck) Push(c card.Card) {
	d.cards = append(d.cards, c)
}

// PopTop removes the top card and returns it.
func (d *Deck) PopTop() (card.Card, error) {
	top, err := d.PeekTop()
	if err != nil {
		return card.Card{}, err
	}
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

func (d *Deck) PeekTop() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmpty
	}
	return d.cards[len(d.cards)-1], nil
}

// Remove takes the first card equal to c out of the deck.
func (d *Deck) Remove(c card.Card) (card.Card, error) {
	for i := range d.cards {
		if d.cards[i].Equal(c) {
			return d.RemoveAt(i)
		}
	}
	return card.Card{}, fmt.Errorf("%s: %w", c, ErrCardNotHeld)
}

// RemoveAt takes the card at position i out of the deck, keeping the order
// of the others.
func (d *Deck) RemoveAt(i int) (card.Card, error) {
	if err := d.check(i); err != nil {
		return card.Card{}, err
	}
	c := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return c, nil
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) At(i int) (card.Card, error) {
	if err := d.check(i); err != nil {
		return card.Card{}, err
	}
	return d.cards[i], nil
}

// Set replaces the card at position i.
func (d *Deck) Set(i int, c card.Card) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.cards[i] = c
	return nil
}

func (d *Deck) Swap(i, j int) error {
	if err := d.check(i); err != nil {
		return err
	}
	if err := d.check(j); err != nil {
		return err
	}
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	return nil
}

// Cards returns a copy of the cards, bottom first.
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// SubsetBySuit returns a new deck with the cards of suit s in their
// original relative order.
func (d *Deck) SubsetBySuit(s card.Suit) *Deck {
	sub := &Deck{}
	for _, c := range d.cards {
		if c.Suit() == s {
			sub.cards = append(sub.cards, c)
		}
	}
	return sub
}

func (d *Deck) check(i int) error {
	if i < 0 || i >= len(d.cards) {
		return fmt.Errorf("index %d, size %d: %w", i, len(d.cards), ErrIndexOutOfRange)
	}
	return nil
}
