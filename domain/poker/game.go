package poker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/luca-patrignani/poker-pile/domain/card"
	"github.com/luca-patrignani/poker-pile/domain/deck"
)

const (
	DefaultDecks             = 1
	DefaultPlayers           = 2
	DefaultShuffleIterations = 1000

	jokersPerDeck = 2
)

// JokerSuit is the placeholder suit given to jokers.
const JokerSuit = card.Diamond

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("player index out of range")
	ErrEmptyPile       = errors.New("pile is empty")
)

// Game is the table: one pile and one hand per player.
type Game struct {
	id     uuid.UUID
	pile   *deck.Deck
	hands  []*deck.Deck
	total  int
	rand   *rand.Rand
	logger *slog.Logger
}

// NewGame builds a pile of decks standard 52 card decks, each followed by two
// jokers when jokers is set, and seats players empty hands.
func NewGame(decks, players int, jokers bool, opts ...GameOption) (*Game, error) {
	if players < 1 {
		return nil, fmt.Errorf("players must be at least 1, got %d: %w", players, ErrInvalidArgument)
	}
	if decks < 0 {
		return nil, fmt.Errorf("decks cannot be negative, got %d: %w", decks, ErrInvalidArgument)
	}

	g := Game{
		id:     uuid.New(),
		pile:   deck.New(),
		hands:  make([]*deck.Deck, players),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	if g.rand == nil {
		r, err := deck.NewRand()
		if err != nil {
			return nil, fmt.Errorf("seeding shuffle: %w", err)
		}
		g.rand = r
	}

	for k := 0; k < decks; k++ {
		for _, s := range card.Suits() {
			for r := card.Ace; r <= card.King; r++ {
				g.pile.Push(card.New(s, r))
			}
		}
		if jokers {
			for j := 0; j < jokersPerDeck; j++ {
				g.pile.Push(card.New(JokerSuit, card.Joker))
			}
		}
	}
	for i := range g.hands {
		g.hands[i] = deck.New()
	}
	g.total = g.pile.Size()

	g.logger.Debug("game created", "game", g.id, "decks", decks, "players", players, "jokers", jokers, "cards", g.total)
	return &g, nil
}

// NewDefaultGame creates a game with one deck, two players and no jokers.
func NewDefaultGame(opts ...GameOption) (*Game, error) {
	return NewGame(DefaultDecks, DefaultPlayers, false, opts...)
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() int {
	return len(g.hands)
}

// Total is the number of cards the game was built with.
func (g *Game) Total() int {
	return g.total
}

func (g *Game) Pile() *deck.Deck {
	return g.pile
}

// Hand returns the hand of player. Changes to the returned deck are changes
// to the game.
func (g *Game) Hand(player int) (*deck.Deck, error) {
	if err := g.checkPlayer(player); err != nil {
		return nil, err
	}
	return g.hands[player], nil
}

// Shuffle swaps two distinct random cards of the pile iterations times.
func (g *Game) Shuffle(iterations int) error {
	if iterations <= 0 {
		return nil
	}
	if g.pile.IsEmpty() {
		return ErrEmptyPile
	}
	g.pile.Shuffle(g.rand, iterations)
	g.logger.Debug("pile shuffled", "game", g.id, "iterations", iterations)
	return nil
}

// Draw moves the top card of the pile to the hand of player and returns it.
func (g *Game) Draw(player int) (card.Card, error) {
	if err := g.checkPlayer(player); err != nil {
		return card.Card{}, err
	}
	c, err := g.pile.PopTop()
	if err != nil {
		return card.Card{}, fmt.Errorf("%w: %w", ErrEmptyPile, err)
	}
	g.hands[player].Push(c)
	return c, nil
}

// Play removes c from the hand of player.
func (g *Game) Play(player int, c card.Card) error {
	if err := g.checkPlayer(player); err != nil {
		return err
	}
	if _, err := g.hands[player].Remove(c); err != nil {
		return fmt.Errorf("player %d: %w", player, err)
	}
	return nil
}

// PlayAt removes the card at position index of the hand of player.
func (g *Game) PlayAt(player, index int) (card.Card, error) {
	if err := g.checkPlayer(player); err != nil {
		return card.Card{}, err
	}
	c, err := g.hands[player].RemoveAt(index)
	if err != nil {
		return card.Card{}, fmt.Errorf("player %d: %w", player, err)
	}
	return c, nil
}

// Deal hands out cardsPerPlayer cards to every player, one at a time starting
// from player 0. When the pile runs out it stops silently. It returns the
// number of cards dealt.
func (g *Game) Deal(cardsPerPlayer int) int {
	total := cardsPerPlayer * len(g.hands)
	dealt := 0
	for player := 0; dealt < total; player = (player + 1) % len(g.hands) {
		c, err := g.pile.PopTop()
		if err != nil {
			break
		}
		g.hands[player].Push(c)
		dealt++
	}
	g.logger.Debug("cards dealt", "game", g.id, "requested", max(total, 0), "dealt", dealt)
	return dealt
}

// SortAllHands sorts every hand by rank, ace high.
func (g *Game) SortAllHands() {
	for _, h := range g.hands {
		h.Sort(deck.RankFirst)
	}
}

// String renders the pile in its display mode.
func (g *Game) String() string {
	return g.pile.String()
}

func (g *Game) checkPlayer(player int) error {
	if player < 0 || player >= len(g.hands) {
		return fmt.Errorf("player %d of %d: %w", player, len(g.hands), ErrIndexOutOfRange)
	}
	return nil
}
