package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/luca-patrignani/poker-pile/domain/card"
	"github.com/luca-patrignani/poker-pile/domain/deck"
	"github.com/luca-patrignani/poker-pile/domain/poker"
)

type config struct {
	Decks   int
	Players int
	Jokers  bool
	Deal    int
	Shuffle int
	Seed    int64
	Glyphs  card.Glyphs
	Mode    deck.DisplayMode
	Debug   bool
}

var glyphSets = map[string]card.Glyphs{
	"auto":    card.DefaultGlyphs(),
	"unicode": card.UnicodeGlyphs,
	"cp437":   card.CodePage437Glyphs,
}

func parseConfig(name string, args []string, output io.Writer) (config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := config{}
	fs.IntVar(&cfg.Decks, "decks", poker.DefaultDecks, "number of standard decks in the pile")
	fs.IntVar(&cfg.Players, "players", 4, "number of seated players")
	fs.BoolVar(&cfg.Jokers, "jokers", false, "add two jokers per deck")
	fs.IntVar(&cfg.Deal, "deal", 13, "cards dealt to each player")
	fs.IntVar(&cfg.Shuffle, "shuffle", poker.DefaultShuffleIterations, "random swaps performed by the shuffle")
	fs.Int64Var(&cfg.Seed, "seed", 0, "shuffle seed, 0 picks a random one")
	glyphs := fs.String("glyphs", "auto", "suit glyphs: auto, unicode or cp437")
	mode := fs.String("mode", deck.NoSort.String(), "hand display mode: nosort, number, suit or rank")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	g, ok := glyphSets[*glyphs]
	if !ok {
		return config{}, fmt.Errorf("unknown glyph set %q", *glyphs)
	}
	cfg.Glyphs = g

	m, err := deck.ParseDisplayMode(*mode)
	if err != nil {
		return config{}, err
	}
	cfg.Mode = m

	if cfg.Players < 1 {
		return config{}, fmt.Errorf("players must be at least 1, got %d", cfg.Players)
	}
	if cfg.Decks < 0 {
		return config{}, fmt.Errorf("decks cannot be negative, got %d", cfg.Decks)
	}
	if cfg.Deal < 0 || cfg.Shuffle < 0 {
		return config{}, fmt.Errorf("deal and shuffle cannot be negative")
	}
	return cfg, nil
}
