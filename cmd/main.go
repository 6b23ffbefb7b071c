package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/poker-pile/domain/card"
	"github.com/luca-patrignani/poker-pile/domain/deck"
	"github.com/luca-patrignani/poker-pile/domain/poker"
)

func main() {
	cfg, err := parseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(2)
	}

	if cfg.Debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog logger with the default PTerm logger as handler
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if err := run(cfg, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	card.SetGlyphs(cfg.Glyphs)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ile", pterm.FgDarkGray.ToStyle()),
	).Render()

	game, err := poker.NewGame(cfg.Decks, cfg.Players, cfg.Jokers, gameOptions(cfg, logger)...)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Game %s: %d decks, %d players, jokers %v", game.ID(), cfg.Decks, cfg.Players, cfg.Jokers)
	printPile("PILE", game)

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	if err := game.Shuffle(cfg.Shuffle); err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	printPile("SHUFFLED PILE", game)

	dealt := game.Deal(cfg.Deal)
	pterm.Info.Printfln("Dealt %d cards", dealt)
	if err := printHands(game, deck.NoSort); err != nil {
		return err
	}

	pterm.Info.Println("Sort")
	game.SortAllHands()
	if err := printHands(game, cfg.Mode); err != nil {
		return err
	}

	return playSample(game, logger)
}

// playSample shows the fourth card of the third player and plays it.
func playSample(game *poker.Game, logger *slog.Logger) error {
	const player, index = 2, 3
	h, err := game.Hand(player)
	if err != nil {
		logger.Warn("not enough players to play a card", "players", game.Players())
		return nil
	}
	c, err := h.At(index)
	if err != nil {
		logger.Warn("not enough cards to play", "player", player, "cards", h.Size())
		return nil
	}
	pterm.Info.Printfln("Player %d, card %d: %s Number: %d Suit: %s", player, index, colorCard(c), c.Rank(), c.Suit())
	if _, err := game.PlayAt(player, index); err != nil {
		return err
	}
	h.SetDisplayMode(deck.NoSort)
	pterm.Info.Printfln("Play %d, %d\nPlayer %d %s", player, index, player, h)
	return nil
}

func gameOptions(cfg config, logger *slog.Logger) []poker.GameOption {
	opts := []poker.GameOption{poker.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, poker.WithSeed(cfg.Seed))
	}
	return opts
}
