package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-pile/domain/card"
	"github.com/luca-patrignani/poker-pile/domain/deck"
	"github.com/luca-patrignani/poker-pile/domain/poker"
)

// colorCard paints red suits red, the rest is left to the terminal.
func colorCard(c card.Card) string {
	switch {
	case c.IsJoker():
		return pterm.LightMagenta(c.String())
	case c.Suit() == card.Diamond || c.Suit() == card.Heart:
		return pterm.LightRed(c.String())
	default:
		return c.String()
	}
}

func printHandInfo(player int, h *deck.Deck) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := h.String()
	if h.DisplayMode() == deck.NoSort {
		body = ""
		for i, c := range h.Cards() {
			if i > 0 {
				body += "  "
			}
			body += colorCard(c)
		}
	}
	title := "Player " + strconv.Itoa(player) + " (" + strconv.Itoa(h.Size()) + " cards)"
	return pbox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprint(body)
}

func printHands(g *poker.Game, mode deck.DisplayMode) error {
	var rows [][]pterm.Panel
	var row []pterm.Panel
	for i := 0; i < g.Players(); i++ {
		h, err := g.Hand(i)
		if err != nil {
			return err
		}
		h.SetDisplayMode(mode)
		row = append(row, pterm.Panel{Data: printHandInfo(i, h)})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return pterm.DefaultPanel.WithPanels(rows).Render()
}

func printPile(title string, g *poker.Game) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	body := g.String()
	if body == "" {
		body = pterm.Gray("(empty)")
	}
	pbox.WithTitle(pterm.LightYellow(title + " | " + strconv.Itoa(g.Pile().Size()) + " cards")).WithTitleTopCenter().Println(body)
}
