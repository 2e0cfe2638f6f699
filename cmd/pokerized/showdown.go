package main

import (
	"fmt"
	"strings"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
)

// ShowdownCmd settles a showdown between named hole cards
type ShowdownCmd struct {
	Board string   `short:"b" required:"" help:"Five community cards, e.g. 'Ah Kd 7c 7s 2h'"`
	Hole  []string `short:"p" required:"" help:"Contender as name=cards, e.g. alice=AsAd; repeat for each player"`
}

func (cmd *ShowdownCmd) Run(g *Globals) error {
	board, err := deck.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	contenders := make([]evaluator.Contender, len(cmd.Hole))
	for i, arg := range cmd.Hole {
		c, err := parseContender(arg)
		if err != nil {
			return err
		}
		contenders[i] = c
	}

	results, winners, err := evaluator.DecideWinners(contenders, board)
	if err != nil {
		return err
	}

	r := g.renderer()
	fmt.Printf("Board: %s\n\n", r.RenderCards(board))
	fmt.Print(r.RenderShowdown(results, winners))
	return nil
}

// parseContender parses "name=AsKd"
func parseContender(arg string) (evaluator.Contender, error) {
	name, cards, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return evaluator.Contender{}, fmt.Errorf("contender %q: want name=cards", arg)
	}

	hole, err := deck.ParseCards(cards)
	if err != nil {
		return evaluator.Contender{}, fmt.Errorf("contender %s: %w", name, err)
	}
	if len(hole) != 2 {
		return evaluator.Contender{}, fmt.Errorf("contender %s: want 2 hole cards, got %d", name, len(hole))
	}
	return evaluator.Contender{Name: name, Hole: [2]deck.Card{hole[0], hole[1]}}, nil
}
