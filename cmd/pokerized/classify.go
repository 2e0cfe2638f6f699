package main

import (
	"fmt"
	"strings"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
)

// ClassifyCmd prints the category of a five card hand
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards such as 'As Kd Qh Jc Ts' or 'AsKdQhJcTs'"`
}

func (cmd *ClassifyCmd) Run(g *Globals) error {
	cards, err := deck.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}

	h, err := evaluator.NewHand(cards)
	if err != nil {
		return err
	}
	fmt.Println(g.renderer().RenderHand(h))
	return nil
}
