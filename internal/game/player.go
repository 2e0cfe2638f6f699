package game

import (
	"github.com/pokerized/holdem/internal/deck"
)

// Player represents a seat at the table
type Player struct {
	Name  string
	Seat  int
	Agent Agent

	Hole   [2]deck.Card
	Dealt  int // hole cards received this hand
	Folded bool

	// Contributed is the amount put in on the current street. A running
	// BettingRound owns it.
	Contributed int

	// Session tallies. Stacks are not enforced.
	HandsWon       int
	ChipsCommitted int
}

// NewPlayer creates a player with the given agent; the seat is assigned by
// NewMatch
func NewPlayer(name string, agent Agent) *Player {
	return &Player{Name: name, Agent: agent}
}

// HoleCards returns the cards dealt so far
func (p *Player) HoleCards() []deck.Card {
	return append([]deck.Card(nil), p.Hole[:p.Dealt]...)
}

func (p *Player) resetForNewHand() {
	p.Hole = [2]deck.Card{}
	p.Dealt = 0
	p.Folded = false
	p.Contributed = 0
}
