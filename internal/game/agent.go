package game

import (
	"context"

	"github.com/pokerized/holdem/internal/deck"
)

// Agent is the decision source for a seat. Decide is called only for the
// seat holding the action and must pick one of legal. Anything else is
// rejected and asked again.
type Agent interface {
	Decide(ctx context.Context, view TableView, legal []Action) (Action, error)
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(ctx context.Context, view TableView, legal []Action) (Action, error)

// Decide calls f
func (f AgentFunc) Decide(ctx context.Context, view TableView, legal []Action) (Action, error) {
	return f(ctx, view, legal)
}

// SeatView is the public state of one seat
type SeatView struct {
	Name        string
	Seat        int
	Folded      bool
	Contributed int
	// Hole is empty unless the view belongs to this seat or cards are
	// face up after showdown
	Hole []deck.Card
}

// TableView is a read-only snapshot handed to agents
type TableView struct {
	HandNumber     int
	Street         Street
	Seat           int // the seat this view was built for
	Button         int
	SmallBlindSeat int
	BigBlindSeat   int
	Players        []SeatView
	Community      []deck.Card
	Pot            int
	CurrentBet     int
	ToCall         int
	Raises         int
	RaiseCap       int
}

// Me returns the viewing seat's own entry
func (v TableView) Me() SeatView {
	if v.Seat < 0 || v.Seat >= len(v.Players) {
		return SeatView{}
	}
	return v.Players[v.Seat]
}

func newTableView(players []*Player, seat int, revealAll bool) TableView {
	seats := make([]SeatView, len(players))
	for i, p := range players {
		seats[i] = SeatView{
			Name:        p.Name,
			Seat:        p.Seat,
			Folded:      p.Folded,
			Contributed: p.Contributed,
		}
		if revealAll || i == seat {
			seats[i].Hole = p.HoleCards()
		}
	}
	return TableView{Seat: seat, Players: seats}
}
