package game

import (
	"slices"
	"time"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
)

// Hand outcomes recorded in history and results
const (
	OutcomeFold     = "fold"
	OutcomeShowdown = "showdown"
)

// HistoryWriter receives every finished hand
type HistoryWriter interface {
	WriteHand(h *HandHistory) error
}

// NopHistoryWriter discards hands
type NopHistoryWriter struct{}

// WriteHand does nothing
func (NopHistoryWriter) WriteHand(*HandHistory) error { return nil }

// SeatRecord is a seat as it was at the start of a hand
type SeatRecord struct {
	Seat int
	Name string
	Hole []deck.Card
}

// StreetLog records one betting street
type StreetLog struct {
	Name     string
	Events   []string
	Revealed []deck.Card
	Pot      int // pot after the street's betting closed
}

// ShowdownRecord is one contender's evaluated hand
type ShowdownRecord struct {
	Seat     int
	Name     string
	Hole     []deck.Card
	Best     []deck.Card
	Category evaluator.Category
}

// HandHistory is the append-only record of one hand
type HandHistory struct {
	HandID     string
	HandNumber int
	StartedAt  time.Time
	EndedAt    time.Time

	Seats          []SeatRecord
	Button         int
	SmallBlindSeat int
	BigBlindSeat   int
	SmallBlind     int
	BigBlind       int

	Streets   []StreetLog
	Community []deck.Card
	Showdown  []ShowdownRecord
	Winners   []string
	Outcome   string
	Pot       int
}

// Street looks up a street log by name ("preflop", "flop", "turn", "river")
func (h *HandHistory) Street(name string) (*StreetLog, bool) {
	for i := range h.Streets {
		if h.Streets[i].Name == name {
			return &h.Streets[i], true
		}
	}
	return nil, false
}

// Events returns every event of the hand in order
func (h *HandHistory) Events() []string {
	var events []string
	for _, s := range h.Streets {
		events = append(events, s.Events...)
	}
	return events
}

func (h *HandHistory) addStreet(name string, revealed []deck.Card, events []string, pot int) {
	h.Streets = append(h.Streets, StreetLog{
		Name:     name,
		Events:   slices.Clone(events),
		Revealed: slices.Clone(revealed),
		Pot:      pot,
	})
}

// HandResult is what PlayHand reports back
type HandResult struct {
	HandNumber int
	HandID     string
	Winners    []string
	Outcome    string
	Pot        int
	// WinningCategory is set for showdowns
	WinningCategory evaluator.Category
	Showdown        []ShowdownRecord
	History         *HandHistory
}
