package game

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pokerized/holdem/internal/deck"
)

const (
	// DefaultRaiseCap is the number of bets and raises allowed per street
	DefaultRaiseCap = 4
	// DefaultMaxAttempts is how many times a seat is asked again after
	// answering with an action outside the legal set
	DefaultMaxAttempts = 3
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// Streets lists the four betting rounds in play order
var Streets = [...]Street{Preflop, Flop, Turn, River}

func (s Street) String() string {
	if s < Preflop || s > River {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Action represents a player action
type Action int

const (
	Check Action = iota
	Call
	Raise
	Bet
	Fold
)

func (a Action) String() string {
	if a < Check || a > Fold {
		return "unknown"
	}
	return [...]string{"check", "call", "raise", "bet", "fold"}[a]
}

// ParseAction parses an action token such as "call"
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	case "bet":
		return Bet, nil
	case "fold":
		return Fold, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// RoundOutcome is how a betting round ended
type RoundOutcome int

const (
	// RoundClosed means action came back around to the closing seat
	RoundClosed RoundOutcome = iota
	// AllButOneFolded means a single seat is left in the hand
	AllButOneFolded
)

func (o RoundOutcome) String() string {
	if o == AllButOneFolded {
		return "all-but-one-folded"
	}
	return "closed"
}

// RoundConfig parameterizes one street of betting
type RoundConfig struct {
	Street     Street
	HandNumber int

	// StartSeat is the first seat asked to act. A folded start seat is
	// skipped in seating order.
	StartSeat int

	Button         int
	SmallBlindSeat int
	BigBlindSeat   int
	SmallBlind     int
	BigBlind       int

	RaiseCap    int
	MaxAttempts int

	// Community and Pot are only shown to agents
	Community []deck.Card
	Pot       int
}

// ActionRecord is an applied action
type ActionRecord struct {
	Seat        int
	Player      string
	Action      Action
	Amount      int // chips added by this action
	Description string
}

// RoundResult is the terminal state of a betting round
type RoundResult struct {
	Outcome     RoundOutcome
	Contributed []int
	Raises      int
	Actions     []ActionRecord
}

// Total returns the sum of all contributions in the round
func (r RoundResult) Total() int {
	total := 0
	for _, c := range r.Contributed {
		total += c
	}
	return total
}

// BettingRound drives one street of action. Exactly one seat holds the
// action at a time; the round owns each player's Contributed field until Run
// returns.
type BettingRound struct {
	players []*Player
	cfg     RoundConfig
	logger  *log.Logger

	seat        int
	currentBet  int
	closingSeat int
	raises      int
	actions     []ActionRecord
	done        bool
}

// NewBettingRound prepares a round over players, whose Seat must equal their
// index. Contributions are reset and, pre-flop, the blinds are credited.
func NewBettingRound(players []*Player, cfg RoundConfig, logger *log.Logger) (*BettingRound, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.RaiseCap <= 0 {
		cfg.RaiseCap = DefaultRaiseCap
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BigBlind <= 0 {
		return nil, fmt.Errorf("big blind must be positive, got %d", cfg.BigBlind)
	}

	n := len(players)
	for i, p := range players {
		if p.Seat != i {
			return nil, fmt.Errorf("player %s sits at %d but is listed at %d", p.Name, p.Seat, i)
		}
		if p.Agent == nil {
			return nil, fmt.Errorf("player %s has no agent", p.Name)
		}
	}
	for _, seat := range []int{cfg.StartSeat, cfg.Button, cfg.SmallBlindSeat, cfg.BigBlindSeat} {
		if seat < 0 || seat >= n {
			return nil, fmt.Errorf("seat %d out of range for %d players", seat, n)
		}
	}

	r := &BettingRound{
		players: players,
		cfg:     cfg,
		logger:  logger.With("street", cfg.Street),
	}
	if r.liveCount() < 2 {
		return nil, fmt.Errorf("betting round needs at least 2 live players, have %d", r.liveCount())
	}

	for _, p := range players {
		p.Contributed = 0
	}

	r.seat = cfg.StartSeat
	if players[r.seat].Folded {
		r.seat = r.nextLive(r.seat)
	}

	if cfg.Street == Preflop {
		players[cfg.SmallBlindSeat].Contributed = cfg.SmallBlind
		players[cfg.BigBlindSeat].Contributed = cfg.BigBlind
		r.currentBet = cfg.BigBlind
		r.closingSeat = cfg.BigBlindSeat
	} else {
		r.closingSeat = r.prevLive(r.seat)
	}

	return r, nil
}

// CurrentSeat returns the seat holding the action
func (r *BettingRound) CurrentSeat() int {
	return r.seat
}

// CurrentBet returns the amount every live seat must match
func (r *BettingRound) CurrentBet() int {
	return r.currentBet
}

// LegalActions returns the actions open to the seat holding the action
func (r *BettingRound) LegalActions() []Action {
	canRaise := r.raises < r.cfg.RaiseCap
	p := r.players[r.seat]

	var actions []Action
	switch {
	case r.currentBet == 0:
		actions = []Action{Check}
		if canRaise {
			actions = append(actions, Bet)
		}
	case p.Contributed == r.currentBet:
		actions = []Action{Check}
		if canRaise {
			actions = append(actions, Raise)
		}
	default:
		actions = []Action{Call}
		if canRaise {
			actions = append(actions, Raise)
		}
		actions = append(actions, Fold)
	}
	return actions
}

// Run asks each live seat in turn for a decision until the round closes or
// only one seat is left.
func (r *BettingRound) Run(ctx context.Context) (RoundResult, error) {
	if r.done {
		return RoundResult{}, fmt.Errorf("%s betting round already finished", r.cfg.Street)
	}

	for {
		if err := ctx.Err(); err != nil {
			return RoundResult{}, err
		}

		p := r.players[r.seat]
		legal := r.LegalActions()

		action, err := r.decide(ctx, p, legal)
		if err != nil {
			return RoundResult{}, err
		}

		record := r.apply(action)
		r.actions = append(r.actions, record)
		r.logger.Debug("Player action",
			"player", p.Name,
			"action", action,
			"amount", record.Amount,
			"currentBet", r.currentBet,
			"raises", r.raises)

		if r.liveCount() == 1 {
			return r.finish(AllButOneFolded), nil
		}
		if r.seat == r.closingSeat {
			return r.finish(RoundClosed), nil
		}
		r.seat = r.nextLive(r.seat)
	}
}

// decide asks the agent for an action and never returns one outside legal
func (r *BettingRound) decide(ctx context.Context, p *Player, legal []Action) (Action, error) {
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		action, err := p.Agent.Decide(ctx, r.view(p.Seat), slices.Clone(legal))
		if err != nil {
			return 0, fmt.Errorf("decision for %s: %w", p.Name, err)
		}
		if slices.Contains(legal, action) {
			return action, nil
		}
		r.logger.Warn("Rejected illegal action",
			"player", p.Name,
			"action", action,
			"legal", legal,
			"attempt", attempt)
	}
	return 0, fmt.Errorf("%w: %s answered outside %v %d times", ErrIllegalAction, p.Name, legal, r.cfg.MaxAttempts)
}

func (r *BettingRound) apply(action Action) ActionRecord {
	p := r.players[r.seat]
	rec := ActionRecord{Seat: r.seat, Player: p.Name, Action: action}

	switch action {
	case Check:
		rec.Description = fmt.Sprintf("%s checks", p.Name)

	case Call:
		rec.Amount = r.currentBet - p.Contributed
		p.Contributed += rec.Amount
		rec.Description = fmt.Sprintf("%s calls %d", p.Name, rec.Amount)

	case Bet:
		r.currentBet = r.cfg.BigBlind
		rec.Amount = r.currentBet - p.Contributed
		p.Contributed = r.currentBet
		r.reopen()
		rec.Description = fmt.Sprintf("%s bets %d", p.Name, rec.Amount)

	case Raise:
		callUp := r.currentBet - p.Contributed
		r.currentBet += r.cfg.BigBlind
		rec.Amount = callUp + r.cfg.BigBlind
		p.Contributed += rec.Amount
		r.reopen()
		rec.Description = fmt.Sprintf("%s raises to %d", p.Name, r.currentBet)

	case Fold:
		p.Folded = true
		rec.Description = fmt.Sprintf("%s folds", p.Name)
	}

	return rec
}

// reopen moves the closing seat to the live seat before the aggressor so
// action has to travel all the way around again
func (r *BettingRound) reopen() {
	r.closingSeat = r.prevLive(r.seat)
	r.raises++
}

func (r *BettingRound) finish(outcome RoundOutcome) RoundResult {
	r.done = true

	contributed := make([]int, len(r.players))
	for i, p := range r.players {
		contributed[i] = p.Contributed
	}

	r.logger.Debug("Betting round complete", "outcome", outcome, "contributed", contributed)
	return RoundResult{
		Outcome:     outcome,
		Contributed: contributed,
		Raises:      r.raises,
		Actions:     slices.Clone(r.actions),
	}
}

func (r *BettingRound) view(seat int) TableView {
	pot := r.cfg.Pot
	for _, p := range r.players {
		pot += p.Contributed
	}

	v := newTableView(r.players, seat, false)
	v.HandNumber = r.cfg.HandNumber
	v.Street = r.cfg.Street
	v.Button = r.cfg.Button
	v.SmallBlindSeat = r.cfg.SmallBlindSeat
	v.BigBlindSeat = r.cfg.BigBlindSeat
	v.Community = slices.Clone(r.cfg.Community)
	v.Pot = pot
	v.CurrentBet = r.currentBet
	v.ToCall = r.currentBet - r.players[seat].Contributed
	v.Raises = r.raises
	v.RaiseCap = r.cfg.RaiseCap
	return v
}

func (r *BettingRound) liveCount() int {
	n := 0
	for _, p := range r.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

func (r *BettingRound) nextLive(seat int) int {
	return nextLiveSeat(r.players, seat)
}

func (r *BettingRound) prevLive(seat int) int {
	n := len(r.players)
	for i := 1; i < n; i++ {
		idx := (seat - i + n) % n
		if !r.players[idx].Folded {
			return idx
		}
	}
	return seat
}

// nextLiveSeat returns the first non-folded seat after seat in seating
// order, or seat itself if nobody else is live
func nextLiveSeat(players []*Player, seat int) int {
	n := len(players)
	for i := 1; i < n; i++ {
		idx := (seat + i) % n
		if !players[idx].Folded {
			return idx
		}
	}
	return seat
}
