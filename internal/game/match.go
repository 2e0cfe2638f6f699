package game

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
	"github.com/pokerized/holdem/internal/randutil"
)

// Seat limits for a match. Three seats keep button and blinds distinct.
const (
	MinSeats = 3
	MaxSeats = 10
)

// MatchState is the lifecycle of the current hand
type MatchState int

const (
	Ready MatchState = iota
	InProgress
	Complete
)

func (s MatchState) String() string {
	switch s {
	case Ready:
		return "ready"
	case InProgress:
		return "in-progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Match plays consecutive hands at a fixed table. The button and both
// blinds move one seat to the left between hands. A Match is not safe for
// concurrent use.
type Match struct {
	players []*Player
	cfg     matchConfig
	logger  *log.Logger

	button         int
	smallBlindSeat int
	bigBlindSeat   int

	state      MatchState
	handNumber int
	pot        int
	community  []deck.Card
	history    *HandHistory
	outcome    string
}

// NewMatch seats players in the given order
func NewMatch(players []*Player, opts ...MatchOption) (*Match, error) {
	if len(players) < MinSeats || len(players) > MaxSeats {
		return nil, fmt.Errorf("match needs %d to %d players, got %d", MinSeats, MaxSeats, len(players))
	}

	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.smallBlind <= 0 {
		return nil, fmt.Errorf("small blind must be positive, got %d", cfg.smallBlind)
	}
	if cfg.raiseCap <= 0 {
		return nil, fmt.Errorf("raise cap must be positive, got %d", cfg.raiseCap)
	}
	if cfg.maxAttempts <= 0 {
		return nil, fmt.Errorf("max attempts must be positive, got %d", cfg.maxAttempts)
	}
	if cfg.button < 0 || cfg.button >= len(players) {
		return nil, fmt.Errorf("button seat %d out of range", cfg.button)
	}
	if cfg.rng == nil {
		rng, seed := randutil.FromConfig(0)
		cfg.rng = rng
		if cfg.logger != nil {
			cfg.logger.Debug("No RNG supplied, seeding from time", "seed", seed)
		}
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.writer == nil {
		cfg.writer = NopHistoryWriter{}
	}

	names := make(map[string]bool, len(players))
	for i, p := range players {
		if p == nil || p.Agent == nil {
			return nil, fmt.Errorf("seat %d has no agent", i)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("seat %d has no name", i)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("duplicate player name %q", p.Name)
		}
		names[p.Name] = true
		p.Seat = i
		p.resetForNewHand()
	}

	n := len(players)
	return &Match{
		players:        players,
		cfg:            cfg,
		logger:         cfg.logger,
		button:         cfg.button,
		smallBlindSeat: (cfg.button + 1) % n,
		bigBlindSeat:   (cfg.button + 2) % n,
		state:          Ready,
	}, nil
}

// State returns the lifecycle state of the current hand.
func (m *Match) State() MatchState { return m.state }

// HandNumber returns the 1-based number of the current or last hand.
func (m *Match) HandNumber() int { return m.handNumber }

// Button returns the dealer seat.
func (m *Match) Button() int { return m.button }

// SmallBlindSeat returns the seat posting the small blind.
func (m *Match) SmallBlindSeat() int { return m.smallBlindSeat }

// BigBlindSeat returns the seat posting the big blind.
func (m *Match) BigBlindSeat() int { return m.bigBlindSeat }

// Pot returns the chips collected from finished streets.
func (m *Match) Pot() int { return m.pot }

// History returns the log of the current hand, nil before the first deal.
func (m *Match) History() *HandHistory { return m.history }

// Players returns the seated players in seat order.
func (m *Match) Players() []*Player { return m.players }

// SmallBlind returns the small blind amount.
func (m *Match) SmallBlind() int { return m.cfg.smallBlind }

// BigBlind returns the big blind amount, twice the small blind.
func (m *Match) BigBlind() int { return 2 * m.cfg.smallBlind }

// Community returns a copy of the board dealt so far.
func (m *Match) Community() []deck.Card { return slices.Clone(m.community) }

// Snapshot returns what forSeat is allowed to see. Hole cards of every
// contender are face up once a hand ended at showdown.
func (m *Match) Snapshot(forSeat int) TableView {
	reveal := m.state == Complete && m.outcome == OutcomeShowdown
	v := newTableView(m.players, forSeat, reveal)
	if reveal {
		for i, p := range m.players {
			if p.Folded {
				v.Players[i].Hole = nil
				if i == forSeat {
					v.Players[i].Hole = p.HoleCards()
				}
			}
		}
	}
	v.HandNumber = m.handNumber
	v.Button = m.button
	v.SmallBlindSeat = m.smallBlindSeat
	v.BigBlindSeat = m.bigBlindSeat
	v.Community = slices.Clone(m.community)
	v.Pot = m.pot
	v.RaiseCap = m.cfg.raiseCap
	v.Street = streetFor(len(m.community))
	return v
}

// PlayHand plays one full hand. The match must be Ready; afterwards it is
// Complete even when an error is returned.
func (m *Match) PlayHand(ctx context.Context) (*HandResult, error) {
	if m.state != Ready {
		return nil, fmt.Errorf("%w: state is %s", ErrHandNotReady, m.state)
	}
	m.state = InProgress
	m.handNumber++

	result, err := m.playHand(ctx)
	m.state = Complete
	m.history.EndedAt = m.cfg.clock.Now()
	if err != nil {
		m.logger.Error("Hand aborted", "hand", m.handNumber, "error", err)
		return nil, fmt.Errorf("hand %d: %w", m.handNumber, err)
	}
	return result, nil
}

func (m *Match) playHand(ctx context.Context) (*HandResult, error) {
	m.history = m.newHistory()
	logger := m.logger.With("hand", m.handNumber)
	logger.Debug("Starting hand",
		"id", m.history.HandID,
		"button", m.button,
		"sb", m.smallBlindSeat,
		"bb", m.bigBlindSeat)

	d := deck.NewDeck(m.cfg.rng)
	if err := m.dealHoleCards(d); err != nil {
		return nil, err
	}
	for i, p := range m.players {
		m.history.Seats[i].Hole = p.HoleCards()
	}

	for _, street := range Streets {
		revealed, err := m.dealStreet(d, street)
		if err != nil {
			return nil, err
		}

		var events []string
		if street == Preflop {
			events = append(events,
				fmt.Sprintf("%s posts small blind %d", m.players[m.smallBlindSeat].Name, m.SmallBlind()),
				fmt.Sprintf("%s posts big blind %d", m.players[m.bigBlindSeat].Name, m.BigBlind()))
		}

		round, err := NewBettingRound(m.players, RoundConfig{
			Street:         street,
			HandNumber:     m.handNumber,
			StartSeat:      m.firstToAct(street),
			Button:         m.button,
			SmallBlindSeat: m.smallBlindSeat,
			BigBlindSeat:   m.bigBlindSeat,
			SmallBlind:     m.SmallBlind(),
			BigBlind:       m.BigBlind(),
			RaiseCap:       m.cfg.raiseCap,
			MaxAttempts:    m.cfg.maxAttempts,
			Community:      m.community,
			Pot:            m.pot,
		}, logger)
		if err != nil {
			return nil, err
		}

		res, err := round.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", street, err)
		}

		m.collect(res)
		for _, a := range res.Actions {
			events = append(events, a.Description)
		}
		m.history.addStreet(street.String(), revealed, events, m.pot)
		logger.Debug("Street complete", "street", street, "pot", m.pot, "outcome", res.Outcome)

		if res.Outcome == AllButOneFolded {
			return m.finish(logger, OutcomeFold, []int{m.liveSeats()[0]}, nil, evaluator.HighCard), nil
		}
	}

	return m.showdown(logger)
}

func (m *Match) showdown(logger *log.Logger) (*HandResult, error) {
	live := m.liveSeats()
	contenders := make([]evaluator.Contender, len(live))
	for i, seat := range live {
		p := m.players[seat]
		contenders[i] = evaluator.Contender{Name: p.Name, Hole: p.Hole}
	}

	results, winners, err := evaluator.DecideWinners(contenders, m.community)
	if err != nil {
		return nil, fmt.Errorf("showdown: %w", err)
	}

	records := make([]ShowdownRecord, len(results))
	for i, r := range results {
		records[i] = ShowdownRecord{
			Seat:     live[i],
			Name:     r.Name,
			Hole:     slices.Clone(r.Hole[:]),
			Best:     r.Best.Cards(),
			Category: r.Best.Category(),
		}
	}

	seats := make([]int, len(winners))
	for i, w := range winners {
		seats[i] = live[w]
	}
	return m.finish(logger, OutcomeShowdown, seats, records, results[winners[0]].Best.Category()), nil
}

func (m *Match) finish(logger *log.Logger, outcome string, winnerSeats []int, records []ShowdownRecord, category evaluator.Category) *HandResult {
	names := make([]string, len(winnerSeats))
	for i, seat := range winnerSeats {
		p := m.players[seat]
		p.HandsWon++
		names[i] = p.Name
	}

	m.outcome = outcome
	m.history.Community = slices.Clone(m.community)
	m.history.Showdown = records
	m.history.Winners = names
	m.history.Outcome = outcome
	m.history.Pot = m.pot

	logger.Info("Hand complete", "outcome", outcome, "winners", names, "pot", m.pot)

	res := &HandResult{
		HandNumber: m.handNumber,
		HandID:     m.history.HandID,
		Winners:    names,
		Outcome:    outcome,
		Pot:        m.pot,
		Showdown:   records,
		History:    m.history,
	}
	if outcome == OutcomeShowdown {
		res.WinningCategory = category
	}
	return res
}

// ResetForNewHand clears the finished hand and moves the button, small
// blind and big blind one seat to the left
func (m *Match) ResetForNewHand() error {
	if m.state != Complete {
		return fmt.Errorf("%w: state is %s", ErrHandInProgress, m.state)
	}

	n := len(m.players)
	m.button = (m.button + 1) % n
	m.smallBlindSeat = (m.smallBlindSeat + 1) % n
	m.bigBlindSeat = (m.bigBlindSeat + 1) % n

	m.pot = 0
	m.community = nil
	m.history = nil
	m.outcome = ""
	for _, p := range m.players {
		p.resetForNewHand()
	}
	m.state = Ready
	return nil
}

// Run plays hands one after another, resetting in between, and hands every
// finished history to the configured writer
func (m *Match) Run(ctx context.Context, hands int) ([]*HandResult, error) {
	results := make([]*HandResult, 0, hands)
	for i := 0; i < hands; i++ {
		if m.state == Complete {
			if err := m.ResetForNewHand(); err != nil {
				return results, err
			}
		}

		res, err := m.PlayHand(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		if err := m.cfg.writer.WriteHand(res.History); err != nil {
			return results, fmt.Errorf("write hand %d: %w", res.HandNumber, err)
		}
	}
	return results, nil
}

func (m *Match) newHistory() *HandHistory {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	seats := make([]SeatRecord, len(m.players))
	for i, p := range m.players {
		seats[i] = SeatRecord{Seat: i, Name: p.Name}
	}

	return &HandHistory{
		HandID:         id.String(),
		HandNumber:     m.handNumber,
		StartedAt:      m.cfg.clock.Now(),
		Seats:          seats,
		Button:         m.button,
		SmallBlindSeat: m.smallBlindSeat,
		BigBlindSeat:   m.bigBlindSeat,
		SmallBlind:     m.SmallBlind(),
		BigBlind:       m.BigBlind(),
	}
}

// dealHoleCards deals one card per seat twice, starting left of the button
func (m *Match) dealHoleCards(d *deck.Deck) error {
	n := len(m.players)
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			p := m.players[(m.button+i)%n]
			c, err := d.Draw()
			if err != nil {
				return fmt.Errorf("deal hole cards: %w", err)
			}
			p.Hole[round] = c
			p.Dealt++
		}
	}
	return nil
}

// dealStreet burns one card and reveals the street's community cards
func (m *Match) dealStreet(d *deck.Deck, street Street) ([]deck.Card, error) {
	count := 0
	switch street {
	case Flop:
		count = 3
	case Turn, River:
		count = 1
	default:
		return nil, nil
	}

	if _, err := d.Draw(); err != nil {
		return nil, fmt.Errorf("burn before %s: %w", street, err)
	}
	cards, err := d.DrawN(count)
	if err != nil {
		return nil, fmt.Errorf("deal %s: %w", street, err)
	}
	m.community = append(m.community, cards...)
	return cards, nil
}

// firstToAct is the seat after the big blind on every street. After the
// flop folded seats are skipped.
func (m *Match) firstToAct(street Street) int {
	if street == Preflop {
		return (m.bigBlindSeat + 1) % len(m.players)
	}
	return nextLiveSeat(m.players, m.bigBlindSeat)
}

func (m *Match) collect(res RoundResult) {
	for i, c := range res.Contributed {
		m.players[i].ChipsCommitted += c
		m.pot += c
	}
}

func (m *Match) liveSeats() []int {
	var seats []int
	for i, p := range m.players {
		if !p.Folded {
			seats = append(seats, i)
		}
	}
	return seats
}

func streetFor(communityCards int) Street {
	switch {
	case communityCards >= 5:
		return River
	case communityCards == 4:
		return Turn
	case communityCards >= 3:
		return Flop
	default:
		return Preflop
	}
}
