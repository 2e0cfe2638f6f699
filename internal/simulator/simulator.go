// Package simulator plays many independent matches between automated agents
// and aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/pokerized/holdem/internal/game"
	"github.com/pokerized/holdem/internal/randutil"
)

// ErrHumanSeat is returned when a seat would need terminal input
var ErrHumanSeat = errors.New("simulations cannot seat human agents")

// Seat is one automated seat
type Seat struct {
	Name  string
	Agent string // one of game.AgentKinds, except human
}

// Config holds configuration for running simulations
type Config struct {
	Matches       int
	HandsPerMatch int
	Seats         []Seat
	SmallBlind    int
	RaiseCap      int
	MaxAttempts   int
	Seed          int64
	// Parallelism bounds concurrent matches; zero uses GOMAXPROCS
	Parallelism int
	// Timeout bounds each match; zero means no limit
	Timeout time.Duration
	Logger  *log.Logger
	Clock   quartz.Clock
	// Writer receives every finished hand and must be safe for concurrent
	// use
	Writer game.HistoryWriter
}

// Simulator runs matches in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Parallelism <= 0 {
		config.Parallelism = runtime.GOMAXPROCS(0)
	}
	if config.SmallBlind <= 0 {
		config.SmallBlind = 1
	}
	if config.RaiseCap <= 0 {
		config.RaiseCap = game.DefaultRaiseCap
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = game.DefaultMaxAttempts
	}
	if config.Writer == nil {
		config.Writer = game.NopHistoryWriter{}
	}
	return &Simulator{config: config}
}

// Run plays every match and returns the aggregated report. The report only
// depends on the seed, not on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if cfg.Matches <= 0 || cfg.HandsPerMatch <= 0 {
		return nil, fmt.Errorf("need positive matches and hands, got %d and %d", cfg.Matches, cfg.HandsPerMatch)
	}
	if n := len(cfg.Seats); n < game.MinSeats || n > game.MaxSeats {
		return nil, fmt.Errorf("need %d to %d seats, got %d", game.MinSeats, game.MaxSeats, n)
	}
	for _, seat := range cfg.Seats {
		if seat.Agent == game.KindHuman {
			return nil, fmt.Errorf("%w: %s", ErrHumanSeat, seat.Name)
		}
	}

	start := cfg.Clock.Now()
	report := newReport(cfg.Seed)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i := 0; i < cfg.Matches; i++ {
		seed := randutil.Derive(cfg.Seed, i)
		g.Go(func() error {
			results, err := s.playMatch(ctx, i, seed)
			if err != nil {
				return fmt.Errorf("match %d (seed %d): %w", i+1, seed, err)
			}

			mu.Lock()
			defer mu.Unlock()
			report.Matches++
			for _, res := range results {
				report.add(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Elapsed = cfg.Clock.Now().Sub(start)
	cfg.Logger.Info("Simulation complete",
		"matches", report.Matches,
		"hands", report.Hands,
		"elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) playMatch(ctx context.Context, index int, seed int64) ([]*game.HandResult, error) {
	cfg := s.config
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	players := make([]*game.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		agentRNG := randutil.New(randutil.Derive(seed, i+1))
		agent, err := game.NewAgent(seat.Agent, agentRNG, nil, nil)
		if err != nil {
			return nil, err
		}
		players[i] = game.NewPlayer(seat.Name, agent)
	}

	m, err := game.NewMatch(players,
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(cfg.Logger.With("match", index+1)),
		game.WithClock(cfg.Clock),
		game.WithBlinds(cfg.SmallBlind),
		game.WithRaiseCap(cfg.RaiseCap),
		game.WithMaxAttempts(cfg.MaxAttempts),
		game.WithButton(index%len(players)),
		game.WithHistoryWriter(cfg.Writer),
	)
	if err != nil {
		return nil, err
	}
	return m.Run(ctx, cfg.HandsPerMatch)
}
