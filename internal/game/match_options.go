package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// MatchOption configures a Match during creation.
type MatchOption func(*matchConfig)

type matchConfig struct {
	rng         *rand.Rand
	logger      *log.Logger
	clock       quartz.Clock
	smallBlind  int
	raiseCap    int
	maxAttempts int
	button      int
	writer      HistoryWriter
}

func defaultMatchConfig() matchConfig {
	return matchConfig{
		smallBlind:  1,
		raiseCap:    DefaultRaiseCap,
		maxAttempts: DefaultMaxAttempts,
		writer:      NopHistoryWriter{},
	}
}

// WithRNG sets the source used to shuffle every deck of the match.
// Passing a nil rng panics.
func WithRNG(rng *rand.Rand) MatchOption {
	if rng == nil {
		panic("rng must not be nil")
	}
	return func(c *matchConfig) { c.rng = rng }
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger *log.Logger) MatchOption {
	return func(c *matchConfig) { c.logger = logger }
}

// WithClock sets the clock used for history timestamps
func WithClock(clock quartz.Clock) MatchOption {
	return func(c *matchConfig) { c.clock = clock }
}

// WithBlinds sets the small blind; the big blind is always twice that
func WithBlinds(smallBlind int) MatchOption {
	return func(c *matchConfig) { c.smallBlind = smallBlind }
}

// WithRaiseCap sets how many bets and raises are allowed per street
func WithRaiseCap(raiseCap int) MatchOption {
	return func(c *matchConfig) { c.raiseCap = raiseCap }
}

// WithButton sets the first hand's button seat
func WithButton(seat int) MatchOption {
	return func(c *matchConfig) { c.button = seat }
}

// WithMaxAttempts sets how often a seat is asked before an illegal answer
// fails the hand
func WithMaxAttempts(n int) MatchOption {
	return func(c *matchConfig) { c.maxAttempts = n }
}

// WithHistoryWriter receives every hand finished through Run
func WithHistoryWriter(w HistoryWriter) MatchOption {
	return func(c *matchConfig) { c.writer = w }
}
