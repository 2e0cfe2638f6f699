// Package config loads match settings from an HCL file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"

	"github.com/pokerized/holdem/internal/game"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "POKERIZED"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config represents the complete configuration
type Config struct {
	Match   *MatchSettings   `hcl:"match,block"`
	Seats   []SeatConfig     `hcl:"seat,block"`
	History *HistorySettings `hcl:"history,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// MatchSettings contains table level settings
type MatchSettings struct {
	SmallBlind  int   `hcl:"small_blind,optional"`
	RaiseCap    int   `hcl:"raise_cap,optional"`
	Hands       int   `hcl:"hands,optional"`
	Seed        int64 `hcl:"seed,optional"`
	MaxAttempts int   `hcl:"max_attempts,optional"`
}

// SeatConfig defines one seat in seating order
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Agent string `hcl:"agent,optional"`
}

// HistorySettings controls transcript export. An empty directory disables
// it.
type HistorySettings struct {
	Directory string `hcl:"directory,optional"`
}

// LogSettings controls logging. An empty file logs to stderr.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// envOverrides is read from POKERIZED_* variables; zero values leave the
// file settings alone
type envOverrides struct {
	Seed       int64  `envconfig:"seed"`
	Hands      int    `envconfig:"hands"`
	LogLevel   string `envconfig:"log_level"`
	HistoryDir string `envconfig:"history_dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Match: &MatchSettings{
			SmallBlind:  1,
			RaiseCap:    game.DefaultRaiseCap,
			Hands:       10,
			MaxAttempts: game.DefaultMaxAttempts,
		},
		Seats: []SeatConfig{
			{Name: "random", Agent: game.KindRandom},
			{Name: "station", Agent: game.KindCalling},
			{Name: "maniac", Agent: game.KindAggressive},
		},
		History: &HistorySettings{},
		Log:     &LogSettings{Level: "info"},
	}
}

// Load reads an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes HCL source; filename is only used in diagnostics
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Match == nil {
		c.Match = def.Match
	}
	if c.Match.SmallBlind == 0 {
		c.Match.SmallBlind = def.Match.SmallBlind
	}
	if c.Match.RaiseCap == 0 {
		c.Match.RaiseCap = def.Match.RaiseCap
	}
	if c.Match.Hands == 0 {
		c.Match.Hands = def.Match.Hands
	}
	if c.Match.MaxAttempts == 0 {
		c.Match.MaxAttempts = def.Match.MaxAttempts
	}

	if len(c.Seats) == 0 {
		c.Seats = def.Seats
	}
	for i := range c.Seats {
		if c.Seats[i].Agent == "" {
			c.Seats[i].Agent = game.KindRandom
		}
	}

	if c.History == nil {
		c.History = def.History
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// ApplyEnv overrides settings from POKERIZED_SEED, POKERIZED_HANDS,
// POKERIZED_LOG_LEVEL and POKERIZED_HISTORY_DIR
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	c.applyDefaults()

	if env.Seed != 0 {
		c.Match.Seed = env.Seed
	}
	if env.Hands != 0 {
		c.Match.Hands = env.Hands
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.HistoryDir != "" {
		c.History.Directory = env.HistoryDir
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Match == nil || c.History == nil || c.Log == nil {
		return fmt.Errorf("%w: missing settings blocks", ErrInvalid)
	}
	if c.Match.SmallBlind <= 0 {
		return fmt.Errorf("%w: small_blind must be positive, got %d", ErrInvalid, c.Match.SmallBlind)
	}
	if c.Match.RaiseCap <= 0 {
		return fmt.Errorf("%w: raise_cap must be positive, got %d", ErrInvalid, c.Match.RaiseCap)
	}
	if c.Match.Hands <= 0 {
		return fmt.Errorf("%w: hands must be positive, got %d", ErrInvalid, c.Match.Hands)
	}
	if c.Match.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalid, c.Match.MaxAttempts)
	}

	if len(c.Seats) < game.MinSeats || len(c.Seats) > game.MaxSeats {
		return fmt.Errorf("%w: need %d to %d seats, got %d", ErrInvalid, game.MinSeats, game.MaxSeats, len(c.Seats))
	}
	names := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Name == "" {
			return fmt.Errorf("%w: seat without a name", ErrInvalid)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate seat %q", ErrInvalid, s.Name)
		}
		names[s.Name] = true
		if !slices.Contains(game.AgentKinds, s.Agent) {
			return fmt.Errorf("%w: seat %q has unknown agent %q", ErrInvalid, s.Name, s.Agent)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

// HumanSeats returns the names of seats played from the terminal
func (c *Config) HumanSeats() []string {
	var humans []string
	for _, s := range c.Seats {
		if s.Agent == game.KindHuman {
			humans = append(humans, s.Name)
		}
	}
	return humans
}
