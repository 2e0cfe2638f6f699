package main

import (
	"fmt"
	"time"

	"github.com/pokerized/holdem/internal/config"
	"github.com/pokerized/holdem/internal/game"
	"github.com/pokerized/holdem/internal/simulator"
	"github.com/pokerized/holdem/internal/transcript"
)

// SimulateCmd runs automated matches in parallel
type SimulateCmd struct {
	Matches    int           `short:"m" help:"Number of independent matches" default:"100"`
	Hands      int           `short:"n" help:"Hands per match; overrides the config file"`
	Parallel   int           `short:"j" help:"Matches played concurrently (0 = one per CPU)"`
	Seed       int64         `help:"Base seed; every match derives its own (0 = random)"`
	Timeout    time.Duration `help:"Give up on a match after this long (0 = no limit)" default:"30s"`
	HistoryDir string        `help:"Directory for TOML hand transcripts; overrides the config file" type:"path"`
}

func (cmd *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(cmd.apply)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, "SIM")
	if err != nil {
		return err
	}
	defer closeLog()

	var writer game.HistoryWriter = transcript.NopWriter{}
	if dir := cfg.History.Directory; dir != "" {
		writer = transcript.NewFileWriter(dir)
	}

	seats := make([]simulator.Seat, len(cfg.Seats))
	for i, s := range cfg.Seats {
		seats[i] = simulator.Seat{Name: s.Name, Agent: s.Agent}
	}

	seed := cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting simulation", "matches", cmd.Matches, "hands", cfg.Match.Hands, "seed", seed)

	ctx, cancel := signalContext()
	defer cancel()

	report, err := simulator.New(simulator.Config{
		Matches:       cmd.Matches,
		HandsPerMatch: cfg.Match.Hands,
		Seats:         seats,
		SmallBlind:    cfg.Match.SmallBlind,
		RaiseCap:      cfg.Match.RaiseCap,
		MaxAttempts:   cfg.Match.MaxAttempts,
		Seed:          seed,
		Parallelism:   cmd.Parallel,
		Timeout:       cmd.Timeout,
		Logger:        logger,
		Writer:        writer,
	}).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(g.renderer().RenderReport(report))
	return nil
}

func (cmd *SimulateCmd) apply(cfg *config.Config) {
	if cmd.Hands > 0 {
		cfg.Match.Hands = cmd.Hands
	}
	if cmd.Seed != 0 {
		cfg.Match.Seed = cmd.Seed
	}
	if cmd.HistoryDir != "" {
		cfg.History.Directory = cmd.HistoryDir
	}
}
