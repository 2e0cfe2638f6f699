package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pokerized/holdem/internal/config"
	"github.com/pokerized/holdem/internal/display"
	"github.com/pokerized/holdem/internal/game"
	"github.com/pokerized/holdem/internal/randutil"
	"github.com/pokerized/holdem/internal/transcript"
)

// PlayCmd plays a match at the terminal
type PlayCmd struct {
	Hands      int    `short:"n" help:"Number of hands to play; overrides the config file"`
	Seed       int64  `help:"Deck seed for a reproducible match (0 = random)"`
	Human      string `help:"Seat a human player with this name in front of the configured seats"`
	HistoryDir string `help:"Directory for TOML hand transcripts; overrides the config file" type:"path"`
}

func (cmd *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(cmd.apply)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, "PLAY")
	if err != nil {
		return err
	}
	defer closeLog()

	rng, seed := randutil.FromConfig(cfg.Match.Seed)
	logger.Info("Starting match", "seats", len(cfg.Seats), "hands", cfg.Match.Hands, "seed", seed)

	players, err := buildPlayers(cfg, seed, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	r := g.renderer()
	writers := transcript.MultiWriter{&handPrinter{r: r, w: os.Stdout}}
	if dir := cfg.History.Directory; dir != "" {
		writers = append(writers, transcript.NewFileWriter(dir))
	}

	m, err := game.NewMatch(players,
		game.WithRNG(rng),
		game.WithLogger(logger),
		game.WithBlinds(cfg.Match.SmallBlind),
		game.WithRaiseCap(cfg.Match.RaiseCap),
		game.WithMaxAttempts(cfg.Match.MaxAttempts),
		game.WithHistoryWriter(writers),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Println(r.Title(" ♠ ♥ pokerized ♦ ♣ "))
	results, err := m.Run(ctx, cfg.Match.Hands)
	if errors.Is(err, io.ErrUnexpectedEOF) || ctx.Err() != nil {
		logger.Info("Match interrupted", "played", len(results))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	for _, p := range m.Players() {
		fmt.Printf("%-12s won %d of %d hands, put in %d chips\n", p.Name, p.HandsWon, len(results), p.ChipsCommitted)
	}
	return nil
}

func (cmd *PlayCmd) apply(cfg *config.Config) {
	if cmd.Hands > 0 {
		cfg.Match.Hands = cmd.Hands
	}
	if cmd.Seed != 0 {
		cfg.Match.Seed = cmd.Seed
	}
	if cmd.HistoryDir != "" {
		cfg.History.Directory = cmd.HistoryDir
	}
	if cmd.Human != "" {
		cfg.Seats = append([]config.SeatConfig{{Name: cmd.Human, Agent: game.KindHuman}}, cfg.Seats...)
	}
}

// buildPlayers creates one player per configured seat. Each automated seat
// gets its own stream derived from the match seed; human seats share one
// reader so buffered input is never split between them.
func buildPlayers(cfg *config.Config, seed int64, in io.Reader, out io.Writer) ([]*game.Player, error) {
	human := game.NewHumanAgent(bufio.NewScanner(in), out)

	players := make([]*game.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		if seat.Agent == game.KindHuman {
			players[i] = game.NewPlayer(seat.Name, human)
			continue
		}
		agent, err := game.NewAgent(seat.Agent, randutil.New(randutil.Derive(seed, i+1)), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", seat.Name, err)
		}
		players[i] = game.NewPlayer(seat.Name, agent)
	}
	return players, nil
}

// handPrinter renders every finished hand
type handPrinter struct {
	r *display.Renderer
	w io.Writer
}

func (p *handPrinter) WriteHand(h *game.HandHistory) error {
	_, err := fmt.Fprintln(p.w, "\n"+p.r.RenderHistory(h))
	return err
}
