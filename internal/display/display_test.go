package display

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/evaluator"
	"github.com/pokerized/holdem/internal/game"
	"github.com/pokerized/holdem/internal/randutil"
	"github.com/pokerized/holdem/internal/simulator"
)

func plain() *Renderer {
	return NewRenderer(&bytes.Buffer{}, true)
}

func TestRenderCards(t *testing.T) {
	t.Parallel()
	r := plain()
	assert.Equal(t, "A♠ 10♥", r.RenderCards(deck.MustParseCards("As Th")))
	assert.Equal(t, "-", r.RenderCards(nil))
}

func TestRenderHand(t *testing.T) {
	t.Parallel()
	h := evaluator.MustHand(deck.MustParseCards("2c3d4h5sAc"))
	out := plain().RenderHand(h)
	assert.Contains(t, out, "Straight")
	assert.True(t, strings.HasPrefix(out, "2♣"), out)
}

func playHand(t *testing.T, agents ...game.Agent) *game.HandResult {
	t.Helper()
	names := []string{"alice", "bob", "carol"}
	players := make([]*game.Player, len(agents))
	for i, a := range agents {
		players[i] = game.NewPlayer(names[i], a)
	}
	m, err := game.NewMatch(players, game.WithRNG(randutil.New(3)), game.WithClock(quartz.NewMock(t)))
	require.NoError(t, err)
	res, err := m.PlayHand(context.Background())
	require.NoError(t, err)
	return res
}

func TestRenderHistory(t *testing.T) {
	t.Parallel()
	res := playHand(t, game.CallingAgent{}, game.CallingAgent{}, game.CallingAgent{})
	out := plain().RenderHistory(res.History)

	for _, want := range []string{
		"Hand #1",
		"Seat 1: alice",
		"[D]",
		"[SB]",
		"[BB]",
		"*** PREFLOP ***",
		"*** RIVER ***",
		"bob posts small blind 1",
		"*** SHOWDOWN ***",
		"pot 6",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderResult(t *testing.T) {
	t.Parallel()
	fold := game.AgentFunc(func(_ context.Context, _ game.TableView, legal []game.Action) (game.Action, error) {
		return legal[len(legal)-1], nil
	})
	res := playHand(t, game.AggressiveAgent{}, fold, fold)

	assert.Equal(t, "#1 alice wins pot 7 uncontested", plain().RenderResult(res))
	assert.NotContains(t, plain().RenderHistory(res.History), "SHOWDOWN")
}

func TestRenderShowdown(t *testing.T) {
	t.Parallel()
	results, winners, err := evaluator.DecideWinners([]evaluator.Contender{
		{Name: "alice", Hole: [2]deck.Card{deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.Ace, deck.Hearts)}},
		{Name: "bob", Hole: [2]deck.Card{deck.NewCard(deck.Two, deck.Clubs), deck.NewCard(deck.Seven, deck.Diamonds)}},
	}, deck.MustParseCards("AcKd9h5s3c"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(plain().RenderShowdown(results, winners)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Three of a Kind")
	assert.Contains(t, lines[0], "WIN")
	assert.NotContains(t, lines[1], "WIN")
}

func TestRenderReport(t *testing.T) {
	t.Parallel()
	rep, err := simulator.New(simulator.Config{
		Matches:       2,
		HandsPerMatch: 5,
		Seats: []simulator.Seat{
			{Name: "a", Agent: game.KindCalling},
			{Name: "b", Agent: game.KindCalling},
			{Name: "c", Agent: game.KindCalling},
		},
		Seed:  9,
		Clock: quartz.NewMock(t),
	}).Run(context.Background())
	require.NoError(t, err)

	out := plain().RenderReport(rep)
	assert.Contains(t, out, "hands 10")
	assert.Contains(t, out, "showdowns 10")
	assert.Contains(t, out, "Winning hands at showdown")
}
