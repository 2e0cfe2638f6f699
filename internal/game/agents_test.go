package game

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerized/holdem/internal/randutil"
)

func TestRandomAgentPicksLegalActions(t *testing.T) {
	t.Parallel()
	agent := NewRandomAgent(randutil.New(5))
	legal := []Action{Call, Raise, Fold}

	seen := map[Action]int{}
	for i := 0; i < 600; i++ {
		a, err := agent.Decide(context.Background(), TableView{}, legal)
		require.NoError(t, err)
		require.True(t, slices.Contains(legal, a), "picked %s", a)
		seen[a]++
	}
	for _, a := range legal {
		assert.Greater(t, seen[a], 100, "%s picked too rarely", a)
	}

	assert.Panics(t, func() { NewRandomAgent(nil) })
}

func TestReferenceAgents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		agent Agent
		legal []Action
		want  Action
	}{
		{"calling checks", CallingAgent{}, []Action{Check, Bet}, Check},
		{"calling calls", CallingAgent{}, []Action{Call, Raise, Fold}, Call},
		{"aggressive raises", AggressiveAgent{}, []Action{Call, Raise, Fold}, Raise},
		{"aggressive bets", AggressiveAgent{}, []Action{Check, Bet}, Bet},
		{"aggressive capped", AggressiveAgent{}, []Action{Call, Fold}, Call},
		{"aggressive capped check", AggressiveAgent{}, []Action{Check}, Check},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.agent.Decide(context.Background(), TableView{}, tt.legal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAgent(t *testing.T) {
	t.Parallel()
	for _, kind := range AgentKinds {
		a, err := NewAgent(kind, randutil.New(1), strings.NewReader(""), io.Discard)
		require.NoError(t, err, kind)
		assert.NotNil(t, a)
	}
	_, err := NewAgent("shark", randutil.New(1), nil, nil)
	assert.Error(t, err)
}

func TestHumanAgent(t *testing.T) {
	t.Parallel()
	legal := []Action{Call, Raise, Fold}
	view := TableView{Seat: 0, Players: []SeatView{{Name: "alice"}}, ToCall: 2}

	t.Run("reasks until legal", func(t *testing.T) {
		var out bytes.Buffer
		agent := NewHumanAgent(bufio.NewScanner(strings.NewReader("x\ncheck\nr\n")), &out)

		a, err := agent.Decide(context.Background(), view, legal)
		require.NoError(t, err)
		assert.Equal(t, Raise, a)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid action"))
		assert.Contains(t, out.String(), "call/raise/fold")
	})

	t.Run("full names", func(t *testing.T) {
		agent := NewHumanAgent(bufio.NewScanner(strings.NewReader("  FOLD \n")), nil)
		a, err := agent.Decide(context.Background(), view, legal)
		require.NoError(t, err)
		assert.Equal(t, Fold, a)
	})

	t.Run("eof", func(t *testing.T) {
		agent := NewHumanAgent(bufio.NewScanner(strings.NewReader("")), nil)
		_, err := agent.Decide(context.Background(), view, legal)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		agent := NewHumanAgent(bufio.NewScanner(strings.NewReader("call\n")), nil)
		_, err := agent.Decide(ctx, view, legal)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancel interrupts a pending read", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		agent := NewHumanAgent(bufio.NewScanner(pr), nil)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := agent.Decide(ctx, view, legal)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		go func() { _, _ = pw.Write([]byte("call\n")) }()
		a, err := agent.Decide(context.Background(), view, legal)
		require.NoError(t, err)
		assert.Equal(t, Call, a)
	})
}
