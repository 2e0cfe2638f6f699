package game

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// ScriptedAgent returns pre-programmed actions in order and records what it
// was offered
type ScriptedAgent struct {
	mu      sync.Mutex
	actions []Action
	next    int
	offered [][]Action
	views   []TableView
}

func NewScriptedAgent(actions ...Action) *ScriptedAgent {
	return &ScriptedAgent{actions: actions}
}

func (a *ScriptedAgent) Decide(_ context.Context, view TableView, legal []Action) (Action, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.offered = append(a.offered, legal)
	a.views = append(a.views, view)
	if a.next >= len(a.actions) {
		return 0, errors.New("script exhausted")
	}
	action := a.actions[a.next]
	a.next++
	return action, nil
}

func (a *ScriptedAgent) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.offered)
}

func (a *ScriptedAgent) Offered(i int) []Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offered[i]
}

// failIfAsked fails the test when a seat that should be skipped is asked
func failIfAsked(t *testing.T) Agent {
	return AgentFunc(func(context.Context, TableView, []Action) (Action, error) {
		t.Errorf("agent should not have been asked for a decision")
		return 0, errors.New("unexpected decision request")
	})
}

// FoldingAgent folds whenever it owes chips and checks otherwise
var FoldingAgent = AgentFunc(func(_ context.Context, _ TableView, legal []Action) (Action, error) {
	for _, a := range legal {
		if a == Fold {
			return Fold, nil
		}
	}
	return Check, nil
})

func seatPlayers(agents ...Agent) []*Player {
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi", "ivan", "judy", "mallory"}
	players := make([]*Player, len(agents))
	for i, a := range agents {
		players[i] = NewPlayer(names[i], a)
		players[i].Seat = i
	}
	return players
}
