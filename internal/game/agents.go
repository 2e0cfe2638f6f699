package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
)

// Agent kinds accepted by NewAgent
const (
	KindRandom     = "random"
	KindCalling    = "calling"
	KindAggressive = "aggressive"
	KindHuman      = "human"
)

// AgentKinds lists every kind NewAgent understands
var AgentKinds = []string{KindRandom, KindCalling, KindAggressive, KindHuman}

// RandomAgent picks uniformly among the legal actions
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent. The rng is required so matches
// replay from a seed.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		panic("rng is required for random agent")
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Decide(_ context.Context, _ TableView, legal []Action) (Action, error) {
	if len(legal) == 0 {
		return 0, fmt.Errorf("%w: nothing to choose from", ErrIllegalAction)
	}
	return legal[a.rng.IntN(len(legal))], nil
}

// CallingAgent always checks or calls and never raises
type CallingAgent struct{}

func (CallingAgent) Decide(_ context.Context, _ TableView, legal []Action) (Action, error) {
	for _, want := range []Action{Check, Call} {
		if slices.Contains(legal, want) {
			return want, nil
		}
	}
	return Fold, nil
}

// AggressiveAgent bets or raises whenever it may, otherwise calls or checks
type AggressiveAgent struct{}

func (AggressiveAgent) Decide(_ context.Context, _ TableView, legal []Action) (Action, error) {
	for _, want := range []Action{Raise, Bet, Call, Check} {
		if slices.Contains(legal, want) {
			return want, nil
		}
	}
	return Fold, nil
}

// NewAgent builds an agent by kind. Human agents read from in and prompt on
// out; the other kinds ignore both.
func NewAgent(kind string, rng *rand.Rand, in io.Reader, out io.Writer) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandomAgent(rng), nil
	case KindCalling:
		return CallingAgent{}, nil
	case KindAggressive:
		return AggressiveAgent{}, nil
	case KindHuman:
		return NewHumanAgent(bufio.NewScanner(in), out), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q (want one of %v)", kind, AgentKinds)
}

var (
	_ Agent = (*RandomAgent)(nil)
	_ Agent = CallingAgent{}
	_ Agent = AggressiveAgent{}
	_ Agent = (*HumanAgent)(nil)
)
