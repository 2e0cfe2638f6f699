// Package game implements the table side of a fixed-limit Texas Hold'em
// engine.
//
// The main type is Match, which seats three to ten players at a fixed table
// and plays one hand at a time. Each street is driven by a BettingRound that
// asks the seat holding the action for a decision through the Agent
// interface. Hands that reach the river are settled with
// evaluator.DecideWinners.
//
// # Basic Usage
//
//	players := []*game.Player{
//	    game.NewPlayer("alice", game.CallingAgent{}),
//	    game.NewPlayer("bob", game.NewRandomAgent(rng)),
//	    game.NewPlayer("carol", game.AggressiveAgent{}),
//	}
//	m, err := game.NewMatch(players, game.WithRNG(rng), game.WithBlinds(1))
//	res, err := m.PlayHand(ctx)
//	err = m.ResetForNewHand()
//
// # Deterministic Testing
//
// Pass a seeded source with WithRNG and a quartz mock with WithClock; the
// same seed and the same agent answers replay the same hands.
//
// # Betting
//
// Bets and raises are always one big blind. A street allows at most
// RaiseCap of them, after which only checks, calls and folds remain.
// Agents that answer outside the legal set are asked again up to
// MaxAttempts times before the hand fails with ErrIllegalAction.
package game
