package simulator

import (
	"sort"
	"time"

	"github.com/pokerized/holdem/internal/evaluator"
	"github.com/pokerized/holdem/internal/game"
)

// Report aggregates simulated hands
type Report struct {
	Seed      int64
	Matches   int
	Hands     int
	Folds     int // hands won uncontested
	Showdowns int
	SplitPots int
	TotalPot  int

	// Wins counts hands won per player; split pots count for every winner
	Wins map[string]int
	// Categories counts the winning category of every showdown
	Categories map[evaluator.Category]int
	Elapsed    time.Duration
}

func newReport(seed int64) *Report {
	return &Report{
		Seed:       seed,
		Wins:       make(map[string]int),
		Categories: make(map[evaluator.Category]int),
	}
}

func (r *Report) add(res *game.HandResult) {
	r.Hands++
	r.TotalPot += res.Pot
	for _, w := range res.Winners {
		r.Wins[w]++
	}
	if len(res.Winners) > 1 {
		r.SplitPots++
	}

	switch res.Outcome {
	case game.OutcomeFold:
		r.Folds++
	case game.OutcomeShowdown:
		r.Showdowns++
		r.Categories[res.WinningCategory]++
	}
}

// AveragePot returns the mean pot per hand
func (r *Report) AveragePot() float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.TotalPot) / float64(r.Hands)
}

// CategoryShare returns the fraction of showdowns won with c
func (r *Report) CategoryShare(c evaluator.Category) float64 {
	if r.Showdowns == 0 {
		return 0
	}
	return float64(r.Categories[c]) / float64(r.Showdowns)
}

// Players returns player names ordered by wins, most first
func (r *Report) Players() []string {
	names := make([]string, 0, len(r.Wins))
	for name := range r.Wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.Wins[names[i]] != r.Wins[names[j]] {
			return r.Wins[names[i]] > r.Wins[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
