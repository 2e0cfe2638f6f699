package evaluator

import (
	"errors"
	"fmt"

	"github.com/pokerized/holdem/internal/deck"
)

// ErrNoContenders is returned when a showdown has nobody left to evaluate
var ErrNoContenders = errors.New("no contenders at showdown")

// Tournament scores every pair of hands round-robin: the comparator's winner
// gains a point, the loser drops one, equal hands score nothing. It returns
// the indices of all hands sharing the top score, ascending.
func Tournament(hands []Hand) []int {
	if len(hands) == 0 {
		return nil
	}

	scores := make([]int, len(hands))
	for i := 0; i < len(hands); i++ {
		for j := i + 1; j < len(hands); j++ {
			switch Compare(hands[i], hands[j]) {
			case Greater:
				scores[i]++
				scores[j]--
			case Less:
				scores[i]--
				scores[j]++
			}
		}
	}

	best := scores[0]
	for _, s := range scores[1:] {
		best = max(best, s)
	}

	var winners []int
	for i, s := range scores {
		if s == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// BestHands returns the strongest five card hands that can be formed from
// five to seven cards. Every subset is classified, only subsets in the top
// category are kept, and ties among them are settled with Tournament, so
// more than one hand may come back.
func BestHands(cards []deck.Card) ([]Hand, error) {
	if len(cards) < HandSize || len(cards) > 7 {
		return nil, fmt.Errorf("%w: best hand needs 5 to 7 cards, got %d", ErrInvalidHandSize, len(cards))
	}

	var candidates []Hand
	top := Category(-1)
	subset := make([]deck.Card, HandSize)

	combinations(len(cards), HandSize, func(idx []int) {
		for i, j := range idx {
			subset[i] = cards[j]
		}
		h := MustHand(subset)

		switch {
		case h.category > top:
			top = h.category
			candidates = append(candidates[:0], h)
		case h.category == top:
			candidates = append(candidates, h)
		}
	})

	winners := Tournament(candidates)
	best := make([]Hand, len(winners))
	for i, w := range winners {
		best[i] = candidates[w]
	}
	return best, nil
}

// Contender is a player still holding cards at showdown
type Contender struct {
	Name string
	Hole [2]deck.Card
}

// Showdown is a contender's evaluated result
type Showdown struct {
	Contender
	Best Hand
	// Ties is how many distinct best hands the contender's cards produced
	Ties int
}

// DecideWinners picks one best hand per contender and runs a Tournament
// across them. It returns every contender's result alongside the indices of
// the winners, who share the pot when more than one is returned.
func DecideWinners(contenders []Contender, community []deck.Card) ([]Showdown, []int, error) {
	if len(contenders) == 0 {
		return nil, nil, ErrNoContenders
	}

	results := make([]Showdown, len(contenders))
	hands := make([]Hand, len(contenders))
	for i, c := range contenders {
		cards := make([]deck.Card, 0, 2+len(community))
		cards = append(cards, c.Hole[:]...)
		cards = append(cards, community...)

		best, err := BestHands(cards)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluate %s: %w", c.Name, err)
		}

		results[i] = Showdown{Contender: c, Best: best[0], Ties: len(best)}
		hands[i] = best[0]
	}

	return results, Tournament(hands), nil
}

// combinations calls fn with every k-element index subset of [0, n) in
// lexicographic order. fn must not retain the slice.
func combinations(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
