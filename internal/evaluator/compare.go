package evaluator

import (
	"slices"

	"github.com/pokerized/holdem/internal/deck"
)

// Ordering is the result of comparing two hands
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the string representation of an ordering
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Reverse returns the ordering seen from the other hand
func (o Ordering) Reverse() Ordering {
	return -o
}

// Compare orders two hands. Categories decide first; equal categories fall
// through to category specific kicker rules. Four of a kind and royal flush
// hands of equal category always compare Equal.
func Compare(a, b Hand) Ordering {
	if a.category != b.category {
		return compareInts(int(a.category), int(b.category))
	}

	switch a.category {
	case HighCard, Flush:
		return compareValues(a.descending(), b.descending())

	case Pair, TwoPair:
		// pairs come back high-first: high pair, then low pair, then kickers
		if o := compareValues(a.ranksWithCount(2), b.ranksWithCount(2)); o != Equal {
			return o
		}
		return compareValues(a.ranksWithCount(1), b.ranksWithCount(1))

	case ThreeOfAKind:
		if o := compareValues(a.ranksWithCount(3), b.ranksWithCount(3)); o != Equal {
			return o
		}
		return compareValues(a.ranksWithCount(1), b.ranksWithCount(1))

	case Straight, StraightFlush:
		return compareInts(a.straightTop(), b.straightTop())

	case FullHouse:
		if o := compareValues(a.ranksWithCount(3), b.ranksWithCount(3)); o != Equal {
			return o
		}
		return compareValues(a.ranksWithCount(2), b.ranksWithCount(2))

	default:
		// FourOfAKind, RoyalFlush
		return Equal
	}
}

// descending returns the ace-high values of all five cards, highest first
func (h Hand) descending() []int {
	values := make([]int, HandSize)
	for i, c := range h.cards {
		values[HandSize-1-i] = c.HighValue()
	}
	return values
}

// ranksWithCount returns the ace-high values of ranks appearing exactly n
// times, highest first
func (h Hand) ranksWithCount(n int) []int {
	var byRank [deck.King + 1]int
	for _, c := range h.cards {
		byRank[c.Rank]++
	}

	var values []int
	for r, count := range byRank {
		if count == n {
			values = append(values, deck.Rank(r).HighValue())
		}
	}
	slices.SortFunc(values, func(a, b int) int { return b - a })
	return values
}

// straightTop returns the value of the top card of a straight. The wheel
// tops out at five.
func (h Hand) straightTop() int {
	if h.cards[HandSize-1].Rank == deck.Ace && h.cards[0].Rank == deck.Two {
		return deck.Five.HighValue()
	}
	return h.cards[HandSize-1].HighValue()
}

func compareValues(a, b []int) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if o := compareInts(a[i], b[i]); o != Equal {
			return o
		}
	}
	return Equal
}

func compareInts(a, b int) Ordering {
	switch {
	case a > b:
		return Greater
	case a < b:
		return Less
	default:
		return Equal
	}
}
