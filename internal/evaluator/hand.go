package evaluator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pokerized/holdem/internal/deck"
)

// HandSize is the number of cards in a ranked poker hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built from anything other
// than exactly five cards, or a best-hand search is given fewer than five
// or more than seven cards.
var ErrInvalidHandSize = errors.New("invalid hand size")

// Category is the class of a five card poker hand, weakest first
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// Categories lists every category from weakest to strongest
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return "Unknown"
	}
	return categoryNames[c]
}

// Hand is an immutable five card hand. Cards are kept sorted ascending with
// Ace high and the category is computed once at construction.
type Hand struct {
	cards    [HandSize]deck.Card
	category Category
}

// NewHand builds a hand from exactly five cards
func NewHand(cards []deck.Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}

	var h Hand
	copy(h.cards[:], cards)
	slices.SortStableFunc(h.cards[:], deck.Compare)
	h.category = classifySorted(h.cards)
	return h, nil
}

// MustHand is like NewHand but panics on error
func MustHand(cards []deck.Card) Hand {
	h, err := NewHand(cards)
	if err != nil {
		panic(err)
	}
	return h
}

// Category returns the cached category of the hand
func (h Hand) Category() Category {
	return h.category
}

// Cards returns a copy of the hand's cards in ascending order
func (h Hand) Cards() []deck.Card {
	return slices.Clone(h.cards[:])
}

// String returns the cards and category, e.g. "2♣ 3♦ 4♥ 5♠ A♣ (Straight)"
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, " "), h.category)
}

// Classify returns the category of exactly five cards in any order
func Classify(cards []deck.Card) (Category, error) {
	h, err := NewHand(cards)
	if err != nil {
		return HighCard, err
	}
	return h.category, nil
}

func classifySorted(cards [HandSize]deck.Card) Category {
	flush := distinctSuits(cards) == 1
	straight, royal := straightShape(cards)

	if straight {
		switch {
		case flush && royal:
			return RoyalFlush
		case flush:
			return StraightFlush
		default:
			return Straight
		}
	}

	counts := multiplicities(cards)
	switch {
	case counts[0] == 4:
		return FourOfAKind
	case counts[0] == 3 && counts[1] == 2:
		return FullHouse
	case flush:
		return Flush
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return Pair
	default:
		return HighCard
	}
}

func distinctSuits(cards [HandSize]deck.Card) int {
	var seen [4]bool
	n := 0
	for _, c := range cards {
		if !seen[c.Suit] {
			seen[c.Suit] = true
			n++
		}
	}
	return n
}

// straightShape expects ace-high ascending order. The wheel (2-3-4-5-A) is
// the only place an Ace plays below a Two.
func straightShape(cards [HandSize]deck.Card) (straight, royal bool) {
	consecutive := true
	for i := 0; i < HandSize-1; i++ {
		if cards[i+1].HighValue()-cards[i].HighValue() != 1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, cards[HandSize-1].Rank == deck.Ace
	}

	wheel := cards[0].Rank == deck.Two &&
		cards[1].Rank == deck.Three &&
		cards[2].Rank == deck.Four &&
		cards[3].Rank == deck.Five &&
		cards[4].Rank == deck.Ace
	return wheel, false
}

// multiplicities returns how often each distinct rank occurs, largest first
func multiplicities(cards [HandSize]deck.Card) []int {
	var byRank [deck.King + 1]int
	for _, c := range cards {
		byRank[c.Rank]++
	}

	counts := make([]int, 0, HandSize)
	for _, n := range byRank {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	// pad so callers can index [1] on quads-plus-kicker style hands
	for len(counts) < 2 {
		counts = append(counts, 0)
	}
	return counts
}
