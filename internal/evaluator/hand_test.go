package evaluator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/randutil"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"royal flush", "TsJsQsKsAs", RoyalFlush},
		{"straight flush", "9h8h7h6h5h", StraightFlush},
		{"steel wheel", "Ad2d3d4d5d", StraightFlush},
		{"four of a kind", "AsAhAdAcKs", FourOfAKind},
		{"full house", "KsKhKd2c2s", FullHouse},
		{"flush", "As9s7s4s2s", Flush},
		{"broadway straight", "AhKdQcJsTs", Straight},
		{"wheel straight", "2c3d4h5sAc", Straight},
		{"six high straight", "3c4d5h6s7c", Straight},
		{"three of a kind", "7s7h7dKs2c", ThreeOfAKind},
		{"two pair", "AcAdKcKd2s", TwoPair},
		{"pair", "QcQd9h5s2c", Pair},
		{"high card", "AsKhQd9c7s", HighCard},
		{"no wrap-around straight", "QcKdAh2s3c", HighCard},
		{"almost wheel", "2c3d4h6sAc", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Classify(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, "cards %s", tt.cards)
		})
	}
}

func TestClassifyOrderIndependent(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)

	for i := 0; i < 2000; i++ {
		cards, err := deck.NewDeck(rng).DrawN(HandSize)
		require.NoError(t, err)

		want, err := Classify(cards)
		require.NoError(t, err)

		shuffled := append([]deck.Card(nil), cards...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := Classify(shuffled)
		require.NoError(t, err)
		require.Equal(t, want, got, "reordering %v changed its category", cards)
	}
}

func TestClassifyRejectsWrongSize(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "AsKs", "AsKsQsJs", "AsKsQsJsTs9s"} {
		_, err := Classify(deck.MustParseCards(s))
		assert.True(t, errors.Is(err, ErrInvalidHandSize), "%q: got %v", s, err)
	}
}

func TestHandCardsSortedAndCopied(t *testing.T) {
	t.Parallel()
	h := MustHand(deck.MustParseCards("As2c9dKh5s"))

	cards := h.Cards()
	require.Len(t, cards, HandSize)
	for i := 1; i < len(cards); i++ {
		assert.LessOrEqual(t, deck.Compare(cards[i-1], cards[i]), 0, "cards not ascending: %v", cards)
	}
	assert.Equal(t, deck.Ace, cards[HandSize-1].Rank)

	cards[0] = deck.NewCard(deck.King, deck.Clubs)
	assert.Equal(t, deck.Two, h.Cards()[0].Rank, "mutating Cards() leaked into the hand")
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Unknown", Category(42).String())
}
