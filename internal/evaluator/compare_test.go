package evaluator

import (
	"testing"

	phpoker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerized/holdem/internal/deck"
	"github.com/pokerized/holdem/internal/randutil"
)

func hand(t *testing.T, s string) Hand {
	t.Helper()
	h, err := NewHand(deck.MustParseCards(s))
	require.NoError(t, err)
	return h
}

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want Ordering
	}{
		{"wheel loses to six high", "2c3d4h5sAc", "3c4d5h6s7c", Less},
		{"broadway beats king high straight", "TcJdQhKsAc", "9cTdJhQsKc", Greater},
		{"second pair decides two pair", "AcAdKcKd2s", "AsAhQcQdKs", Greater},
		{"two pair kicker", "AcAdKcKd3s", "AsAhKhKs2c", Greater},
		{"pair rank beats kickers", "9c9d2h3s4c", "8c8dAhKsQc", Greater},
		{"pair kicker", "9c9dAh3s4c", "9h9sKhQsJc", Greater},
		{"pair identical ranks", "9c9dAh3s4c", "9h9sAd3c4d", Equal},
		{"high card last kicker", "AsKhQd9c7s", "AcKdQh9s6c", Greater},
		{"flush compares all five", "As9s7s4s3s", "Ah9h7h4h2h", Greater},
		{"trips rank", "7s7h7dKs2c", "6s6h6dAsKc", Greater},
		{"trips kickers", "7s7h7dKs2c", "7c7h7dKh3c", Less},
		{"full house trips first", "3s3h3d2c2s", "2h2d2sAcAs", Greater},
		{"full house pair second", "KsKhKd3c3s", "KsKhKd2c2s", Greater},
		{"quads ignore rank", "2s2h2d2cKs", "AsAhAdAcKs", Equal},
		{"royal flushes tie", "TsJsQsKsAs", "ThJhQhKhAh", Equal},
		{"category decides", "2c2d3h4s5c", "AsKhQd9c7s", Greater},
		{"steel wheel loses to six high straight flush", "Ad2d3d4d5d", "2h3h4h5h6h", Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := hand(t, tt.a), hand(t, tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, tt.want.Reverse(), Compare(b, a))
		})
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	t.Parallel()
	rng := randutil.New(11)

	for i := 0; i < 5000; i++ {
		d := deck.NewDeck(rng)
		a := drawHand(t, d)
		b := drawHand(t, d)

		require.Equal(t, Compare(a, b), Compare(b, a).Reverse(), "%s vs %s", a, b)
		require.Equal(t, Equal, Compare(a, a))
	}
}

// The ordering must agree with an independent evaluator everywhere except
// the categories that deliberately compare equal.
func TestCompareMatchesReferenceEvaluator(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)

	for i := 0; i < 20000; i++ {
		d := deck.NewDeck(rng)
		a := drawHand(t, d)
		b := drawHand(t, d)
		if a.Category() == FourOfAKind || a.Category() == RoyalFlush {
			continue
		}

		want := compareInts(int(referenceScore(t, a)), int(referenceScore(t, b)))
		require.Equal(t, want, Compare(a, b), "%s vs %s", a, b)
	}
}

func drawHand(t *testing.T, d *deck.Deck) Hand {
	t.Helper()
	cards, err := d.DrawN(HandSize)
	require.NoError(t, err)
	return MustHand(cards)
}

func referenceScore(t *testing.T, h Hand) int16 {
	t.Helper()
	var five [5]phpoker.Card
	for i, c := range h.Cards() {
		card, err := phpoker.MakeCard(referenceSuit(c.Suit), phpoker.Rank(c.Rank))
		require.NoError(t, err)
		five[i] = card
	}
	return phpoker.Eval5(&five)
}

func referenceSuit(s deck.Suit) phpoker.Suit {
	switch s {
	case deck.Clubs:
		return phpoker.Club
	case deck.Diamonds:
		return phpoker.Diamond
	case deck.Hearts:
		return phpoker.Heart
	default:
		return phpoker.Spade
	}
}
