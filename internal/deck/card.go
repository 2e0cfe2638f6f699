package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Hearts
	Diamonds
	Spades
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Clubs, Hearts, Diamonds, Spades}

var suitGlyphs = [...]string{"♣", "♥", "♦", "♠"}

var suitCodes = [...]byte{'c', 'h', 'd', 's'}

// String returns the string representation of a suit
func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitGlyphs[s]
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ace is 1 and ranks high unless it completes
// a wheel straight.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// indexed by Rank; slot 0 unused
var rankLabels = [...]string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var rankCodes = [...]byte{'?', 'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

// String returns the display label of a rank ("A", "10", "K")
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankLabels[r]
}

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// HighValue returns the ace-high ordering value: 2..13 as-is, Ace as 14.
func (r Rank) HighValue() int {
	if r == Ace {
		return 14
	}
	return int(r)
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the display form of a card (e.g., "A♠", "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the two character ASCII form of a card (e.g., "As", "Th")
func (c Card) Code() string {
	if !c.Rank.Valid() || c.Suit < Clubs || c.Suit > Spades {
		return "??"
	}
	return string([]byte{rankCodes[c.Rank], suitCodes[c.Suit]})
}

// HighValue returns the ace-high value of the card's rank
func (c Card) HighValue() int {
	return c.Rank.HighValue()
}

// Equal compares ranks only. Two cards of the same rank and different suits
// are equal; kicker comparisons rely on this.
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank
}

// Same reports whether both rank and suit match
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Compare orders two cards by rank with Ace high. It returns -1, 0 or +1.
func Compare(a, b Card) int {
	av, bv := a.HighValue(), b.HighValue()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// ParseCard parses a two character card code such as "As", "Td" or "2c"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}

	suit, ok := parseSuit(s[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of card codes. Whitespace and commas between
// cards are ignored, so "AsKs", "As Ks" and "As,Ks" are equivalent.
func ParseCards(s string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, s)

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	cards := make([]Card, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, bool) {
	switch b {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	}
	if b >= '2' && b <= '9' {
		return Rank(b - '0'), true
	}
	return 0, false
}

func parseSuit(b byte) (Suit, bool) {
	switch b {
	case 'c', 'C':
		return Clubs, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 's', 'S':
		return Spades, true
	}
	return 0, false
}
