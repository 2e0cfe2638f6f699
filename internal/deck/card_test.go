package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "separated",
			input: "Ah Kd,Qc",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsSame(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		str  string
		code string
	}{
		{NewCard(Ace, Spades), "A♠", "As"},
		{NewCard(Ten, Hearts), "10♥", "Th"},
		{NewCard(Two, Clubs), "2♣", "2c"},
		{NewCard(King, Diamonds), "K♦", "Kd"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.card.Code(); got != tt.code {
			t.Errorf("Code() = %q, want %q", got, tt.code)
		}
	}
}

func TestCompareAceHigh(t *testing.T) {
	ace := NewCard(Ace, Clubs)
	king := NewCard(King, Spades)
	two := NewCard(Two, Hearts)

	if Compare(ace, king) != 1 {
		t.Error("ace should outrank king")
	}
	if Compare(two, ace) != -1 {
		t.Error("two should rank below ace")
	}
	if Compare(king, NewCard(King, Hearts)) != 0 {
		t.Error("kings of different suits should compare equal")
	}
}

func TestEqualIgnoresSuit(t *testing.T) {
	a := NewCard(Queen, Hearts)
	b := NewCard(Queen, Spades)

	if !a.Equal(b) {
		t.Error("cards of equal rank should be Equal regardless of suit")
	}
	if a.Same(b) {
		t.Error("Same should require matching suits")
	}
	if a.Equal(NewCard(Jack, Hearts)) {
		t.Error("cards of different rank should not be Equal")
	}
}

func cardsSame(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}
