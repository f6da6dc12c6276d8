package deck

import "testing"

func TestCardFormatRoundTrip(t *testing.T) {
	for _, card := range StandardDeck() {
		code := card.Format()
		if len(code) != 2 {
			t.Fatalf("Expected 2-character code for %s, got %q", card, code)
		}

		parsed, err := ParseCard(code)
		if err != nil {
			t.Fatalf("ParseCard(%q) failed: %v", code, err)
		}
		if parsed != card {
			t.Errorf("Round trip of %s gave %s", card, parsed)
		}
	}
}

func TestBackCardRoundTrip(t *testing.T) {
	if Back.Format() != "" {
		t.Errorf("Expected empty format for back card, got %q", Back.Format())
	}

	parsed, err := ParseCard("")
	if err != nil {
		t.Fatalf("ParseCard of empty string failed: %v", err)
	}
	if !parsed.IsBack() {
		t.Errorf("Expected back card, got %s", parsed)
	}
}

func TestParseCardCaseInsensitive(t *testing.T) {
	upper, err := ParseCard("QS")
	if err != nil {
		t.Fatalf("ParseCard(QS) failed: %v", err)
	}
	lower, err := ParseCard("qs")
	if err != nil {
		t.Fatalf("ParseCard(qs) failed: %v", err)
	}
	if upper != lower {
		t.Errorf("Expected case-insensitive parse, got %s and %s", upper, lower)
	}
	if upper.Rank != Queen || upper.Suit != Spades {
		t.Errorf("Expected Q♠, got %s", upper)
	}
}

func TestParseCardErrors(t *testing.T) {
	tests := []string{"Q", "QSX", "XS", "QX", "1H"}
	for _, input := range tests {
		_, err := ParseCard(input)
		if err == nil {
			t.Errorf("Expected error parsing %q", input)
			continue
		}
		if _, ok := err.(*FormatError); !ok {
			t.Errorf("Expected FormatError for %q, got %T", input, err)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AS TC 9h")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	if cards[0].Rank != Ace || cards[0].Suit != Spades {
		t.Errorf("Expected A♠ first, got %s", cards[0])
	}
	if cards[2].Rank != Nine || cards[2].Suit != Hearts {
		t.Errorf("Expected 9♥ last, got %s", cards[2])
	}

	if _, err := ParseCards("ASH"); err == nil {
		t.Error("Expected error for odd-length card string")
	}
}

func TestCardScore(t *testing.T) {
	tests := []struct {
		code  string
		score int
	}{
		{"AS", 1},
		{"2H", 2},
		{"9D", 9},
		{"TC", 10},
		{"JS", 10},
		{"QH", 10},
		{"KD", 10},
	}

	for _, tt := range tests {
		card, err := ParseCard(tt.code)
		if err != nil {
			t.Fatalf("ParseCard(%q) failed: %v", tt.code, err)
		}
		if card.Score() != tt.score {
			t.Errorf("Expected score %d for %s, got %d", tt.score, card, card.Score())
		}
	}
}

func TestCardOrder(t *testing.T) {
	ace, _ := ParseCard("AS")
	if ace.Order() != 11 {
		t.Errorf("Expected ace to order as 11, got %d", ace.Order())
	}

	king, _ := ParseCard("KH")
	if king.Order() != 10 {
		t.Errorf("Expected king to order as 10, got %d", king.Order())
	}
}

func TestRankScoreSymbol(t *testing.T) {
	for _, rank := range []Rank{Ten, Jack, Queen, King} {
		if rank.ScoreSymbol() != 'T' {
			t.Errorf("Expected T for %s, got %c", rank, rank.ScoreSymbol())
		}
	}
	if Ace.ScoreSymbol() != 'A' {
		t.Errorf("Expected A for ace, got %c", Ace.ScoreSymbol())
	}
	if Seven.ScoreSymbol() != '7' {
		t.Errorf("Expected 7, got %c", Seven.ScoreSymbol())
	}
}

func TestStandardDeck(t *testing.T) {
	cards := StandardDeck()
	if len(cards) != 52 {
		t.Fatalf("Expected 52 cards, got %d", len(cards))
	}

	seen := make(map[Card]bool, 52)
	for _, card := range cards {
		if seen[card] {
			t.Errorf("Duplicate card %s", card)
		}
		seen[card] = true
	}
}

func TestUpcards(t *testing.T) {
	cards := Upcards()
	if len(cards) != 10 {
		t.Fatalf("Expected 10 upcards, got %d", len(cards))
	}
	if cards[0].Rank != Two {
		t.Errorf("Expected first upcard 2, got %s", cards[0])
	}
	if cards[9].Rank != Ace {
		t.Errorf("Expected last upcard A, got %s", cards[9])
	}
	for _, card := range cards {
		if card.Suit != Unknown {
			t.Errorf("Upcard %s should be rank-only", card)
		}
	}
}
