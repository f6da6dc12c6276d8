package deck

import (
	"fmt"
	"strings"
)

// FormatError reports malformed card or strategy text. It is the only
// recoverable error kind in the engine: parsing happens at the boundary
// with the presentation/settings collaborators, which want a diagnostic
// rather than a dead game.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %q: %s", e.Input, e.Reason)
}

func formatErrorf(input, format string, args ...any) *FormatError {
	return &FormatError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// ParseCard parses a single two-character rank+suit code ("QS", "th").
// Parsing is case-insensitive. The empty string parses to the face-down
// back card; any other length is a FormatError.
func ParseCard(s string) (Card, error) {
	if s == "" {
		return Back, nil
	}
	if len(s) != 2 {
		return Back, formatErrorf(s, "card code must be exactly 2 characters, got %d", len(s))
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Back, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Back, err
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses concatenated two-character card codes ("ASTC9H").
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, formatErrorf(s, "card string length must be even, got %d", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9', '8', '7', '6', '5', '4', '3', '2':
		return Rank(c - '0'), nil
	default:
		return None, formatErrorf(string(c), "unknown rank %q", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	case 's', 'S':
		return Spades, nil
	default:
		return Unknown, formatErrorf(string(c), "unknown suit %q", c)
	}
}
