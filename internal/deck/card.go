package deck

import "fmt"

// Suit represents a card suit. The zero value is Unknown, which doubles
// as the suit of synthetic cards (the face-down "back" card and the
// rank-only upcard markers used for strategy indexing).
type Suit int

const (
	Unknown Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Symbol returns the single-letter code used in the two-character card format
func (s Suit) Symbol() byte {
	switch s {
	case Hearts:
		return 'H'
	case Diamonds:
		return 'D'
	case Clubs:
		return 'C'
	case Spades:
		return 'S'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The zero value None belongs only to the
// back-card sentinel.
type Rank int

const (
	None Rank = iota
	Ace
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

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case None:
		return "?"
	default:
		return string(byte('0' + int(r)))
	}
}

// Symbol returns the single-letter code used in the two-character card format
func (r Rank) Symbol() byte {
	return r.String()[0]
}

// ScoreSymbol collapses a rank to its blackjack scoring symbol: every
// ten-value rank reads as 'T', the ace as 'A'. Strategy tables are keyed
// on these, so tens, jacks, queens and kings all share a column.
func (r Rank) ScoreSymbol() byte {
	switch r {
	case Ace:
		return 'A'
	case Ten, Jack, Queen, King:
		return 'T'
	default:
		return byte('0' + int(r))
	}
}

// Card represents a playing card. The zero value is the face-down back card.
type Card struct {
	Suit Suit
	Rank Rank
}

// Back is the face-down card sentinel.
var Back = Card{}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the display representation of a card (e.g. "A♠").
// Synthetic rank-only cards render as their bare rank.
func (c Card) String() string {
	if c.Suit == Unknown {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsBack returns true for the face-down sentinel
func (c Card) IsBack() bool {
	return c == Back
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// Score returns the blackjack value of the card. Face cards count ten,
// the ace counts one; soft revaluation to eleven is the hand's business.
func (c Card) Score() int {
	if c.IsFaceCard() {
		return 10
	}
	return int(c.Rank)
}

// Order returns the display/tie-break value of the card. Unlike Score,
// the ace orders high (11) so that "A-9" prints ace first.
func (c Card) Order() int {
	if c.Rank == Ace {
		return 11
	}
	return c.Score()
}

// Format renders the card as a two-character rank+suit code ("QS", "TH").
// The back card formats as the empty string.
func (c Card) Format() string {
	if c.IsBack() {
		return ""
	}
	return string([]byte{c.Rank.Symbol(), c.Suit.Symbol()})
}
