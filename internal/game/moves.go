package game

// HandMove is a player's decision for one hand at one decision point.
type HandMove int

const (
	Stand HandMove = iota
	Hit
	Double
	Split
)

// String returns the string representation of a move
func (m HandMove) String() string {
	switch m {
	case Hit:
		return "Hit"
	case Double:
		return "Double"
	case Split:
		return "Split"
	default:
		return "Stand"
	}
}

// Symbol returns the single-letter encoding used by strategy tables
func (m HandMove) Symbol() byte {
	switch m {
	case Hit:
		return 'H'
	case Double:
		return 'D'
	case Split:
		return 'P'
	default:
		return 'S'
	}
}

// MoveFromSymbol decodes a strategy-table move symbol. Unknown symbols
// decode to Stand, the universal legal fallback.
func MoveFromSymbol(symbol byte) HandMove {
	switch symbol {
	case 'H', 'h':
		return Hit
	case 'D', 'd':
		return Double
	case 'P', 'p':
		return Split
	default:
		return Stand
	}
}

// HandPlay is the resolved outcome of a hand. A hand starts at PlayNone
// and moves to exactly one terminal outcome during settlement. Wrong is
// a player-level semantic error (illegal double or split, or a strategy
// that blew up mid-decision); the hand forfeits its stake but the game
// carries on.
type HandPlay int

const (
	PlayNone HandPlay = iota
	Loss
	Win
	Tie
	Blackjack
	Bust
	Wrong
)

// String returns the string representation of an outcome
func (p HandPlay) String() string {
	switch p {
	case Loss:
		return "Loss"
	case Win:
		return "Win"
	case Tie:
		return "Tie"
	case Blackjack:
		return "Blackjack"
	case Bust:
		return "Bust"
	case Wrong:
		return "Wrong"
	default:
		return "None"
	}
}

// HandPlayCount is the number of HandPlay values, for outcome tallies.
const HandPlayCount = int(Wrong) + 1

// HandKind classifies a hand for strategy lookup: a two-card pair, a
// soft (ace-holding) hand, or a hard hand.
type HandKind int

const (
	Hard HandKind = iota
	Soft
	Pair
)

// String returns the string representation of a hand kind
func (k HandKind) String() string {
	switch k {
	case Soft:
		return "Soft"
	case Pair:
		return "Pair"
	default:
		return "Hard"
	}
}
