package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/randutil"
)

// ErrEmptyShoe is returned by Draw when no cards remain. With four or
// more decks against realistic hand counts this is unreachable; hitting
// it means the engine mis-sized a run and the game must fail loudly.
var ErrEmptyShoe = errors.New("deck: draw from empty shoe")

// DefaultDeckCount is the number of standard decks in a shoe unless the
// caller asks otherwise.
const DefaultDeckCount = 4

// Shoe is a shuffled multi-deck card source. A shoe belongs to exactly
// one dealer for the duration of one game and is not safe for
// concurrent use.
type Shoe struct {
	cards []Card
}

// NewShoe builds a shoe of deckCount standard decks shuffled with a
// ChaCha8 generator seeded from the OS CSPRNG. deckCount values below
// one fall back to DefaultDeckCount.
func NewShoe(deckCount int) *Shoe {
	return NewShoeWithRand(deckCount, randutil.NewCrypto())
}

// NewShoeWithRand builds a shoe shuffled by the provided source. The
// simulator uses this with per-game deterministic sources so that runs
// are replayable from a seed.
func NewShoeWithRand(deckCount int, rng *rand.Rand) *Shoe {
	if deckCount < 1 {
		deckCount = DefaultDeckCount
	}

	cards := make([]Card, 0, deckCount*52)
	for i := 0; i < deckCount; i++ {
		cards = append(cards, standardDeck...)
	}

	// Fisher-Yates; rand/v2 IntN is rejection-sampled so the
	// permutation is uniform.
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Shoe{cards: cards}
}

// NewStackedShoe builds a shoe that draws the given cards in order.
// Game tests use it to script exact deals.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}
	return &Shoe{cards: stacked}
}

// Draw removes and returns the top card of the shoe
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Back, ErrEmptyShoe
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Shuffled returns a new slice holding the elements of cards in a
// uniformly random order drawn from rng. The input is not modified.
func Shuffled[T any](rng *rand.Rand, cards []T) []T {
	out := make([]T, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
