package bot

import (
	rand "math/rand/v2"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Feedback deltas applied to a situation's active move when a hand it
// played resolves. Good outcomes entrench the move, bad ones demote it.
const (
	deltaBlackjack = 3
	deltaWin       = 2
	deltaTie       = 1
	deltaLoss      = -1
	deltaBust      = -2
	deltaWrong     = -3
)

// candidate is one move with its learned weight.
type candidate struct {
	move   game.HandMove
	weight int
}

// situation holds the ranked candidate moves for one layout. The first
// candidate is the active move. Each situation carries its own lock so
// concurrent games only contend when they learn about the same layout.
type situation struct {
	mu         sync.Mutex
	candidates []candidate
}

// Adaptive is a learning player. Per situation it keeps every legal
// move in a weighted ranking, plays the top-ranked one, and adjusts
// that move's weight when a hand resolves: an online local search over
// the strategy table, not a global optimisation.
//
// The situation key set is enumerated once at construction and never
// grows, so the map itself is read-only at runtime; only the per-key
// rankings mutate, under their per-key locks.
type Adaptive struct {
	base
	situations map[string]*situation
	logger     *log.Logger
}

// NewAdaptive creates an adaptive player. Every reachable situation
// starts with its legal moves in a randomized order at weight zero.
func NewAdaptive(rng *rand.Rand, logger *log.Logger) *Adaptive {
	situations := make(map[string]*situation, len(game.Deals())*len(deck.Upcards()))

	for _, deal := range game.Deals() {
		for _, upcard := range deck.Upcards() {
			moves := deck.Shuffled(rng, legalMoves(deal))
			candidates := make([]candidate, len(moves))
			for i, move := range moves {
				candidates[i] = candidate{move: move}
			}
			situations[deal.Layout(upcard)] = &situation{candidates: candidates}
		}
	}

	return &Adaptive{situations: situations, logger: logger}
}

func (a *Adaptive) Move(hand *game.Hand, upcard deck.Card, dealerScore int) game.HandMove {
	layout := hand.Layout(upcard)

	// The feedback key is the hand's first decision point; later
	// draws do not move it.
	hand.RecordMoveLayout(layout)

	sit, ok := a.situations[layout]
	if !ok {
		return game.Stand
	}

	sit.mu.Lock()
	defer sit.mu.Unlock()
	return sit.candidates[0].move
}

func (a *Adaptive) BeginPlay(bank int) *game.Hand {
	return game.NewStakedHand(a, bank, a.staking)
}

func (a *Adaptive) EndPlay(hand *game.Hand) {
	a.record(hand)

	// Naturals resolve before any decision and teach nothing, as do
	// hands that never reached a decision point.
	if hand.IsNatural() {
		return
	}
	layout := hand.MoveLayout()
	if layout == "" {
		return
	}

	if delta := feedbackDelta(hand.Play()); delta != 0 {
		a.adjust(layout, delta)
	}
}

// adjust applies a weighted delta to the layout's active move and
// re-ranks the candidates so the heaviest is active. The whole
// read-adjust-sort-write is one critical section per key.
func (a *Adaptive) adjust(layout string, delta int) {
	sit, ok := a.situations[layout]
	if !ok {
		return
	}

	sit.mu.Lock()
	defer sit.mu.Unlock()

	sit.candidates[0].weight += delta
	sort.SliceStable(sit.candidates, func(i, j int) bool {
		return sit.candidates[i].weight > sit.candidates[j].weight
	})

	if a.logger != nil {
		a.logger.Debug("adjusted move weight", "layout", layout, "delta", delta,
			"active", sit.candidates[0].move, "weight", sit.candidates[0].weight)
	}
}

// Rules snapshots the currently active move per situation, suitable
// for FormatStrategy.
func (a *Adaptive) Rules() map[string]game.HandMove {
	rules := make(map[string]game.HandMove, len(a.situations))
	for layout, sit := range a.situations {
		sit.mu.Lock()
		rules[layout] = sit.candidates[0].move
		sit.mu.Unlock()
	}
	return rules
}

// Weights returns the layout's candidate moves in rank order with
// their weights. It exists for inspection and tests.
func (a *Adaptive) Weights(layout string) ([]game.HandMove, []int) {
	sit, ok := a.situations[layout]
	if !ok {
		return nil, nil
	}

	sit.mu.Lock()
	defer sit.mu.Unlock()

	moves := make([]game.HandMove, len(sit.candidates))
	weights := make([]int, len(sit.candidates))
	for i, c := range sit.candidates {
		moves[i] = c.move
		weights[i] = c.weight
	}
	return moves, weights
}

// String renders the currently active rules as strategy-table text
func (a *Adaptive) String() string {
	return FormatStrategy(a.Rules())
}

func feedbackDelta(play game.HandPlay) int {
	switch play {
	case game.Blackjack:
		return deltaBlackjack
	case game.Win:
		return deltaWin
	case game.Tie:
		return deltaTie
	case game.Loss:
		return deltaLoss
	case game.Bust:
		return deltaBust
	case game.Wrong:
		return deltaWrong
	default:
		return 0
	}
}
