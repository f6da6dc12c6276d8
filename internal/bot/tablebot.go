package bot

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// TableBot plays from an immutable rule map keyed by situation layout.
// Situations the map does not cover resolve to Stand. The map is never
// written after construction, so lookups are safe from any number of
// concurrent games.
type TableBot struct {
	base
	name  string
	rules map[string]game.HandMove
}

// NewCustom creates a table bot over a caller-supplied rule map. The
// map is copied.
func NewCustom(name string, rules map[string]game.HandMove) *TableBot {
	copied := make(map[string]game.HandMove, len(rules))
	for layout, move := range rules {
		copied[layout] = move
	}
	return &TableBot{name: name, rules: copied}
}

// NewHitman creates a table bot that hits every reachable situation.
// It exists to probe the downside boundary of the outcome space.
func NewHitman() *TableBot {
	rules := make(map[string]game.HandMove)
	for _, deal := range game.Deals() {
		for _, upcard := range deck.Upcards() {
			rules[deal.Layout(upcard)] = game.Hit
		}
	}
	return &TableBot{name: "hitman", rules: rules}
}

// NewRandom creates a table bot with one uniformly chosen move per
// situation, frozen at construction. Split is only offered where the
// hand is actually a pair.
func NewRandom(rng *rand.Rand) *TableBot {
	rules := make(map[string]game.HandMove)
	for _, deal := range game.Deals() {
		moves := legalMoves(deal)
		for _, upcard := range deck.Upcards() {
			rules[deal.Layout(upcard)] = moves[rng.IntN(len(moves))]
		}
	}
	return &TableBot{name: "random", rules: rules}
}

func legalMoves(deal *game.Hand) []game.HandMove {
	moves := []game.HandMove{game.Stand, game.Hit, game.Double}
	if deal.Kind() == game.Pair {
		moves = append(moves, game.Split)
	}
	return moves
}

// Name returns the bot's name
func (t *TableBot) Name() string {
	return t.name
}

// Rules returns a copy of the bot's rule map
func (t *TableBot) Rules() map[string]game.HandMove {
	rules := make(map[string]game.HandMove, len(t.rules))
	for layout, move := range t.rules {
		rules[layout] = move
	}
	return rules
}

// String renders the bot's rules as strategy-table text
func (t *TableBot) String() string {
	return FormatStrategy(t.rules)
}

func (t *TableBot) Move(hand *game.Hand, upcard deck.Card, dealerScore int) game.HandMove {
	if move, ok := t.rules[hand.Layout(upcard)]; ok {
		return move
	}
	return game.Stand
}

func (t *TableBot) BeginPlay(bank int) *game.Hand {
	return game.NewStakedHand(t, bank, t.staking)
}

func (t *TableBot) EndPlay(hand *game.Hand) {
	t.record(hand)
}
