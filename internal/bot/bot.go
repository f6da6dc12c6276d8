// Package bot provides the playing strategies that drive simulated
// blackjack hands: a do-nothing bystander, fixed lookup-table players
// (the published basic strategy plus generated tables), and an adaptive
// player that reweights its moves from game outcomes. A single bot
// instance is shared across many concurrently running games, so every
// bot keeps its mutable state safe under concurrent use.
package bot

import (
	"sync"

	"github.com/lox/blackjackforbots/internal/game"
)

// base carries what every bot shares: the played-hand history and an
// optional staking policy for the hands it begins.
type base struct {
	history
	staking game.StakingPolicy
}

// SetStaking overrides the staking policy used for hands this bot
// begins. Nil means the default flat bet.
func (b *base) SetStaking(policy game.StakingPolicy) {
	b.staking = policy
}

// history is a concurrency-safe tally of finished hands per outcome.
type history struct {
	mu       sync.Mutex
	played   int
	outcomes [game.HandPlayCount]int
}

func (h *history) record(hand *game.Hand) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.played++
	h.outcomes[hand.Play()]++
}

// Played returns the number of hands this bot has finished
func (h *history) Played() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.played
}

// Outcomes returns a snapshot of the per-outcome tally
func (h *history) Outcomes() [game.HandPlayCount]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcomes
}
