package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lox/blackjackforbots/internal/deck"
)

var (
	allDealsOnce sync.Once
	allDeals     []*Hand
	deals        []*Hand
)

// AllDeals returns the 1326 distinct two-card combinations of a
// standard deck, as unowned hands. The slice is shared; do not mutate.
func AllDeals() []*Hand {
	allDealsOnce.Do(buildDeals)
	return allDeals
}

// Deals returns the distinct sub-21 hand layouts reachable from a
// two-card deal, deduplicated by (kind, ace, score) and ordered kind
// first, higher deals before lower. These 34 layouts, crossed with the
// ten upcards, enumerate every strategy situation. The slice is shared;
// do not mutate.
func Deals() []*Hand {
	allDealsOnce.Do(buildDeals)
	return deals
}

func layoutIdentity(h *Hand) string {
	return fmt.Sprintf("%d/%t/%d", h.Kind(), h.hasAce(), h.Score())
}

func orderSum(h *Hand) int {
	sum := 0
	for _, card := range h.cards {
		sum += card.Order()
	}
	return sum
}

func buildDeals() {
	cards := deck.StandardDeck()

	allDeals = make([]*Hand, 0, len(cards)*(len(cards)-1)/2)
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			hand := NewHand(nil, 0)
			hand.Hit(cards[i])
			hand.Hit(cards[j])
			allDeals = append(allDeals, hand)
		}
	}

	seen := make(map[string]bool)
	for _, hand := range allDeals {
		if hand.Score() >= BlackjackScore {
			continue
		}
		identity := layoutIdentity(hand)
		if seen[identity] {
			continue
		}
		seen[identity] = true
		deals = append(deals, hand)
	}

	sort.SliceStable(deals, func(i, j int) bool {
		if deals[i].Kind() != deals[j].Kind() {
			return deals[i].Kind() < deals[j].Kind()
		}
		return orderSum(deals[i]) > orderSum(deals[j])
	})
}
