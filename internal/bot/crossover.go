package bot

import (
	"fmt"
	"sort"

	"github.com/lox/blackjackforbots/internal/game"
)

// MakeChildren recombines two table bots into four children. Both rule
// maps are split into the same four quarters (by sorted layout, so the
// split is deterministic), and each child takes every quarter from one
// parent or the other:
//
//	quarter  C1 C2 C3 C4
//	   1     x  y  x  y
//	   2     x  y  y  x
//	   3     y  x  x  y
//	   4     y  x  y  x
//
// Every child covers the full situation space; only the parentage of
// each quarter varies.
func MakeChildren(first, second *TableBot) []*TableBot {
	const numQuarters = 4

	layouts := sortedLayouts(first.rules, second.rules)
	quarterOf := func(i int) int {
		q := i * numQuarters / len(layouts)
		if q >= numQuarters {
			q = numQuarters - 1
		}
		return q
	}

	// Per child, whether each quarter comes from the first parent.
	plans := [][numQuarters]bool{
		{true, true, false, false},
		{false, false, true, true},
		{true, false, true, false},
		{false, true, false, true},
	}

	children := make([]*TableBot, 0, len(plans))
	for n, plan := range plans {
		rules := make(map[string]game.HandMove, len(layouts))
		for i, layout := range layouts {
			if plan[quarterOf(i)] {
				rules[layout] = first.rules[layout]
			} else {
				rules[layout] = second.rules[layout]
			}
		}
		name := fmt.Sprintf("%s+%s/%d", first.name, second.name, n+1)
		children = append(children, NewCustom(name, rules))
	}

	return children
}

func sortedLayouts(first, second map[string]game.HandMove) []string {
	seen := make(map[string]bool, len(first))
	layouts := make([]string, 0, len(first))
	for _, rules := range []map[string]game.HandMove{first, second} {
		for layout := range rules {
			if !seen[layout] {
				seen[layout] = true
				layouts = append(layouts, layout)
			}
		}
	}
	sort.Strings(layouts)
	return layouts
}
