package bot

import (
	"fmt"
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Strategy tables travel as text: one row per hand layout, an equals
// sign, then ten move symbols for the dealer upcards 2 through ace.
//
//	T-T=SSSSSSSSSS
//	A-7=DDDDDSSHHH
//	 12=HHSSSHHHHH
//
// The settings layer consumes and produces this format; the engine
// only promises an exact round-trip.

// ParseStrategy decodes strategy-table text into a rule map keyed by
// situation layout ("<hand-layout>/<upcard-symbol>").
func ParseStrategy(text string) (map[string]game.HandMove, error) {
	rules := make(map[string]game.HandMove)

	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		layout, moves, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &deck.FormatError{Input: line, Reason: fmt.Sprintf("row %d has no '='", i+1)}
		}
		layout = strings.TrimSpace(layout)
		if layout == "" {
			return nil, &deck.FormatError{Input: line, Reason: fmt.Sprintf("row %d has an empty layout", i+1)}
		}
		if len(moves) != len(deck.Upcards()) {
			return nil, &deck.FormatError{
				Input:  line,
				Reason: fmt.Sprintf("row %d has %d move symbols, want %d", i+1, len(moves), len(deck.Upcards())),
			}
		}

		for col, upcard := range deck.Upcards() {
			rules[layout+"/"+string(upcard.Rank.ScoreSymbol())] = game.MoveFromSymbol(moves[col])
		}
	}

	return rules, nil
}

// FormatStrategy encodes a rule map as strategy-table text, one row
// per known deal layout. Situations missing from the map encode as
// Stand, mirroring the lookup default.
func FormatStrategy(rules map[string]game.HandMove) string {
	var sb strings.Builder

	for i, deal := range game.Deals() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%3s=", deal.String())
		for _, upcard := range deck.Upcards() {
			move := rules[deal.Layout(upcard)]
			sb.WriteByte(move.Symbol())
		}
	}

	return sb.String()
}
