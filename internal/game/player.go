package game

import "github.com/lox/blackjackforbots/internal/deck"

// Player is a playing strategy. One Player instance may drive hands in
// many concurrently running games; implementations must keep any
// mutable state (history, learned weights) safe under concurrent calls
// from independent games.
type Player interface {
	// Move decides the next move for a hand, given the dealer's
	// visible upcard and running score.
	Move(hand *Hand, upcard deck.Card, dealerScore int) HandMove

	// BeginPlay starts a fresh hand with the given bankroll.
	BeginPlay(bank int) *Hand

	// EndPlay is called once the hand's outcome is set, so the player
	// can record history and learn from the result.
	EndPlay(hand *Hand)
}
