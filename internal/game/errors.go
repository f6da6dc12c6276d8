package game

import "errors"

// These errors mark engine-contract violations, not expected runtime
// conditions. A game that surfaces one is broken and must stop; they are
// never folded into a hand outcome.
var (
	// ErrInvalidOperation covers misuse of the engine's state machine,
	// such as splitting a non-pair hand directly or dealing a third
	// card into the dealer's initial deal.
	ErrInvalidOperation = errors.New("game: invalid operation")

	// ErrInsufficientFunds is returned when a debit exceeds the bank.
	ErrInsufficientFunds = errors.New("game: insufficient funds")

	// ErrInvalidAmount is returned for zero or negative chip movements.
	ErrInvalidAmount = errors.New("game: invalid chip amount")
)
