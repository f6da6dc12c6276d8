package bot

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Bystander is the baseline strategy: it stands on everything.
type Bystander struct {
	base
}

// NewBystander creates a new Bystander instance
func NewBystander() *Bystander {
	return &Bystander{}
}

func (b *Bystander) Move(hand *game.Hand, upcard deck.Card, dealerScore int) game.HandMove {
	return game.Stand
}

func (b *Bystander) BeginPlay(bank int) *game.Hand {
	return game.NewStakedHand(b, bank, b.staking)
}

func (b *Bystander) EndPlay(hand *game.Hand) {
	b.record(hand)
}
