package bot

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
)

// playAdaptiveHand runs one decision point for a 13-vs-6 hand and
// resolves it with the given outcome.
func playAdaptiveHand(a *Adaptive, play game.HandPlay) game.HandMove {
	hand := a.BeginPlay(game.DefaultBank)
	for _, card := range deck.MustParseCards("TH 3C") {
		hand.Hit(card)
	}
	move := a.Move(hand, upcardOf(deck.Six), 6)
	hand.Set(play)
	return move
}

func TestAdaptiveCoversAllSituations(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)
	rules := adaptive.Rules()
	want := len(game.Deals()) * len(deck.Upcards())
	if len(rules) != want {
		t.Errorf("Expected %d situations, got %d", want, len(rules))
	}
}

func TestAdaptiveStartsAtZero(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)
	moves, weights := adaptive.Weights("13/6")
	if len(moves) != 3 {
		t.Fatalf("Expected 3 legal moves for 13/6, got %d", len(moves))
	}
	for i, w := range weights {
		if w != 0 {
			t.Errorf("Expected initial weight 0 for %s, got %d", moves[i], w)
		}
	}
}

func TestAdaptiveRewardsWinningMove(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	first := playAdaptiveHand(adaptive, game.Blackjack)
	for i := 0; i < 4; i++ {
		if move := playAdaptiveHand(adaptive, game.Blackjack); move != first {
			t.Fatalf("Rewarded move should stay active, got %s after %s", move, first)
		}
	}

	moves, weights := adaptive.Weights("13/6")
	if moves[0] != first {
		t.Errorf("Expected %s ranked first, got %s", first, moves[0])
	}
	if weights[0] != 5*deltaBlackjack {
		t.Errorf("Expected weight %d, got %d", 5*deltaBlackjack, weights[0])
	}
}

func TestAdaptiveSurvivesLossNoise(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	// Build up a lead, then take a smaller hit: the move stays active.
	first := playAdaptiveHand(adaptive, game.Win)
	playAdaptiveHand(adaptive, game.Win)
	playAdaptiveHand(adaptive, game.Loss)

	moves, weights := adaptive.Weights("13/6")
	if moves[0] != first {
		t.Errorf("Expected %s to survive one loss, got %s", first, moves[0])
	}
	if weights[0] != 2*deltaWin+deltaLoss {
		t.Errorf("Expected weight %d, got %d", 2*deltaWin+deltaLoss, weights[0])
	}
}

func TestAdaptiveDemotesLosingMove(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	first := playAdaptiveHand(adaptive, game.Bust)
	second := playAdaptiveHand(adaptive, game.PlayNone)
	if second == first {
		t.Errorf("Expected a busting move to be demoted, still got %s", first)
	}

	moves, _ := adaptive.Weights("13/6")
	if moves[len(moves)-1] != first {
		t.Errorf("Expected %s ranked last after busting, got %s", first, moves[len(moves)-1])
	}
}

func TestAdaptiveIgnoresNaturals(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	hand := adaptive.BeginPlay(game.DefaultBank)
	for _, card := range deck.MustParseCards("AS KC") {
		hand.Hit(card)
	}
	hand.Set(game.Blackjack)

	for _, deal := range game.Deals() {
		for _, upcard := range deck.Upcards() {
			_, weights := adaptive.Weights(deal.Layout(upcard))
			for _, w := range weights {
				if w != 0 {
					t.Fatal("A natural should not adjust any weights")
				}
			}
		}
	}
	if adaptive.Played() != 1 {
		t.Errorf("The natural still counts in history, got %d", adaptive.Played())
	}
}

func TestAdaptiveIgnoresUndecidedHands(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	// Resolved without ever reaching a decision point.
	hand := adaptive.BeginPlay(game.DefaultBank)
	for _, card := range deck.MustParseCards("TH 3C") {
		hand.Hit(card)
	}
	hand.Set(game.Loss)

	_, weights := adaptive.Weights("13/6")
	for _, w := range weights {
		if w != 0 {
			t.Error("A hand with no recorded decision should not adjust weights")
		}
	}
}

func TestAdaptiveFeedbackFrozenAtFirstDecision(t *testing.T) {
	adaptive := NewAdaptive(randutil.New(42), nil)

	hand := adaptive.BeginPlay(game.DefaultBank)
	for _, card := range deck.MustParseCards("TH 3C") {
		hand.Hit(card)
	}
	adaptive.Move(hand, upcardOf(deck.Six), 6)

	// A later decision on the grown hand must not move the key.
	hand.Hit(deck.MustParseCards("4D")[0])
	adaptive.Move(hand, upcardOf(deck.Six), 6)
	hand.Set(game.Win)

	_, weights := adaptive.Weights("13/6")
	if weights[0] != deltaWin {
		t.Errorf("Expected feedback on 13/6, got weights %v", weights)
	}
	_, weights = adaptive.Weights("17/6")
	for _, w := range weights {
		if w != 0 {
			t.Error("Feedback should not land on the later layout")
		}
	}
}
