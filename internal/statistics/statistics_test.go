package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjackforbots/internal/game"
)

func resultOf(net int, outcomes map[game.HandPlay]int) GameResult {
	result := GameResult{NetChips: net}
	for play, n := range outcomes {
		result.Outcomes[play] += n
		result.Hands += n
	}
	return result
}

func TestAdd(t *testing.T) {
	var stats Statistics
	stats.Add(resultOf(500, map[game.HandPlay]int{game.Win: 2}))
	stats.Add(resultOf(-250, map[game.HandPlay]int{game.Loss: 1, game.Tie: 1}))

	if stats.Games != 2 {
		t.Errorf("Expected 2 games, got %d", stats.Games)
	}
	if stats.Hands != 4 {
		t.Errorf("Expected 4 hands, got %d", stats.Hands)
	}
	if stats.NetChips != 250 {
		t.Errorf("Expected net 250, got %d", stats.NetChips)
	}
	if stats.Outcomes[game.Win] != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.Outcomes[game.Win])
	}
}

func TestAddFailedGame(t *testing.T) {
	var stats Statistics
	stats.Add(GameResult{Failed: true, NetChips: 999, Hands: 4})

	if stats.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", stats.Failures)
	}
	if stats.Hands != 0 || stats.NetChips != 0 {
		t.Error("A failed game should contribute nothing but its failure")
	}
}

func TestMerge(t *testing.T) {
	var first, second Statistics
	first.Add(resultOf(100, map[game.HandPlay]int{game.Win: 1}))
	second.Add(resultOf(-100, map[game.HandPlay]int{game.Loss: 1}))
	second.Add(GameResult{Failed: true})

	first.Merge(&second)

	if first.Games != 3 {
		t.Errorf("Expected 3 games after merge, got %d", first.Games)
	}
	if first.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", first.Failures)
	}
	if first.NetChips != 0 {
		t.Errorf("Expected net 0, got %d", first.NetChips)
	}
	if first.Mean() != 0 {
		t.Errorf("Expected mean 0, got %f", first.Mean())
	}
}

func TestMeanAndVariance(t *testing.T) {
	var stats Statistics
	for _, net := range []int{100, 200, 300} {
		stats.Add(resultOf(net, map[game.HandPlay]int{game.Win: 1}))
	}

	if got := stats.Mean(); got != 200 {
		t.Errorf("Expected mean 200, got %f", got)
	}
	if got := stats.Variance(); got != 10000 {
		t.Errorf("Expected variance 10000, got %f", got)
	}
	if got := stats.StdDev(); got != 100 {
		t.Errorf("Expected stddev 100, got %f", got)
	}

	wantSE := 100 / math.Sqrt(3)
	if got := stats.StdError(); math.Abs(got-wantSE) > 1e-9 {
		t.Errorf("Expected stderr %f, got %f", wantSE, got)
	}

	low, high := stats.ConfidenceInterval95()
	if low >= 200 || high <= 200 {
		t.Errorf("Expected the mean inside [%f, %f]", low, high)
	}
}

func TestEmptyStatistics(t *testing.T) {
	var stats Statistics
	if stats.Mean() != 0 || stats.Variance() != 0 || stats.StdError() != 0 {
		t.Error("Empty statistics should report zeros")
	}
	if stats.WinRate() != 0 || stats.NetPerHand() != 0 {
		t.Error("Empty statistics should report zero rates")
	}
}

func TestRates(t *testing.T) {
	var stats Statistics
	stats.Add(resultOf(0, map[game.HandPlay]int{
		game.Win:       3,
		game.Blackjack: 1,
		game.Loss:      4,
		game.Bust:      2,
	}))

	if got := stats.OutcomeRate(game.Win); got != 0.3 {
		t.Errorf("Expected win rate 0.3, got %f", got)
	}
	if got := stats.WinRate(); got != 0.4 {
		t.Errorf("Expected combined win rate 0.4, got %f", got)
	}
}

func TestValidate(t *testing.T) {
	var stats Statistics
	stats.Add(resultOf(0, map[game.HandPlay]int{game.Win: 2, game.Loss: 2}))
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected consistent statistics, got %v", err)
	}

	var unresolved Statistics
	unresolved.Add(resultOf(0, map[game.HandPlay]int{game.PlayNone: 1}))
	if err := unresolved.Validate(); err == nil {
		t.Error("Expected validation to reject unresolved hands")
	}

	var mismatched Statistics
	mismatched.Add(GameResult{Hands: 3})
	if err := mismatched.Validate(); err == nil {
		t.Error("Expected validation to reject hands without outcomes")
	}
}
