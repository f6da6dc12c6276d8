// Package statistics aggregates the results of simulated blackjack
// games into summary measures: outcome tallies, net chip flow, and the
// usual mean/deviation/confidence numbers over per-game nets.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjackforbots/internal/game"
)

// GameResult is the outcome of one complete game: how every hand
// resolved and the player side's net chip movement.
type GameResult struct {
	Seed     int64 // RNG seed for this game (for replay)
	Hands    int   // hands played, split hands included
	NetChips int   // player chips won (positive) or lost (negative)
	Outcomes [game.HandPlayCount]int
	Failed   bool // the game aborted on an engine error
}

// Statistics accumulates game results. It is not safe for concurrent
// use; workers keep their own and Merge at the end.
type Statistics struct {
	Games    int
	Hands    int
	Failures int
	NetChips int
	Outcomes [game.HandPlayCount]int

	sum  float64 // per-game nets
	sum2 float64 // sum of squares for variance
}

// Add incorporates one game result
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.Failed {
		s.Failures++
		return
	}

	s.Hands += result.Hands
	s.NetChips += result.NetChips
	for play, n := range result.Outcomes {
		s.Outcomes[play] += n
	}

	net := float64(result.NetChips)
	s.sum += net
	s.sum2 += net * net
}

// Merge folds another accumulator into this one
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Hands += other.Hands
	s.Failures += other.Failures
	s.NetChips += other.NetChips
	for play, n := range other.Outcomes {
		s.Outcomes[play] += n
	}
	s.sum += other.sum
	s.sum2 += other.sum2
}

func (s *Statistics) completed() int {
	return s.Games - s.Failures
}

// Mean returns the average net chips per completed game
func (s *Statistics) Mean() float64 {
	if s.completed() == 0 {
		return 0
	}
	return s.sum / float64(s.completed())
}

// Variance returns the sample variance of per-game nets
func (s *Statistics) Variance() float64 {
	n := s.completed()
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation of per-game nets
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.completed() == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.completed()))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// mean net per game
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// OutcomeRate returns the fraction of hands that resolved with the
// given outcome
func (s *Statistics) OutcomeRate(play game.HandPlay) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Outcomes[play]) / float64(s.Hands)
}

// WinRate returns the fraction of hands won, naturals included
func (s *Statistics) WinRate() float64 {
	return s.OutcomeRate(game.Win) + s.OutcomeRate(game.Blackjack)
}

// NetPerHand returns the average net chips per hand
func (s *Statistics) NetPerHand() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.NetChips) / float64(s.Hands)
}

// Validate checks internal consistency: every played hand must carry a
// terminal outcome.
func (s *Statistics) Validate() error {
	resolved := 0
	for play, n := range s.Outcomes {
		if game.HandPlay(play) != game.PlayNone {
			resolved += n
		}
	}
	if resolved != s.Hands {
		return fmt.Errorf("statistics: %d hands but %d resolved outcomes", s.Hands, resolved)
	}
	if s.Outcomes[game.PlayNone] != 0 {
		return fmt.Errorf("statistics: %d hands left unresolved", s.Outcomes[game.PlayNone])
	}
	if s.Failures > s.Games {
		return fmt.Errorf("statistics: %d failures exceed %d games", s.Failures, s.Games)
	}
	return nil
}
