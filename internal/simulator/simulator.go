// Package simulator drives blackjack games at scale: many independent
// dealer/shoe instances playing in parallel against a shared player,
// with results folded into summary statistics. The player is the only
// state shared between games.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games         int           // number of independent games
	HandsPerGame  int           // player hands dealt into each game
	Decks         int           // decks per shoe
	Bank          int           // starting bankroll per hand
	Workers       int           // concurrent games; defaults to GOMAXPROCS
	Seed          int64         // master seed; per-game seeds derive from it
	Player        game.Player   // shared across all games
	Logger        *log.Logger
	Clock         quartz.Clock  // injectable for tests
	ProgressEvery time.Duration // progress log interval, 0 disables
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.HandsPerGame <= 0 {
		out.HandsPerGame = 4
	}
	if out.Decks <= 0 {
		out.Decks = deck.DefaultDeckCount
	}
	if out.Bank <= 0 {
		out.Bank = game.DefaultBank
	}
	if out.Workers <= 0 {
		out.Workers = runtime.GOMAXPROCS(0)
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard)
	}
	if out.Clock == nil {
		out.Clock = quartz.NewReal()
	}
	return out
}

// Simulator runs batches of blackjack games
type Simulator struct {
	config    Config
	completed atomic.Int64
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config.withDefaults()}
}

// Run executes the configured number of games and returns aggregated
// statistics. Game failures are counted, logged and contained; only
// engine-level misconfiguration (no player, no games) or context
// cancellation fail the run.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if cfg.Player == nil {
		return nil, fmt.Errorf("simulator: no player configured")
	}
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", cfg.Games)
	}

	// Seeds are drawn up front from the master seed so results do not
	// depend on scheduling.
	master := randutil.New(cfg.Seed)
	seeds := make([]int64, cfg.Games)
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	stop := s.startProgress(ctx)
	defer stop()

	workers := cfg.Workers
	if workers > len(seeds) {
		workers = len(seeds)
	}

	g, ctx := errgroup.WithContext(ctx)
	perWorker := make([]*statistics.Statistics, workers)
	for w := 0; w < workers; w++ {
		perWorker[w] = &statistics.Statistics{}
		g.Go(func() error {
			for i := w; i < len(seeds); i += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				perWorker[w].Add(s.playGame(seeds[i]))
				s.completed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, ws := range perWorker {
		stats.Merge(ws)
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}

	cfg.Logger.Info("simulation complete",
		"games", stats.Games, "hands", stats.Hands, "failures", stats.Failures,
		"net", stats.NetChips)

	return stats, nil
}

// playGame plays one complete game with a fresh dealer and shoe. The
// shoe shuffle is the only use of the per-game source, so a game is
// replayable from its seed for a fixed player.
func (s *Simulator) playGame(seed int64) statistics.GameResult {
	cfg := s.config

	shoe := deck.NewShoeWithRand(cfg.Decks, randutil.New(seed))
	dealer := game.NewDealer(shoe, cfg.Logger)

	hands := make([]*game.Hand, cfg.HandsPerGame)
	for i := range hands {
		hands[i] = cfg.Player.BeginPlay(cfg.Bank)
	}

	played, err := dealer.Play(hands)
	if err != nil {
		// Contained: one broken game must not take down the batch.
		cfg.Logger.Error("game failed", "seed", seed, "error", err)
		return statistics.GameResult{Seed: seed, Failed: true}
	}

	result := statistics.GameResult{Seed: seed, Hands: len(played)}
	for _, hand := range played {
		result.Outcomes[hand.Play()]++
		result.NetChips += hand.Bank()
	}
	// Split hands were bankrolled out of their parents, so the
	// original stake base is just the dealt hands.
	result.NetChips -= cfg.HandsPerGame * cfg.Bank

	return result
}

// Completed returns the number of games finished so far
func (s *Simulator) Completed() int64 {
	return s.completed.Load()
}

func (s *Simulator) startProgress(ctx context.Context) func() {
	cfg := s.config
	if cfg.ProgressEvery <= 0 {
		return func() {}
	}

	tickCtx, cancel := context.WithCancel(ctx)
	start := cfg.Clock.Now("progress")
	waiter := cfg.Clock.TickerFunc(tickCtx, cfg.ProgressEvery, func() error {
		done := s.completed.Load()
		elapsed := cfg.Clock.Since(start, "progress")
		rate := float64(done) / elapsed.Seconds()
		cfg.Logger.Info("simulating",
			"completed", done, "total", cfg.Games, "games/sec", fmt.Sprintf("%.0f", rate))
		return nil
	}, "progress")

	return func() {
		cancel()
		_ = waiter.Wait()
	}
}
