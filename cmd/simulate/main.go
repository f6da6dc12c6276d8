package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/simulator"
	"github.com/lox/blackjackforbots/internal/statistics"
)

type CLI struct {
	Config   string `default:"simulate.hcl" help:"HCL configuration file"`
	Games    int    `help:"Number of games to simulate (overrides config)"`
	Player   string `help:"Player type: basic, bystander, hitman, random, adaptive, custom (overrides config)"`
	Strategy string `help:"Strategy table file for a custom player"`
	Decks    int    `help:"Decks per shoe (overrides config)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers  int    `help:"Concurrent games (defaults to CPU count)"`
	Learn    bool   `help:"Print the adaptive player's learned table after the run"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := simulator.LoadFileConfig(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "file", cli.Config, "error", err)
	}
	applyOverrides(cfg, &cli)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	if cli.Seed != 0 {
		cfg.Simulation.Seed = cli.Seed
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	player, err := buildPlayer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build player", "type", cfg.Player.Type, "error", err)
	}

	fmt.Printf("Simulating %d games of %d hands vs %s player (seed: %d)\n",
		cfg.Simulation.Games, cfg.Simulation.HandsPerGame, cfg.Player.Type, cfg.Simulation.Seed)

	sim := simulator.New(simulator.Config{
		Games:         cfg.Simulation.Games,
		HandsPerGame:  cfg.Simulation.HandsPerGame,
		Decks:         cfg.Simulation.Decks,
		Bank:          cfg.Player.Bank,
		Workers:       cfg.Simulation.Workers,
		Seed:          cfg.Simulation.Seed,
		Player:        player,
		Logger:        logger,
		ProgressEvery: 5 * time.Second,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}
	printResults(stats, cfg.Player.Type, time.Since(start))

	if cli.Learn {
		if adaptive, ok := player.(*bot.Adaptive); ok {
			fmt.Printf("\n%s\n%s\n", headerStyle.Render("=== LEARNED STRATEGY ==="), adaptive)
		} else {
			logger.Warn("--learn ignored: player does not learn", "type", cfg.Player.Type)
		}
	}
}

func applyOverrides(cfg *simulator.FileConfig, cli *CLI) {
	if cli.Games > 0 {
		cfg.Simulation.Games = cli.Games
	}
	if cli.Decks > 0 {
		cfg.Simulation.Decks = cli.Decks
	}
	if cli.Workers > 0 {
		cfg.Simulation.Workers = cli.Workers
	}
	if cli.Player != "" {
		cfg.Player.Type = cli.Player
	}
	if cli.Strategy != "" {
		cfg.Player.Strategy = cli.Strategy
	}
}

func buildPlayer(cfg *simulator.FileConfig, logger *log.Logger) (game.Player, error) {
	staking := game.FlatStaking(cfg.Player.Bet)
	rng := randutil.New(cfg.Simulation.Seed)

	switch cfg.Player.Type {
	case "bystander":
		player := bot.NewBystander()
		player.SetStaking(staking)
		return player, nil
	case "basic":
		player := bot.NewBasic()
		player.SetStaking(staking)
		return player, nil
	case "hitman":
		player := bot.NewHitman()
		player.SetStaking(staking)
		return player, nil
	case "random":
		player := bot.NewRandom(rng)
		player.SetStaking(staking)
		return player, nil
	case "adaptive":
		player := bot.NewAdaptive(rng, logger)
		player.SetStaking(staking)
		return player, nil
	case "custom":
		rules, err := bot.ReadStrategyFile(cfg.Player.Strategy)
		if err != nil {
			return nil, err
		}
		player := bot.NewCustom("custom", rules)
		player.SetStaking(staking)
		return player, nil
	default:
		return nil, fmt.Errorf("unknown player type %q", cfg.Player.Type)
	}
}

func printResults(stats *statistics.Statistics, playerType string, duration time.Duration) {
	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()
	gamesPerSec := float64(stats.Games) / duration.Seconds()

	fmt.Printf("\n%s\n", headerStyle.Render(fmt.Sprintf("=== RESULTS: %s player ===", playerType)))
	fmt.Printf("%s %d games, %d hands, %d failures\n",
		labelStyle.Render("Played:"), stats.Games, stats.Hands, stats.Failures)
	fmt.Printf("%s %v (%.0f games/sec)\n",
		labelStyle.Render("Time:"), duration.Round(time.Millisecond), gamesPerSec)

	fmt.Printf("\n%s\n", headerStyle.Render("=== OUTCOMES ==="))
	fmt.Printf("%s %s\n", winStyle.Render("Win:"), outcomeLine(stats, game.Win))
	fmt.Printf("%s %s\n", winStyle.Render("Blackjack:"), outcomeLine(stats, game.Blackjack))
	fmt.Printf("%s %s\n", tieStyle.Render("Tie:"), outcomeLine(stats, game.Tie))
	fmt.Printf("%s %s\n", lossStyle.Render("Loss:"), outcomeLine(stats, game.Loss))
	fmt.Printf("%s %s\n", lossStyle.Render("Bust:"), outcomeLine(stats, game.Bust))
	fmt.Printf("%s %s\n", lossStyle.Render("Wrong:"), outcomeLine(stats, game.Wrong))

	fmt.Printf("\n%s\n", headerStyle.Render("=== CHIPS ==="))
	fmt.Printf("%s %+d chips (%.2f/hand)\n",
		labelStyle.Render("Net:"), stats.NetChips, stats.NetPerHand())
	fmt.Printf("%s %.2f chips/game ± %.2f SE\n",
		labelStyle.Render("Mean:"), mean, stats.StdError())
	fmt.Printf("%s [%.2f, %.2f] chips/game\n", labelStyle.Render("95% CI:"), low, high)
	fmt.Printf("%s %.1f%%\n", labelStyle.Render("Win rate:"), stats.WinRate()*100)
}

func outcomeLine(stats *statistics.Statistics, play game.HandPlay) string {
	return fmt.Sprintf("%d hands (%.1f%%)", stats.Outcomes[play], stats.OutcomeRate(play)*100)
}
