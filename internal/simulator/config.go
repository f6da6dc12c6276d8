package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the on-disk simulation configuration
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Player     PlayerSettings     `hcl:"player,block"`
}

// SimulationSettings controls the shape of a batch run
type SimulationSettings struct {
	Games        int   `hcl:"games,optional"`
	HandsPerGame int   `hcl:"hands_per_game,optional"`
	Decks        int   `hcl:"decks,optional"`
	Workers      int   `hcl:"workers,optional"`
	Seed         int64 `hcl:"seed,optional"`
}

// PlayerSettings selects and parameterises the playing strategy
type PlayerSettings struct {
	Type     string `hcl:"type,optional"`
	Bank     int    `hcl:"bank,optional"`
	Bet      int    `hcl:"bet,optional"`
	Strategy string `hcl:"strategy,optional"` // path to a strategy-table file for type "custom"
}

// DefaultFileConfig returns default simulation configuration
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Games:        100000,
			HandsPerGame: 4,
			Decks:        4,
		},
		Player: PlayerSettings{
			Type: "basic",
			Bank: 1000,
			Bet:  250,
		},
	}
}

// LoadFileConfig loads simulation configuration from an HCL file,
// falling back to defaults when the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultFileConfig()
	if config.Simulation.Games == 0 {
		config.Simulation.Games = defaults.Simulation.Games
	}
	if config.Simulation.HandsPerGame == 0 {
		config.Simulation.HandsPerGame = defaults.Simulation.HandsPerGame
	}
	if config.Simulation.Decks == 0 {
		config.Simulation.Decks = defaults.Simulation.Decks
	}
	if config.Player.Type == "" {
		config.Player.Type = defaults.Player.Type
	}
	if config.Player.Bank == 0 {
		config.Player.Bank = defaults.Player.Bank
	}
	if config.Player.Bet == 0 {
		config.Player.Bet = defaults.Player.Bet
	}

	return &config, nil
}

// Validate validates the simulation configuration
func (c *FileConfig) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("games must be positive")
	}
	if c.Simulation.HandsPerGame <= 0 {
		return fmt.Errorf("hands_per_game must be positive")
	}
	if c.Simulation.Decks <= 0 {
		return fmt.Errorf("decks must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	// A four-deck shoe against too many starting hands can run dry;
	// keep a conservative margin of cards per hand plus the dealer.
	if maxCards := (c.Simulation.HandsPerGame*2 + 1) * 11; maxCards > c.Simulation.Decks*52 {
		return fmt.Errorf("%d hands can exhaust a %d-deck shoe", c.Simulation.HandsPerGame, c.Simulation.Decks)
	}

	validTypes := map[string]bool{
		"basic":     true,
		"bystander": true,
		"hitman":    true,
		"random":    true,
		"adaptive":  true,
		"custom":    true,
	}
	if !validTypes[c.Player.Type] {
		return fmt.Errorf("invalid player type: %s", c.Player.Type)
	}
	if c.Player.Type == "custom" && c.Player.Strategy == "" {
		return fmt.Errorf("player type custom requires a strategy file")
	}

	if c.Player.Bank <= 0 {
		return fmt.Errorf("bank must be positive")
	}
	if c.Player.Bet <= 0 || c.Player.Bet > c.Player.Bank {
		return fmt.Errorf("bet must be positive and within the bank")
	}

	return nil
}
