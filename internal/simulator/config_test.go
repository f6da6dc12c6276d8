package simulator

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulate.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFileConfigMissing(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Missing file should load defaults, got %v", err)
	}
	if cfg.Simulation.Games != 100000 {
		t.Errorf("Expected default 100000 games, got %d", cfg.Simulation.Games)
	}
	if cfg.Player.Type != "basic" {
		t.Errorf("Expected default basic player, got %q", cfg.Player.Type)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  games = 5000
  hands_per_game = 2
  decks = 6
  seed = 42
}

player {
  type = "adaptive"
  bank = 2000
  bet = 100
}
`)

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig failed: %v", err)
	}

	if cfg.Simulation.Games != 5000 {
		t.Errorf("Expected 5000 games, got %d", cfg.Simulation.Games)
	}
	if cfg.Simulation.HandsPerGame != 2 {
		t.Errorf("Expected 2 hands per game, got %d", cfg.Simulation.HandsPerGame)
	}
	if cfg.Simulation.Decks != 6 {
		t.Errorf("Expected 6 decks, got %d", cfg.Simulation.Decks)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Player.Type != "adaptive" {
		t.Errorf("Expected adaptive player, got %q", cfg.Player.Type)
	}
	if cfg.Player.Bank != 2000 || cfg.Player.Bet != 100 {
		t.Errorf("Expected bank 2000 and bet 100, got %d and %d", cfg.Player.Bank, cfg.Player.Bet)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoadFileConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  games = 100
}

player {}
`)

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig failed: %v", err)
	}
	if cfg.Simulation.Decks != 4 {
		t.Errorf("Expected default 4 decks, got %d", cfg.Simulation.Decks)
	}
	if cfg.Player.Bet != 250 {
		t.Errorf("Expected default bet 250, got %d", cfg.Player.Bet)
	}
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := writeConfig(t, "simulation { games = }")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("Expected an error for malformed HCL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *FileConfig)
	}{
		{"zero games", func(cfg *FileConfig) { cfg.Simulation.Games = 0 }},
		{"negative workers", func(cfg *FileConfig) { cfg.Simulation.Workers = -1 }},
		{"shoe exhaustion", func(cfg *FileConfig) { cfg.Simulation.HandsPerGame = 20; cfg.Simulation.Decks = 1 }},
		{"unknown player", func(cfg *FileConfig) { cfg.Player.Type = "psychic" }},
		{"custom without strategy", func(cfg *FileConfig) { cfg.Player.Type = "custom" }},
		{"bet above bank", func(cfg *FileConfig) { cfg.Player.Bet = 5000 }},
		{"zero bank", func(cfg *FileConfig) { cfg.Player.Bank = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFileConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}
