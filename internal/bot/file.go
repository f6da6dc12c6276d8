package bot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/blackjackforbots/internal/game"
)

// ReadStrategyFile loads a strategy-table file into a rule map.
func ReadStrategyFile(path string) (map[string]game.HandMove, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy file: %w", err)
	}
	return ParseStrategy(string(text))
}

// WriteStrategyFile writes a rule map as strategy-table text, atomically:
// the table lands in a temp file first and is renamed into place, so a
// reader sees either the old table or the new one, never a torn row.
func WriteStrategyFile(path string, rules map[string]game.HandMove) error {
	dir := filepath.Dir(path)

	// Same directory as the target, cross-filesystem renames are not
	// atomic.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(FormatStrategy(rules) + "\n"); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	tmp = nil
	return nil
}
