package bot

import (
	"path/filepath"
	"testing"
)

func TestStrategyFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.strategy")
	basic := NewBasic()

	if err := WriteStrategyFile(path, basic.Rules()); err != nil {
		t.Fatalf("WriteStrategyFile failed: %v", err)
	}

	rules, err := ReadStrategyFile(path)
	if err != nil {
		t.Fatalf("ReadStrategyFile failed: %v", err)
	}

	again := NewCustom("again", rules)
	if again.String() != basic.String() {
		t.Error("Strategy file round trip should be exact")
	}
}

func TestReadStrategyFileMissing(t *testing.T) {
	if _, err := ReadStrategyFile(filepath.Join(t.TempDir(), "nope.strategy")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
