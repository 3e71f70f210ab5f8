package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/readyscope/readyscope/pkg/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Case.DiscountRate != 0.10 {
		t.Errorf("expected default discount rate 0.10, got %v", cfg.Case.DiscountRate)
	}
	if len(cfg.Scoring.Bands) != 0 {
		t.Errorf("expected no band overrides, got %v", cfg.Scoring.Bands)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
scoring:
  weights:
    data_maturity: 0.20
    governance_ethics: 0.03
  bands:
    - min: 80
      label: Go
    - min: 0
      label: No-Go
case:
  discount_rate: 0.12
  industry: healthcare
  budget: 2500000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.Weights["data_maturity"] != 0.20 {
		t.Errorf("weight override not applied: %v", cfg.Scoring.Weights)
	}
	if len(cfg.Scoring.Bands) != 2 || cfg.Scoring.Bands[0].Label != "Go" {
		t.Errorf("band override not applied: %v", cfg.Scoring.Bands)
	}
	if cfg.Case.DiscountRate != 0.12 || cfg.Case.Industry != "healthcare" {
		t.Errorf("case config not applied: %+v", cfg.Case)
	}
	if len(cfg.EngineOptions()) != 2 {
		t.Errorf("expected weight and band engine options")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scoring: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindConfigFileWalksParents(t *testing.T) {
	root := t.TempDir()
	cfgDir := filepath.Join(root, ".readyscope")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := config.FindConfigFile(nested); got != cfgPath {
		t.Errorf("FindConfigFile() = %q, want %q", got, cfgPath)
	}
	if got := config.FindConfigFile(t.TempDir()); got != "" {
		t.Errorf("expected no config found, got %q", got)
	}
}
