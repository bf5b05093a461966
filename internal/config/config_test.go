package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Match3Config
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultMatch3Config()) {
		t.Errorf("embedded default = %+v\nwant %+v", embedded, DefaultMatch3Config())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded default invalid: %v", err)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  grid_size: 8\n  seed: 42\nscoring:\n  base_unit: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3 failed: %v", err)
	}

	if cfg.Board.GridSize != 8 {
		t.Errorf("grid size = %d, want 8", cfg.Board.GridSize)
	}
	if cfg.Board.Seed == nil || *cfg.Board.Seed != 42 {
		t.Errorf("seed = %v, want 42", cfg.Board.Seed)
	}
	if cfg.Scoring.BaseUnit != 5 {
		t.Errorf("base unit = %d, want 5", cfg.Scoring.BaseUnit)
	}
	// Unset keys keep their defaults.
	if cfg.Board.AlphabetSize != 6 || cfg.Scoring.ComboDivisor != 3 {
		t.Errorf("defaults lost: alphabet=%d divisor=%d", cfg.Board.AlphabetSize, cfg.Scoring.ComboDivisor)
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	if _, err := LoadMatch3(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadMatch3(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Match3Config)
		want   string
	}{
		{"default", func(*Match3Config) {}, ""},
		{"small grid", func(c *Match3Config) { c.Board.GridSize = 2 }, "grid_size"},
		{"small alphabet", func(c *Match3Config) { c.Board.AlphabetSize = 3 }, "alphabet_size"},
		{"too few symbols", func(c *Match3Config) { c.Symbols = c.Symbols[:3] }, "symbols"},
		{"zero divisor", func(c *Match3Config) { c.Scoring.ComboDivisor = 0 }, "combo_divisor"},
		{"zero passes", func(c *Match3Config) { c.Limits.MaxCascadePasses = 0 }, "max_cascade_passes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestToEngine(t *testing.T) {
	cfg := DefaultMatch3Config()
	seed := int64(7)
	cfg.Board.Seed = &seed

	eng := cfg.ToEngine()
	if err := eng.Validate(); err != nil {
		t.Fatalf("engine config invalid: %v", err)
	}
	if eng.GridSize != 6 || eng.AlphabetSize != 6 || *eng.Seed != 7 {
		t.Errorf("ToEngine() = %+v", eng)
	}
	if eng.Scoring.BaseUnit != 10 || eng.MaxCascadePasses != 100 {
		t.Errorf("ToEngine() limits/scoring = %+v", eng)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in       string
		alphabet int
	}{
		{"easy", 4},
		{"normal", 6},
		{"hard", 7},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseDifficulty(tc.in)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.in, err)
			}
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, p)
			if cfg.Board.AlphabetSize != tc.alphabet {
				t.Errorf("alphabet = %d, want %d", cfg.Board.AlphabetSize, tc.alphabet)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}

	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("expected error for unknown preset")
	}

	cfg := DefaultMatch3Config()
	ApplyMatch3Preset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Error("empty preset should leave config unchanged")
	}
}

func TestWithVariantThenPreset(t *testing.T) {
	base := DefaultMatch3Config()
	cfg := base.WithVariant(8, 7)
	if cfg.Board.GridSize != 8 || cfg.Board.AlphabetSize != 7 {
		t.Errorf("WithVariant() board = %+v", cfg.Board)
	}
	if base.Board.GridSize != 6 {
		t.Error("WithVariant() modified the receiver")
	}

	ApplyMatch3Preset(&cfg, DifficultyEasy)
	if cfg.Board.GridSize != 8 || cfg.Board.AlphabetSize != 4 {
		t.Errorf("preset after variant: board = %+v", cfg.Board)
	}
}
