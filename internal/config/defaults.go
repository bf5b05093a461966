package config

import (
	_ "embed"

	"github.com/vovakirdan/gemswap/internal/match3"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded default configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			GridSize:     6,
			AlphabetSize: 6,
		},
		Scoring: ScoringConfig{
			BaseUnit:     match3.DefaultBaseUnit,
			ComboDivisor: match3.DefaultComboDivisor,
		},
		Limits: LimitsConfig{
			MaxGenerationAttempts: match3.DefaultMaxGenerationAttempts,
			MaxCascadePasses:      match3.DefaultMaxCascadePasses,
		},
		Symbols: []SymbolStyle{
			{Glyph: "●", Color: "196"},
			{Glyph: "▲", Color: "46"},
			{Glyph: "◆", Color: "33"},
			{Glyph: "■", Color: "226"},
			{Glyph: "★", Color: "201"},
			{Glyph: "♥", Color: "208"},
			{Glyph: "♣", Color: "51"},
			{Glyph: "✚", Color: "255"},
		},
		Cascade: CascadeConfig{
			StepTicks: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMatch3YAML
}
