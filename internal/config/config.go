// Package config provides YAML-based configuration loading and difficulty
// presets for gemswap.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gemswap/internal/match3"
)

// Match3Config contains all configuration for a game of gemswap.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Limits  LimitsConfig  `yaml:"limits"`
	Symbols []SymbolStyle `yaml:"symbols"`
	Cascade CascadeConfig `yaml:"cascade"`
}

// BoardConfig defines the grid parameters.
type BoardConfig struct {
	GridSize     int    `yaml:"grid_size"`
	AlphabetSize int    `yaml:"alphabet_size"`
	Seed         *int64 `yaml:"seed"` // null = fresh seed per game
}

// ScoringConfig defines the scoring constants.
type ScoringConfig struct {
	BaseUnit     int `yaml:"base_unit"`     // Points per counted tile
	ComboDivisor int `yaml:"combo_divisor"` // Counted tiles per combo step
}

// LimitsConfig bounds generation retries and cascade length.
type LimitsConfig struct {
	MaxGenerationAttempts int `yaml:"max_generation_attempts"`
	MaxCascadePasses      int `yaml:"max_cascade_passes"`
}

// SymbolStyle is how one symbol is drawn.
type SymbolStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"` // lipgloss color, e.g. "196" or "#ff0000"
}

// CascadeConfig controls the pass animation in the TUI.
type CascadeConfig struct {
	StepTicks int `yaml:"step_ticks"` // Ticks per animation stage
}

// Validate checks the config and returns every problem found.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.GridSize < 3 {
		errs = append(errs, fmt.Errorf("board.grid_size must be >= 3, got %d", c.Board.GridSize))
	}
	if c.Board.AlphabetSize < 4 {
		errs = append(errs, fmt.Errorf("board.alphabet_size must be >= 4, got %d", c.Board.AlphabetSize))
	}
	if len(c.Symbols) < c.Board.AlphabetSize {
		errs = append(errs, fmt.Errorf("symbols: %d styles for %d symbols", len(c.Symbols), c.Board.AlphabetSize))
	}
	if c.Scoring.BaseUnit <= 0 {
		errs = append(errs, fmt.Errorf("scoring.base_unit must be > 0, got %d", c.Scoring.BaseUnit))
	}
	if c.Scoring.ComboDivisor <= 0 {
		errs = append(errs, fmt.Errorf("scoring.combo_divisor must be > 0, got %d", c.Scoring.ComboDivisor))
	}
	if c.Limits.MaxGenerationAttempts <= 0 {
		errs = append(errs, errors.New("limits.max_generation_attempts must be > 0"))
	}
	if c.Limits.MaxCascadePasses <= 0 {
		errs = append(errs, errors.New("limits.max_cascade_passes must be > 0"))
	}
	if c.Cascade.StepTicks < 0 {
		errs = append(errs, errors.New("cascade.step_ticks must not be negative"))
	}
	return errors.Join(errs...)
}

// ToEngine converts the config to the engine's game parameters.
func (c Match3Config) ToEngine() match3.Config {
	return match3.Config{
		GridSize:     c.Board.GridSize,
		AlphabetSize: c.Board.AlphabetSize,
		Seed:         c.Board.Seed,
		Scoring: match3.ScoringPolicy{
			BaseUnit:     c.Scoring.BaseUnit,
			ComboDivisor: c.Scoring.ComboDivisor,
		},
		MaxGenerationAttempts: c.Limits.MaxGenerationAttempts,
		MaxCascadePasses:      c.Limits.MaxCascadePasses,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// WithVariant returns a copy of c sized for a board variant.
func (c Match3Config) WithVariant(gridSize, alphabetSize int) Match3Config {
	c.Board.GridSize = gridSize
	c.Board.AlphabetSize = alphabetSize
	return c
}
