package config

import "fmt"

// ParseDifficulty maps a flag value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// AlphabetForPreset returns the number of distinct symbols for a preset.
// Fewer symbols means more matches and longer cascades.
func AlphabetForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// An empty preset leaves the config alone.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Board.AlphabetSize = AlphabetForPreset(preset)

	// Short animation on easy boards, which cascade more.
	switch preset {
	case DifficultyEasy:
		cfg.Cascade.StepTicks = 3
	case DifficultyHard:
		cfg.Cascade.StepTicks = 5
	}
}
