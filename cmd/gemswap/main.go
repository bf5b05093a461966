// gemswap is a swap-and-cascade tile puzzle for the terminal.
//
// Usage:
//
//	gemswap list              - List board variants
//	gemswap play [variant]    - Play a board
//	gemswap menu              - Pick boards interactively
//	gemswap sim [variant]     - Autoplay a game headless and log the cascades
//	gemswap serve             - Start SSH server for remote play
//	gemswap scores [variant]  - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.gemswap/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemswap/internal/config"
	"github.com/vovakirdan/gemswap/internal/logging"
	"github.com/vovakirdan/gemswap/internal/platform/tui"
	"github.com/vovakirdan/gemswap/internal/registry"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemswap",
	Short: "gemswap - swap tiles, match three, watch them cascade",
	Long: `gemswap is a terminal tile puzzle. Swap two neighbouring tiles to
line up three or more of a kind; matched tiles vanish, the rest fall and
new tiles drop in, which can set off further matches.

Available commands:
  list     - Show the board variants
  play     - Play a board directly
  menu     - Interactive board picker
  sim      - Headless autoplay that logs every cascade
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gemswap play
  gemswap play grand --difficulty easy
  gemswap sim --seed 42 --log-level debug
  gemswap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (unset = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemswap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the stderr logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	lvl, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(os.Stderr, lvl, prefix), nil
}

// baseConfig loads the YAML config and applies --seed.
func baseConfig(cmd *cobra.Command) (config.Match3Config, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Match3Config{}, "", err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return config.Match3Config{}, "", err
	}
	if cmd.Flags().Changed("seed") {
		seed := flagSeed
		cfg.Board.Seed = &seed
	}
	return cfg, preset, nil
}

// variantConfig resolves a variant argument and sizes the config for it.
func variantConfig(cmd *cobra.Command, args []string) (config.Match3Config, registry.Variant, error) {
	id := registry.DefaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	v, err := registry.Get(id)
	if err != nil {
		return config.Match3Config{}, registry.Variant{}, fmt.Errorf("%w (run 'gemswap list' to see variants)", err)
	}

	base, preset, err := baseConfig(cmd)
	if err != nil {
		return config.Match3Config{}, registry.Variant{}, err
	}

	cfg := tui.GameConfig(base, v, preset)
	if err := cfg.Validate(); err != nil {
		return config.Match3Config{}, registry.Variant{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, v, nil
}
