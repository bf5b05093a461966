package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemswap/internal/platform/tui"
	"github.com/vovakirdan/gemswap/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: classic).

Controls:
  Arrows/WASD    - Move the cursor
  Space/Enter    - Select a tile; select a neighbour to swap
  Mouse click    - Select the clicked tile
  H              - Show a hint
  N              - New game (the finished game is saved)
  ?              - More keys
  Q/Ctrl+C       - Quit

Difficulty options set the number of symbols:
  easy   - 4 symbols, long cascades
  normal - 6 symbols
  hard   - 7 symbols

Examples:
  gemswap play
  gemswap play mini --difficulty easy
  gemswap play grand --seed 7
  gemswap play --config ./my-gemswap.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("gemswap")
	if err != nil {
		return err
	}

	cfg, variant, err := variantConfig(cmd, args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	// A single board has no menu to go back to; Back ends the game too.
	_, err = tui.Run(tui.GameOptions{
		Config:  cfg,
		Variant: variant,
		Store:   store,
		Player:  localPlayer(),
		Logger:  logger,
	})
	return err
}

// localPlayer names the local user for the scoreboard.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
