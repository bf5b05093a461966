package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemswap/internal/platform/tui"
	"github.com/vovakirdan/gemswap/internal/registry"
	"github.com/vovakirdan/gemswap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start gemswap in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a board, Tab for the
scoreboard. Leaving a board with Esc returns to the menu.

Examples:
  gemswap menu
  gemswap menu --difficulty hard
  gemswap menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("gemswap")
	if err != nil {
		return err
	}

	base, preset, err := baseConfig(cmd)
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

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	for {
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			v, err := registry.Get(result.VariantID)
			if err != nil {
				return err
			}
			back, err := tui.Run(tui.GameOptions{
				Config:  tui.GameConfig(base, v, preset),
				Variant: v,
				Store:   store,
				Player:  localPlayer(),
				Logger:  logger,
			})
			if err != nil {
				logger.Error("game failed", "variant", v.ID, "error", err)
				continue
			}
			if !back {
				return nil
			}
		}
	}
}
