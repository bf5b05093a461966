package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemswap/internal/registry"
	"github.com/vovakirdan/gemswap/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board variant",
	Long: `Display the top 10 finished games and the best score for a variant
(default: classic).

Examples:
  gemswap scores
  gemswap scores grand
  gemswap scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the variant's scores")
}

func runScores(_ *cobra.Command, args []string) error {
	id := registry.DefaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	v, err := registry.Get(id)
	if err != nil {
		return fmt.Errorf("%w (run 'gemswap list' to see variants)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(v.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", v.Title)
		return nil
	}

	games, err := store.TopScores(v.ID, 10)
	if err != nil {
		return err
	}
	stats, err := store.GetVariantStats(v.ID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", v.Title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gemswap play %s' to set the first high score!\n", v.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "Rank", "Score", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "----", "-----", "-----", "------", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-8d  %-5d  %-16s  %s\n", i+1, g.Score, g.Moves, g.Player, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.BestScore, stats.GamesCount, stats.AvgScore)
	return nil
}
