package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemswap/internal/config"
	"github.com/vovakirdan/gemswap/internal/match3"
	"github.com/vovakirdan/gemswap/internal/storage"
)

var (
	flagSimGames int
	flagSimMoves int
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Autoplay games headless and log every cascade",
	Long: `Play games without a terminal UI, always taking the first available
move. Each pass of every cascade is logged at debug level and a summary per
game at info level. Scores are not saved.

Examples:
  gemswap sim --seed 42
  gemswap sim grand --games 10 --moves 50 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 30, "Maximum moves per game")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("gemswap-sim")
	if err != nil {
		return err
	}

	cfg, variant, err := variantConfig(cmd, args)
	if err != nil {
		return err
	}

	logger.Info("simulating", "variant", variant.ID, "games", flagSimGames, "moves", flagSimMoves)
	stats, err := simulate(cfg, flagSimGames, flagSimMoves, logger)
	if err != nil {
		return err
	}

	fmt.Printf("games %d  moves %d  passes %d  longest cascade %d  best %d\n",
		stats.Games, stats.Moves, stats.Passes, stats.LongestCascade, stats.Best)
	return nil
}

// simStats sums up a simulation run.
type simStats struct {
	Games          int
	Moves          int
	Passes         int
	LongestCascade int
	Best           int
}

// simulate plays games by always taking the hinted move. A fixed seed is
// advanced per game, as the board screen does.
func simulate(cfg config.Match3Config, games, moves int, logger *log.Logger) (simStats, error) {
	var stats simStats

	engineCfg := cfg.ToEngine()
	session, err := match3.NewSession(&storage.MemoryBest{}, engineCfg)
	if err != nil {
		return stats, err
	}

	for game := range games {
		if game > 0 {
			next := engineCfg
			if next.Seed != nil {
				s := *next.Seed + int64(game)
				next.Seed = &s
			}
			if err := session.StartNewGame(next); err != nil {
				return stats, err
			}
		}
		stats.Games++

		for move := range moves {
			a, b, ok := session.HintMove()
			if !ok {
				logger.Info("no moves left", "game", game+1, "move", move)
				break
			}
			res, err := playMove(session, a, b)
			if err != nil && !errors.Is(err, match3.ErrCascadeOverflow) {
				return stats, err
			}

			for _, p := range res.Swap.Cascade.Passes {
				logger.Debug("pass",
					"game", game+1,
					"move", move+1,
					"pass", p.Index+1,
					"matches", len(p.Matches),
					"removed", len(p.Removed),
					"fell", len(p.Collapsed),
					"spawned", len(p.Spawned),
					"score", p.ScoreDelta,
				)
			}
			stats.Moves++
			stats.Passes += len(res.Swap.Cascade.Passes)
			stats.LongestCascade = max(stats.LongestCascade, len(res.Swap.Cascade.Passes))

			if err != nil {
				logger.Warn("cascade overflow, dealing a new board", "game", game+1, "error", err)
				break
			}
			session.Settle()
		}

		logger.Info("game over",
			"game", game+1,
			"score", session.Score(),
			"moves", session.Moves(),
			"best", session.BestScore(),
		)
	}

	stats.Best = session.BestScore()
	return stats, nil
}

// playMove picks a then b. The first pick must select; anything else means
// the session was left locked or holding a selection.
func playMove(session *match3.Session, a, b match3.Pos) (match3.SelectResult, error) {
	first, err := session.SelectTile(a)
	if err != nil {
		return first, err
	}
	if first.Outcome != match3.OutcomeSelected {
		return first, fmt.Errorf("select %v: got %s, want selected", a, first.Outcome)
	}
	return session.SelectTile(b)
}
