package match3

import (
	"errors"
	"fmt"
)

// BestScoreStore persists the best score across games and runs.
type BestScoreStore interface {
	Load() (int, error)
	Save(best int) error
}

// Config holds the parameters of one game.
type Config struct {
	GridSize              int
	AlphabetSize          int
	Seed                  *int64 // nil picks a fresh seed per game
	Scoring               ScoringPolicy
	MaxGenerationAttempts int
	MaxCascadePasses      int
}

// DefaultConfig returns the 6×6 board with six symbols.
func DefaultConfig() Config {
	return Config{
		GridSize:              6,
		AlphabetSize:          6,
		Scoring:               DefaultScoringPolicy(),
		MaxGenerationAttempts: DefaultMaxGenerationAttempts,
		MaxCascadePasses:      DefaultMaxCascadePasses,
	}
}

// Validate checks the config bounds.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < 3 {
		errs = append(errs, fmt.Errorf("grid size %d, want >= 3", c.GridSize))
	}
	if c.AlphabetSize < 4 {
		errs = append(errs, fmt.Errorf("alphabet size %d, want >= 4", c.AlphabetSize))
	}
	if c.Scoring.BaseUnit < 0 {
		errs = append(errs, fmt.Errorf("negative base unit %d", c.Scoring.BaseUnit))
	}
	if c.MaxGenerationAttempts < 0 || c.MaxCascadePasses < 0 {
		errs = append(errs, errors.New("negative limits"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("match3: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Outcome classifies the result of SelectTile.
type Outcome int

const (
	// OutcomeSelected: the tile became the pending first half of a swap.
	OutcomeSelected Outcome = iota
	// OutcomeDeselected: the selected tile was picked again and cleared.
	OutcomeDeselected
	// OutcomeInvalidSelection: the position is off the board.
	OutcomeInvalidSelection
	// OutcomeBusy: a cascade is still being shown; call Settle first.
	OutcomeBusy
	// OutcomeInvalidSwap: the two tiles are not neighbours.
	OutcomeInvalidSwap
	// OutcomeNoEffect: the swap made no match and was reverted.
	OutcomeNoEffect
	// OutcomeCascade: the swap made a match and the cascade was resolved.
	OutcomeCascade
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeInvalidSelection:
		return "invalid_selection"
	case OutcomeBusy:
		return "session_busy"
	case OutcomeInvalidSwap:
		return "invalid_swap"
	case OutcomeNoEffect:
		return "no_effect"
	case OutcomeCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// Rejected reports whether the action was refused without any state change.
func (o Outcome) Rejected() bool {
	return o == OutcomeInvalidSelection || o == OutcomeBusy || o == OutcomeInvalidSwap
}

// SelectResult describes what a SelectTile call did.
type SelectResult struct {
	Outcome Outcome
	Pos     Pos
	Swap    SwapOutcome // Set for the swap outcomes
	Score   int         // Score after the action
	Best    int         // Best score after the action
	NewBest bool        // Best score was raised (and saved) by this action
}

// Session is one player's game: the board plus score, best score,
// selection and the busy lock. It is not safe for concurrent use.
type Session struct {
	cfg    Config
	store  BestScoreStore
	engine *Engine

	score       int
	best        int
	selected    Pos
	hasSelected bool
	locked      bool
	moves       int
	games       int
}

// NewSession loads the best score from store and starts a first game.
// A nil store keeps the best score in memory only.
func NewSession(store BestScoreStore, cfg Config) (*Session, error) {
	s := &Session{store: store}
	if store != nil {
		best, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("match3: load best score: %w", err)
		}
		s.best = best
	}
	if err := s.StartNewGame(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// StartNewGame throws the board away and generates a fresh one.
// Score, selection and lock reset; the best score is kept.
// An invalid config is a caller bug and panics.
func (s *Session) StartNewGame(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	rng := NewSource(cfg.Seed)
	b, err := Generate(cfg.GridSize, cfg.AlphabetSize, rng, cfg.MaxGenerationAttempts)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.engine = NewEngine(b, rng, cfg.AlphabetSize, cfg.Scoring, cfg.MaxCascadePasses)
	s.score = 0
	s.hasSelected = false
	s.locked = false
	s.moves = 0
	s.games++
	return nil
}

// SelectTile is the only player action.
// The first call selects a tile, picking it again deselects it, and picking
// another tile attempts a swap and clears the selection whatever happens.
// After a cascade the session stays locked until Settle.
//
// The error is non-nil only for ErrCascadeOverflow, a failed best-score
// save, or both joined; the returned result is valid in every case.
func (s *Session) SelectTile(p Pos) (SelectResult, error) {
	res := SelectResult{Pos: p, Score: s.score, Best: s.best}

	switch {
	case s.locked:
		res.Outcome = OutcomeBusy
		return res, nil
	case !s.engine.Board().InBounds(p):
		res.Outcome = OutcomeInvalidSelection
		return res, nil
	case !s.hasSelected:
		s.selected, s.hasSelected = p, true
		res.Outcome = OutcomeSelected
		return res, nil
	case s.selected == p:
		s.hasSelected = false
		res.Outcome = OutcomeDeselected
		return res, nil
	}

	first := s.selected
	s.hasSelected = false

	swap, err := s.engine.AttemptSwap(first, p)
	res.Swap = swap
	switch swap.Kind {
	case SwapInvalid:
		res.Outcome = OutcomeInvalidSwap
		return res, nil
	case SwapNoEffect:
		res.Outcome = OutcomeNoEffect
		return res, nil
	}

	res.Outcome = OutcomeCascade
	s.moves++
	s.locked = true
	s.score += swap.Cascade.Score
	res.Score = s.score

	// Passes scored before an overflow still count toward the best score.
	errs := []error{err}
	if s.score > s.best {
		s.best = s.score
		res.Best = s.best
		res.NewBest = true
		if s.store != nil {
			if err := s.store.Save(s.best); err != nil {
				errs = append(errs, fmt.Errorf("match3: save best score: %w", err))
			}
		}
	}
	return res, errors.Join(errs...)
}

// Settle clears the lock once the renderer has shown the last cascade.
func (s *Session) Settle() {
	s.locked = false
}

// HintMove returns a swap that would make a match, if any.
func (s *Session) HintMove() (Pos, Pos, bool) {
	return FindMove(s.engine.Board())
}

// Stuck reports whether no swap can make a match.
func (s *Session) Stuck() bool {
	_, _, ok := s.HintMove()
	return !ok
}

// Score returns the current game's score.
func (s *Session) Score() int {
	return s.score
}

// BestScore returns the best score seen, including earlier games.
func (s *Session) BestScore() int {
	return s.best
}

// Selected returns the pending selection.
func (s *Session) Selected() (Pos, bool) {
	return s.selected, s.hasSelected
}

// Locked reports whether a cascade is waiting to be settled.
func (s *Session) Locked() bool {
	return s.locked
}

// Moves returns the number of swaps that triggered a cascade this game.
func (s *Session) Moves() int {
	return s.moves
}

// Config returns the config of the current game.
func (s *Session) Config() Config {
	return s.cfg
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.engine.Board().Clone()
}

// Snapshot captures the session state for determinism checks and display.
type Snapshot struct {
	Game     int
	Moves    int
	Score    int
	Best     int
	Board    [][]Symbol
	Selected *Pos
	Locked   bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Game:   s.games,
		Moves:  s.moves,
		Score:  s.score,
		Best:   s.best,
		Board:  s.engine.Board().Symbols(),
		Locked: s.locked,
	}
	if s.hasSelected {
		p := s.selected
		snap.Selected = &p
	}
	return snap
}
