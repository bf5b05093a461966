package match3

import "fmt"

// DefaultMaxCascadePasses caps the passes of a single cascade.
const DefaultMaxCascadePasses = 100

// CascadeState is a state of the cascade resolver.
type CascadeState int

const (
	StateIdle CascadeState = iota
	StateScanning
	StateRemoving
	StateCollapsing
	StateRefilling
)

func (s CascadeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateRemoving:
		return "removing"
	case StateCollapsing:
		return "collapsing"
	case StateRefilling:
		return "refilling"
	default:
		return "unknown"
	}
}

// TileMove is a surviving tile falling from one cell to another.
type TileMove struct {
	ID   TileID
	From Pos
	To   Pos
}

// Spawn is a new tile created by a refill.
type Spawn struct {
	ID     TileID
	Symbol Symbol
	Pos    Pos
}

// PassDelta describes one remove/collapse/refill pass, in the order a
// renderer should animate it.
type PassDelta struct {
	Index      int
	Matches    []Match
	Removed    []TileID
	Collapsed  []TileMove
	Spawned    []Spawn
	ScoreDelta int
}

// CascadeResult is every pass of one cascade, ending when the board is stable.
type CascadeResult struct {
	Passes []PassDelta
	Score  int
}

// Removed returns the number of tiles removed over all passes.
func (r CascadeResult) Removed() int {
	n := 0
	for _, p := range r.Passes {
		n += len(p.Removed)
	}
	return n
}

// Resolver drives the scan, remove, collapse, refill loop on a board.
type Resolver struct {
	Board     *Board
	RNG       Source
	Alphabet  int
	Scoring   ScoringPolicy
	MaxPasses int

	// OnState, if set, is called on every state entered.
	OnState func(CascadeState)
}

func (r *Resolver) enter(s CascadeState) {
	if r.OnState != nil {
		r.OnState(s)
	}
}

// Resolve runs passes until a scan finds no match.
// On a board without matches it returns an empty result.
// Returns ErrCascadeOverflow if the board has not settled after MaxPasses.
func (r *Resolver) Resolve() (CascadeResult, error) {
	maxPasses := r.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxCascadePasses
	}

	var res CascadeResult
	var pass PassDelta
	state := StateScanning

	for {
		r.enter(state)

		switch state {
		case StateScanning:
			matches := FindMatches(r.Board)
			if len(matches) == 0 {
				state = StateIdle
				continue
			}
			if len(res.Passes) >= maxPasses {
				return res, fmt.Errorf("%w after %d passes", ErrCascadeOverflow, maxPasses)
			}
			pass = PassDelta{Index: len(res.Passes), Matches: matches}
			state = StateRemoving

		case StateRemoving:
			pass.Removed = RemovalSet(pass.Matches)
			for _, id := range pass.Removed {
				r.Board.setMatched(id, true)
			}
			for _, id := range pass.Removed {
				r.Board.remove(id)
			}
			pass.ScoreDelta = r.Scoring.ScoreForPass(pass.Matches)
			res.Score += pass.ScoreDelta
			state = StateCollapsing

		case StateCollapsing:
			pass.Collapsed = collapse(r.Board)
			state = StateRefilling

		case StateRefilling:
			pass.Spawned = refill(r.Board, r.Alphabet, r.RNG)
			res.Passes = append(res.Passes, pass)
			state = StateScanning

		case StateIdle:
			return res, nil
		}
	}
}

// collapse compacts every column toward the bottom, keeping the top-to-bottom
// order of the surviving tiles. Vacated cells end up at the top.
func collapse(b *Board) []TileMove {
	var moves []TileMove
	n := b.Size()
	for c := range n {
		write := n - 1
		for r := n - 1; r >= 0; r-- {
			from := P(r, c)
			t, ok := b.Get(from)
			if !ok {
				continue
			}
			if r != write {
				to := P(write, c)
				b.Clear(from)
				b.Set(to, t.ID)
				moves = append(moves, TileMove{ID: t.ID, From: from, To: to})
			}
			write--
		}
	}
	return moves
}

// refill spawns a random tile in every empty cell, top row first.
func refill(b *Board, alphabet int, rng Source) []Spawn {
	var spawned []Spawn
	n := b.Size()
	for r := range n {
		for c := range n {
			p := P(r, c)
			if _, ok := b.Get(p); ok {
				continue
			}
			t := b.Spawn(p, Symbol(rng.IntN(alphabet)))
			spawned = append(spawned, Spawn{ID: t.ID, Symbol: t.Symbol, Pos: p})
		}
	}
	return spawned
}
