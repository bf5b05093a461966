package match3

// Stage is one step of a cascade pass as a renderer shows it.
type Stage int

const (
	StageSwapped Stage = iota
	StageMatched
	StageRemoved
	StageCollapsed
	StageSpawned
)

func (s Stage) String() string {
	switch s {
	case StageSwapped:
		return "swapped"
	case StageMatched:
		return "matched"
	case StageRemoved:
		return "removed"
	case StageCollapsed:
		return "collapsed"
	case StageSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// Replay rebuilds the intermediate boards of a cascade from its deltas.
// It starts from the board as it was before the swap and, stage by stage,
// ends on the board the engine settled on.
type Replay struct {
	board  *Board
	passes []PassDelta
	pass   int
	stage  Stage
}

// NewReplay applies the swap to a copy of before. before must be the board
// as it was when the swap was attempted.
func NewReplay(before *Board, out SwapOutcome) *Replay {
	b := before.Clone()
	b.Swap(out.A, out.B)
	return &Replay{board: b, passes: out.Cascade.Passes}
}

// Board returns the board at the current stage.
func (r *Replay) Board() *Board {
	return r.board
}

// Stage returns the current stage.
func (r *Replay) Stage() Stage {
	return r.stage
}

// Pass returns the pass being shown, false once all passes are done or
// before the first one starts.
func (r *Replay) Pass() (PassDelta, bool) {
	if r.stage == StageSwapped || r.pass >= len(r.passes) {
		return PassDelta{}, false
	}
	return r.passes[r.pass], true
}

// Highlight returns the cells of the matches while they are being shown.
func (r *Replay) Highlight() []Pos {
	p, ok := r.Pass()
	if !ok || r.stage != StageMatched {
		return nil
	}
	var cells []Pos
	for _, m := range p.Matches {
		cells = append(cells, m.Cells...)
	}
	return cells
}

// Done reports whether every pass has been applied.
func (r *Replay) Done() bool {
	return r.pass >= len(r.passes)
}

// Step advances one stage and returns false when there is nothing left.
func (r *Replay) Step() bool {
	if r.Done() {
		return false
	}

	switch r.stage {
	case StageSwapped, StageSpawned:
		if r.stage == StageSpawned {
			r.pass++
			if r.Done() {
				return false
			}
		}
		r.stage = StageMatched

	case StageMatched:
		for _, id := range r.passes[r.pass].Removed {
			r.board.remove(id)
		}
		r.stage = StageRemoved

	case StageRemoved:
		for _, mv := range r.passes[r.pass].Collapsed {
			r.board.Clear(mv.From)
			r.board.Set(mv.To, mv.ID)
		}
		r.stage = StageCollapsed

	case StageCollapsed:
		for _, sp := range r.passes[r.pass].Spawned {
			r.board.insert(Tile{ID: sp.ID, Symbol: sp.Symbol, Pos: sp.Pos})
		}
		r.stage = StageSpawned
	}
	return true
}
