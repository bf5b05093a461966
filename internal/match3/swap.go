package match3

// SwapKind classifies the result of a player swap.
type SwapKind int

const (
	// SwapInvalid: the cells are not neighbours. The board is untouched.
	SwapInvalid SwapKind = iota
	// SwapNoEffect: the swap made no match and was reverted.
	SwapNoEffect
	// SwapCascade: the swap made a match and the cascade ran to idle.
	SwapCascade
)

func (k SwapKind) String() string {
	switch k {
	case SwapInvalid:
		return "invalid"
	case SwapNoEffect:
		return "no_effect"
	case SwapCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// SwapOutcome is what AttemptSwap did.
type SwapOutcome struct {
	Kind    SwapKind
	A, B    Pos
	Cascade CascadeResult
}

// Engine owns a board and applies player swaps to it.
// Every board mutation after generation goes through AttemptSwap.
type Engine struct {
	board    *Board
	resolver Resolver
}

// NewEngine wraps a generated board.
func NewEngine(b *Board, rng Source, alphabet int, scoring ScoringPolicy, maxPasses int) *Engine {
	return &Engine{
		board: b,
		resolver: Resolver{
			Board:     b,
			RNG:       rng,
			Alphabet:  alphabet,
			Scoring:   scoring,
			MaxPasses: maxPasses,
		},
	}
}

// Board returns the live board. Callers outside the package must not
// mutate it; Session hands out clones.
func (e *Engine) Board() *Board {
	return e.board
}

// Resolver exposes the cascade resolver, mainly so tests can observe states.
func (e *Engine) Resolver() *Resolver {
	return &e.resolver
}

// AttemptSwap tries the player move a <-> b.
// Non-neighbours are rejected without touching the board. A swap counts only
// if a run now passes through one of the two swapped cells; otherwise it is
// undone, leaving the board exactly as it was. A counted swap stays and the
// cascade resolves every match on the board.
func (e *Engine) AttemptSwap(a, b Pos) (SwapOutcome, error) {
	out := SwapOutcome{Kind: SwapInvalid, A: a, B: b}
	if !e.board.InBounds(a) || !e.board.InBounds(b) || !a.Adjacent(b) {
		return out, nil
	}

	e.board.Swap(a, b)
	if !MatchAt(e.board, a) && !MatchAt(e.board, b) {
		e.board.Swap(a, b)
		out.Kind = SwapNoEffect
		return out, nil
	}

	out.Kind = SwapCascade
	res, err := e.resolver.Resolve()
	out.Cascade = res
	return out, err
}

// FindMove returns a neighbouring pair whose swap would make a match.
// Cells are tried in row-major order, right neighbour before bottom one.
func FindMove(b *Board) (Pos, Pos, bool) {
	n := b.Size()
	for r := range n {
		for c := range n {
			p := P(r, c)
			for _, q := range []Pos{P(r, c+1), P(r+1, c)} {
				if !b.InBounds(q) {
					continue
				}
				b.Swap(p, q)
				ok := MatchAt(b, p) || MatchAt(b, q)
				b.Swap(p, q)
				if ok {
					return p, q, true
				}
			}
		}
	}
	return Pos{}, Pos{}, false
}
