package match3

import "testing"

// boardOf builds a board from rows of letters, 'A' being symbol 0.
func boardOf(t *testing.T, rows ...string) *Board {
	t.Helper()
	syms := make([][]Symbol, len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has length %d, want %d", r, len(row), len(rows))
		}
		syms[r] = make([]Symbol, len(row))
		for c, ch := range row {
			syms[r][c] = Symbol(ch - 'A')
		}
	}
	return NewBoardFromSymbols(syms)
}

// seqSource returns 0, 1, 2, ... modulo n and never shuffles.
type seqSource struct {
	next int
}

func (s *seqSource) IntN(n int) int {
	v := s.next % n
	s.next++
	return v
}

func (s *seqSource) Shuffle(int, func(i, j int)) {}

// constSource always returns the same value.
type constSource int

func (c constSource) IntN(n int) int {
	return int(c) % n
}

func (c constSource) Shuffle(int, func(i, j int)) {}

func seed(v int64) *int64 {
	return &v
}
