package match3

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// Direction is the axis a match lies on.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Match is a maximal run of at least MinRun equal tiles in one row or column.
// Cells and Tiles are in scan order (left to right, top to bottom).
type Match struct {
	Dir    Direction
	Symbol Symbol
	Cells  []Pos
	Tiles  []TileID
}

// Len returns the number of tiles in the run.
func (m Match) Len() int {
	return len(m.Tiles)
}

// FindMatches returns every run of MinRun or more equal tiles.
// Rows are scanned first, then columns; a 4- or 5-in-a-row is one Match.
// A tile on both a horizontal and a vertical run appears in both matches.
// The board is not modified.
func FindMatches(b *Board) []Match {
	var matches []Match
	n := b.Size()

	for r := range n {
		matches = scanLine(b, matches, Horizontal, func(i int) Pos { return P(r, i) })
	}
	for c := range n {
		matches = scanLine(b, matches, Vertical, func(i int) Pos { return P(i, c) })
	}
	return matches
}

// scanLine walks one row or column accumulating runs of equal symbols.
func scanLine(b *Board, out []Match, dir Direction, at func(i int) Pos) []Match {
	n := b.Size()
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && b.Symbol(at(i)) == b.Symbol(at(start)) {
			continue
		}
		// Run [start, i) ended.
		if sym := b.Symbol(at(start)); sym >= 0 && i-start >= MinRun {
			m := Match{Dir: dir, Symbol: sym}
			for k := start; k < i; k++ {
				p := at(k)
				t, _ := b.Get(p)
				m.Cells = append(m.Cells, p)
				m.Tiles = append(m.Tiles, t.ID)
			}
			out = append(out, m)
		}
		start = i
	}
	return out
}

// HasMatch reports whether the board contains at least one match.
func HasMatch(b *Board) bool {
	n := b.Size()
	for r := range n {
		for c := range n {
			sym := b.Symbol(P(r, c))
			if sym < 0 {
				continue
			}
			if c+2 < n && b.Symbol(P(r, c+1)) == sym && b.Symbol(P(r, c+2)) == sym {
				return true
			}
			if r+2 < n && b.Symbol(P(r+1, c)) == sym && b.Symbol(P(r+2, c)) == sym {
				return true
			}
		}
	}
	return false
}

// MatchAt reports whether p lies on a horizontal or vertical run of at
// least MinRun equal tiles.
func MatchAt(b *Board, p Pos) bool {
	sym := b.Symbol(p)
	if sym < 0 {
		return false
	}
	return runLength(b, p, sym, 0, 1) >= MinRun || runLength(b, p, sym, 1, 0) >= MinRun
}

// runLength counts equal symbols through p along (dr, dc) in both directions.
func runLength(b *Board, p Pos, sym Symbol, dr, dc int) int {
	n := 1
	for q := P(p.Row+dr, p.Col+dc); b.InBounds(q) && b.Symbol(q) == sym; q = P(q.Row+dr, q.Col+dc) {
		n++
	}
	for q := P(p.Row-dr, p.Col-dc); b.InBounds(q) && b.Symbol(q) == sym; q = P(q.Row-dr, q.Col-dc) {
		n++
	}
	return n
}

// RemovalSet flattens matches into distinct tile ids, first-seen order.
func RemovalSet(matches []Match) []TileID {
	seen := make(map[TileID]bool)
	var ids []TileID
	for _, m := range matches {
		for _, id := range m.Tiles {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
