package match3

import "fmt"

// Pos addresses a board cell. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Adjacent reports whether p and q are orthogonal neighbours.
func (p Pos) Adjacent(q Pos) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// TileID identifies a tile for its whole life on the board.
// Zero is never a valid id; the index grid uses it for an empty cell.
type TileID int

// Symbol is the kind of a tile, an index into the alphabet.
type Symbol int

// Tile is one entity on the board.
type Tile struct {
	ID      TileID
	Symbol  Symbol
	Pos     Pos
	Matched bool
}

// CanSwap reports whether two tiles sit on neighbouring cells.
// Diagonal neighbours do not count.
func CanSwap(a, b Tile) bool {
	return a.Pos.Adjacent(b.Pos)
}
