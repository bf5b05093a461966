package match3

import (
	"fmt"
	"strings"
)

// OutOfBoundsError is the panic value for a coordinate outside the board.
// It always means a caller bug; the session checks positions it receives
// from players before touching the board.
type OutOfBoundsError struct {
	Pos  Pos
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("match3: position %s out of bounds for %dx%d board", e.Pos, e.Size, e.Size)
}

// Board is a square grid of tiles.
// Tiles live in an arena keyed by id; the grid only stores ids, so swaps
// and collapses move ids around and never lose a tile's identity.
// Cells are stored in row-major order: index = row*size + col.
type Board struct {
	size   int
	cells  []TileID
	tiles  map[TileID]*Tile
	nextID TileID
}

// NewBoard creates an empty board. Every cell must be filled before the
// board is handed to a caller.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("match3: invalid board size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]TileID, size*size),
		tiles: make(map[TileID]*Tile, size*size),
	}
}

// NewBoardFromSymbols builds a full board from a square symbol matrix.
// Tile ids are assigned in row-major order starting at 1.
func NewBoardFromSymbols(rows [][]Symbol) *Board {
	b := NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != b.size {
			panic(fmt.Sprintf("match3: row %d has %d cells, want %d", r, len(row), b.size))
		}
		for c, sym := range row {
			b.Spawn(P(r, c), sym)
		}
	}
	return b
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

func (b *Board) index(p Pos) int {
	if !b.InBounds(p) {
		panic(&OutOfBoundsError{Pos: p, Size: b.size})
	}
	return p.Row*b.size + p.Col
}

// Get returns the tile at p. The bool is false for an empty cell.
func (b *Board) Get(p Pos) (Tile, bool) {
	id := b.cells[b.index(p)]
	if id == 0 {
		return Tile{}, false
	}
	return *b.tiles[id], true
}

// Symbol returns the symbol at p, or -1 for an empty cell.
func (b *Board) Symbol(p Pos) Symbol {
	id := b.cells[b.index(p)]
	if id == 0 {
		return -1
	}
	return b.tiles[id].Symbol
}

// Tile returns a tile by id.
func (b *Board) Tile(id TileID) (Tile, bool) {
	t, ok := b.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Set places an existing tile at p and updates its position.
// The cell the tile previously pointed at is not cleared.
func (b *Board) Set(p Pos, id TileID) {
	t, ok := b.tiles[id]
	if !ok {
		panic(fmt.Sprintf("match3: unknown tile %d", id))
	}
	b.cells[b.index(p)] = id
	t.Pos = p
}

// Clear empties the cell at p without discarding the tile.
func (b *Board) Clear(p Pos) {
	b.cells[b.index(p)] = 0
}

// Spawn creates a new tile with a fresh id at p.
func (b *Board) Spawn(p Pos, sym Symbol) Tile {
	b.nextID++
	t := &Tile{ID: b.nextID, Symbol: sym, Pos: p}
	b.tiles[t.ID] = t
	b.cells[b.index(p)] = t.ID
	return *t
}

// insert places a tile with a known id, keeping ids issued by Spawn unique.
func (b *Board) insert(t Tile) {
	tc := t
	b.tiles[t.ID] = &tc
	b.cells[b.index(t.Pos)] = t.ID
	b.nextID = max(b.nextID, t.ID)
}

// remove vacates the tile's cell and drops it from the arena.
func (b *Board) remove(id TileID) {
	t, ok := b.tiles[id]
	if !ok {
		return
	}
	if b.cells[b.index(t.Pos)] == id {
		b.cells[b.index(t.Pos)] = 0
	}
	delete(b.tiles, id)
}

func (b *Board) setMatched(id TileID, matched bool) {
	if t, ok := b.tiles[id]; ok {
		t.Matched = matched
	}
}

func (b *Board) setSymbol(id TileID, sym Symbol) {
	if t, ok := b.tiles[id]; ok {
		t.Symbol = sym
	}
}

// Swap exchanges the tiles at two cells. It does not check adjacency and
// has no scoring or matching side effects.
func (b *Board) Swap(p, q Pos) {
	i, j := b.index(p), b.index(q)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	if id := b.cells[i]; id != 0 {
		b.tiles[id].Pos = p
	}
	if id := b.cells[j]; id != 0 {
		b.tiles[id].Pos = q
	}
}

// Full returns true if no cell is empty.
func (b *Board) Full() bool {
	for _, id := range b.cells {
		if id == 0 {
			return false
		}
	}
	return true
}

// Symbols returns the symbol matrix, -1 marking empty cells.
func (b *Board) Symbols() [][]Symbol {
	out := make([][]Symbol, b.size)
	for r := range b.size {
		out[r] = make([]Symbol, b.size)
		for c := range b.size {
			out[r][c] = b.Symbol(P(r, c))
		}
	}
	return out
}

// IDs returns the tile id matrix, 0 marking empty cells.
func (b *Board) IDs() [][]TileID {
	out := make([][]TileID, b.size)
	for r := range b.size {
		out[r] = make([]TileID, b.size)
		copy(out[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return out
}

// Clone returns a deep copy. Tile ids are preserved.
func (b *Board) Clone() *Board {
	c := &Board{
		size:   b.size,
		cells:  make([]TileID, len(b.cells)),
		tiles:  make(map[TileID]*Tile, len(b.tiles)),
		nextID: b.nextID,
	}
	copy(c.cells, b.cells)
	for id, t := range b.tiles {
		tc := *t
		c.tiles[id] = &tc
	}
	return c
}

// Equal reports whether both boards hold the same tiles, with the same
// symbols, in the same cells.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.size != o.size {
		return false
	}
	for i, id := range b.cells {
		if o.cells[i] != id {
			return false
		}
		if id != 0 && b.tiles[id].Symbol != o.tiles[id].Symbol {
			return false
		}
	}
	return true
}

// String renders the board as rows of symbol letters, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.size {
			sym := b.Symbol(P(r, c))
			if sym < 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('A' + sym%26))
		}
	}
	return sb.String()
}
