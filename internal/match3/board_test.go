package match3

import (
	"errors"
	"testing"
)

func TestBoardGetSet(t *testing.T) {
	b := boardOf(t,
		"ABC",
		"BCA",
		"CAB",
	)

	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", b.Size())
	}

	tile, ok := b.Get(P(1, 2))
	if !ok {
		t.Fatal("Get(1,2) reported empty cell")
	}
	if tile.Symbol != 0 || tile.Pos != P(1, 2) {
		t.Errorf("Get(1,2) = %+v, want symbol A at (1,2)", tile)
	}

	// Ids are assigned row-major from 1
	if tile.ID != 6 {
		t.Errorf("tile id = %d, want 6", tile.ID)
	}

	b.Clear(P(0, 0))
	if _, ok := b.Get(P(0, 0)); ok {
		t.Error("cleared cell should be empty")
	}
	if b.Full() {
		t.Error("board with a hole should not be Full")
	}

	b.Set(P(0, 0), 1)
	if got, _ := b.Get(P(0, 0)); got.ID != 1 {
		t.Errorf("Set did not restore tile 1, got %d", got.ID)
	}
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := boardOf(t,
		"ABC",
		"BCA",
		"CAB",
	)

	tests := []struct {
		name string
		fn   func()
	}{
		{"get negative row", func() { b.Get(P(-1, 0)) }},
		{"get past last col", func() { b.Get(P(0, 3)) }},
		{"set past last row", func() { b.Set(P(3, 0), 1) }},
		{"swap off board", func() { b.Swap(P(0, 0), P(0, -1)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected panic with error, got %v", r)
				}
				var oob *OutOfBoundsError
				if !errors.As(err, &oob) {
					t.Errorf("panic value %v is not an OutOfBoundsError", err)
				}
			}()
			tc.fn()
		})
	}
}

func TestBoardSwapKeepsIdentity(t *testing.T) {
	b := boardOf(t,
		"ABC",
		"BCA",
		"CAB",
	)
	a, _ := b.Get(P(0, 0))
	c, _ := b.Get(P(0, 1))

	b.Swap(P(0, 0), P(0, 1))

	got, _ := b.Get(P(0, 1))
	if got.ID != a.ID || got.Pos != P(0, 1) {
		t.Errorf("tile %d should now be at (0,1), got %+v", a.ID, got)
	}
	moved, _ := b.Tile(c.ID)
	if moved.Pos != P(0, 0) {
		t.Errorf("tile %d position = %v, want (0,0)", c.ID, moved.Pos)
	}
}

func TestBoardCloneEqual(t *testing.T) {
	b := boardOf(t,
		"ABC",
		"BCA",
		"CAB",
	)
	c := b.Clone()

	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.Swap(P(0, 0), P(0, 1))
	if b.Equal(c) {
		t.Error("boards should differ after swapping the clone")
	}
	if got, _ := b.Get(P(0, 0)); got.Symbol != 0 {
		t.Error("swapping the clone changed the original")
	}
}

func TestBoardString(t *testing.T) {
	b := boardOf(t,
		"ABC",
		"BCA",
		"CAB",
	)
	b.Clear(P(1, 1))

	want := "ABC\nB.A\nCAB"
	if b.String() != want {
		t.Errorf("String() =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestPosAdjacent(t *testing.T) {
	tests := []struct {
		p, q     Pos
		expected bool
	}{
		{P(2, 2), P(2, 3), true},
		{P(2, 2), P(1, 2), true},
		{P(2, 2), P(3, 3), false}, // diagonal
		{P(2, 2), P(2, 2), false},
		{P(2, 2), P(2, 4), false},
	}

	for _, tc := range tests {
		if got := tc.p.Adjacent(tc.q); got != tc.expected {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tc.p, tc.q, got, tc.expected)
		}
		if got := CanSwap(Tile{Pos: tc.p}, Tile{Pos: tc.q}); got != tc.expected {
			t.Errorf("CanSwap(%v, %v) = %v, want %v", tc.p, tc.q, got, tc.expected)
		}
	}
}
