package match3

import "fmt"

// DefaultMaxGenerationAttempts bounds the reshuffle loop in Generate.
const DefaultMaxGenerationAttempts = 1000

// Generate fills a size×size board with uniformly random symbols and
// reshuffles the symbols among the cells until at least one match exists,
// so a fresh game always has an immediate move.
//
// When no symbol occurs MinRun times no arrangement can match, so the
// symbols are drawn again instead of shuffled. Every shuffle or redraw
// counts as one attempt; ErrGenerationFailed is returned after maxAttempts.
func Generate(size, alphabet int, rng Source, maxAttempts int) (*Board, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxGenerationAttempts
	}

	b := NewBoard(size)
	for r := range size {
		for c := range size {
			b.Spawn(P(r, c), Symbol(rng.IntN(alphabet)))
		}
	}

	for attempt := 0; !HasMatch(b); attempt++ {
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("%w: %dx%d board, %d symbols, %d attempts",
				ErrGenerationFailed, size, size, alphabet, maxAttempts)
		}
		if canArrangeMatch(b) {
			shuffleSymbols(b, rng)
		} else {
			redrawSymbols(b, alphabet, rng)
		}
	}
	return b, nil
}

// canArrangeMatch reports whether some symbol is common enough to form a run.
func canArrangeMatch(b *Board) bool {
	counts := make(map[Symbol]int)
	for _, id := range b.cells {
		sym := b.tiles[id].Symbol
		counts[sym]++
		if counts[sym] >= MinRun {
			return true
		}
	}
	return false
}

// shuffleSymbols permutes the multiset of symbols over the existing tiles.
func shuffleSymbols(b *Board, rng Source) {
	ids := make([]TileID, 0, len(b.cells))
	syms := make([]Symbol, 0, len(b.cells))
	for _, id := range b.cells {
		ids = append(ids, id)
		syms = append(syms, b.tiles[id].Symbol)
	}
	rng.Shuffle(len(syms), func(i, j int) {
		syms[i], syms[j] = syms[j], syms[i]
	})
	for i, id := range ids {
		b.setSymbol(id, syms[i])
	}
}

func redrawSymbols(b *Board, alphabet int, rng Source) {
	for _, id := range b.cells {
		b.setSymbol(id, Symbol(rng.IntN(alphabet)))
	}
}
