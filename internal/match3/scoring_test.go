package match3

import "testing"

func run(n int) Match {
	return Match{Tiles: make([]TileID, n)}
}

func TestScoreForPass(t *testing.T) {
	p := DefaultScoringPolicy()

	tests := []struct {
		name     string
		matches  []Match
		expected int
	}{
		{"nothing", nil, 0},
		{"single triple", []Match{run(3)}, 30},
		{"four in a row", []Match{run(4)}, 40},
		{"five in a row", []Match{run(5)}, 50},
		{"two triples", []Match{run(3), run(3)}, 120},
		{"L shape", []Match{run(3), run(3)}, 120},
		{"triple and four", []Match{run(3), run(4)}, 140},
		{"three triples", []Match{run(3), run(3), run(3)}, 270},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.ScoreForPass(tc.matches); got != tc.expected {
				t.Errorf("ScoreForPass = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestBigPassBeatsChain(t *testing.T) {
	p := DefaultScoringPolicy()

	together := p.ScoreForPass([]Match{run(3), run(3)})
	chained := p.ScoreForPass([]Match{run(3)}) + p.ScoreForPass([]Match{run(3)})

	if together <= chained {
		t.Errorf("one 6-tile pass scored %d, two 3-tile passes %d; want the single pass higher", together, chained)
	}
}

func TestScoringCustomConstants(t *testing.T) {
	p := ScoringPolicy{BaseUnit: 5, ComboDivisor: 2}

	// 4 tiles: multiplier 2
	if got := p.ScoreForPass([]Match{run(4)}); got != 40 {
		t.Errorf("ScoreForPass = %d, want 40", got)
	}

	// Zero divisor falls back to the default
	p.ComboDivisor = 0
	if got := p.Multiplier(6); got != 2 {
		t.Errorf("Multiplier(6) = %d, want 2", got)
	}
}
