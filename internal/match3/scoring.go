package match3

// Default scoring constants.
const (
	DefaultBaseUnit     = 10
	DefaultComboDivisor = 3
)

// ScoringPolicy turns one pass's matches into points.
// Points are linear in the tiles removed and multiplied by a combo factor
// that grows with the size of the pass, so one big simultaneous clear is
// worth more than the same tiles cleared over several passes.
type ScoringPolicy struct {
	BaseUnit     int // Points per counted tile
	ComboDivisor int // Counted tiles per combo step
}

// DefaultScoringPolicy returns the stock constants.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		BaseUnit:     DefaultBaseUnit,
		ComboDivisor: DefaultComboDivisor,
	}
}

// Counted returns the number of tiles a pass scores for. A tile shared by
// a horizontal and a vertical run is counted once per run.
func Counted(matches []Match) int {
	n := 0
	for _, m := range matches {
		n += m.Len()
	}
	return n
}

// Multiplier returns the combo multiplier for a pass scoring counted tiles.
func (p ScoringPolicy) Multiplier(counted int) int {
	div := p.ComboDivisor
	if div <= 0 {
		div = DefaultComboDivisor
	}
	return max(1, counted/div)
}

// ScoreForPass returns the points for one cascade pass.
func (p ScoringPolicy) ScoreForPass(matches []Match) int {
	counted := Counted(matches)
	if counted == 0 {
		return 0
	}
	return p.BaseUnit * counted * p.Multiplier(counted)
}
