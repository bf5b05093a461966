package match3

import (
	"math/rand"
	"time"
)

// Source is the randomness the engine draws from.
// Board generation, shuffles and refills all go through it so a fixed seed
// reproduces a whole game.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with *seed, or with the current time
// when seed is nil.
func NewSource(seed *int64) Source {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return &randSource{rng: rand.New(rand.NewSource(s))}
}

func (r *randSource) IntN(n int) int {
	return r.rng.Intn(n)
}

func (r *randSource) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
