package match3

import "testing"

func TestReplayReachesEngineBoard(t *testing.T) {
	for s := int64(0); s < 20; s++ {
		b, err := Generate(6, 5, NewSource(seed(s)), 0)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		e := NewEngine(b, NewSource(seed(s)), 5, DefaultScoringPolicy(), 0)

		p, q, ok := FindMove(b)
		if !ok {
			t.Fatalf("seed %d: no move on generated board", s)
		}
		before := b.Clone()
		out, err := e.AttemptSwap(p, q)
		if err != nil {
			t.Fatalf("AttemptSwap failed: %v", err)
		}

		r := NewReplay(before, out)
		steps := 0
		for r.Step() {
			steps++
		}

		if steps != 4*len(out.Cascade.Passes) {
			t.Errorf("seed %d: %d steps for %d passes", s, steps, len(out.Cascade.Passes))
		}
		if !r.Board().Equal(b) {
			t.Errorf("seed %d: replay ended on\n%s\nengine board\n%s", s, r.Board(), b)
		}
	}
}

func TestReplayStages(t *testing.T) {
	b := boardOf(t,
		"ABCD",
		"BCDA",
		"CDAB",
		"AAAC",
	)
	before := b.Clone()
	e := NewEngine(b, &seqSource{}, 4, DefaultScoringPolicy(), 0)

	// A no-op swap of the run's own tiles keeps the run.
	out, err := e.AttemptSwap(P(3, 0), P(3, 1))
	if err != nil || out.Kind != SwapCascade {
		t.Fatalf("AttemptSwap = %v, %v", out.Kind, err)
	}

	r := NewReplay(before, out)
	if r.Stage() != StageSwapped || r.Highlight() != nil {
		t.Fatalf("initial stage = %v", r.Stage())
	}

	r.Step()
	if r.Stage() != StageMatched || len(r.Highlight()) != 3 {
		t.Errorf("stage %v highlight %v", r.Stage(), r.Highlight())
	}

	r.Step()
	if r.Stage() != StageRemoved || r.Board().Full() {
		t.Errorf("stage %v, board should have holes:\n%s", r.Stage(), r.Board())
	}

	r.Step()
	if got := r.Board().String(); got != "...D\nABCA\nBCDB\nCDAC" {
		t.Errorf("after collapse:\n%s", got)
	}

	r.Step()
	if r.Stage() != StageSpawned || !r.Board().Full() {
		t.Errorf("stage %v, board should be full", r.Stage())
	}
	if r.Step() || !r.Done() {
		t.Error("replay should be finished")
	}
}
