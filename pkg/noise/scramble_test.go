package noise

import "testing"

func TestScramblerPinnedSequence(t *testing.T) {
	// Reference values for seed 42; these must never change, every
	// determinism guarantee downstream rests on them.
	want := []float64{
		0.4654827769845724,
		0.644978153752163,
		0.8360387634020299,
		0.7261141170747578,
	}

	s := newScrambler(42)
	for i, w := range want {
		got := s.next()
		if got != w {
			t.Fatalf("output %d: got %v, want %v", i, got, w)
		}
	}
}

func TestScramblerRange(t *testing.T) {
	s := newScrambler(12345)
	for i := 0; i < 10000; i++ {
		v := s.next()
		if v < 0 || v >= 1 {
			t.Fatalf("output %d out of [0,1): %v", i, v)
		}
	}
}

func TestScramblerSeedsDiverge(t *testing.T) {
	a := newScrambler(1)
	b := newScrambler(2)
	same := 0
	for i := 0; i < 10; i++ {
		if a.next() == b.next() {
			same++
		}
	}
	if same > 5 {
		t.Fatalf("seeds 1 and 2 agree on %d of 10 outputs", same)
	}
}
