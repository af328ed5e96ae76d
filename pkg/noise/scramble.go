package noise

// scrambler is a deterministic 32-bit generator used to build tables and
// place cellular feature points. The same seed yields the same sequence on
// every platform; all arithmetic wraps mod 2^32.
type scrambler struct {
	state uint32
}

func newScrambler(seed uint32) *scrambler {
	return &scrambler{state: seed}
}

// next returns the next value in [0, 1).
func (s *scrambler) next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t ^= t >> 15
	t *= t | 1
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}
