package noise

// valueTableOffset decorrelates the value table from the permutation table
// built for the same seed.
const valueTableOffset = 0x9E3779B9

// buildPermutation returns a seeded Fisher-Yates shuffle of 0..255, doubled
// into 512 entries so lattice lookups never need an index mask.
func buildPermutation(seed int64) [512]int {
	var p [256]int
	for i := range p {
		p[i] = i
	}

	s := newScrambler(uint32(seed))
	for i := 255; i > 0; i-- {
		j := int(s.next() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	var perm [512]int
	for i := range perm {
		perm[i] = p[i&255]
	}
	return perm
}

// buildValueTable returns 256 values in [0, 1) for lattice-value noise.
func buildValueTable(seed int64) [256]float64 {
	s := newScrambler(uint32(seed) + valueTableOffset)
	var vals [256]float64
	for i := range vals {
		vals[i] = s.next()
	}
	return vals
}
