// Package noise provides deterministic, seedable 2D/3D procedural noise:
// perlin (lattice-gradient), simplex, value (lattice-value) and worley
// (cellular) base algorithms, plus FBM/turbulence composition and batch
// grid sampling. Sources built from the same seed produce bit-identical
// output on every platform.
package noise

import "math"

// Config holds the shared parameters of the base algorithm factories.
// Frequency scales input coordinates before the lattice lookup; values <= 0
// fall back to 1.
type Config struct {
	Seed      int64
	Frequency float64
}

func (c Config) withDefaults() Config {
	if c.Frequency <= 0 {
		c.Frequency = 1
	}
	return c
}

// FBMConfig controls fractal layering. Zero or negative fields fall back to
// the defaults: 4 octaves, lacunarity 2, persistence 0.5.
type FBMConfig struct {
	Octaves     int
	Lacunarity  float64
	Persistence float64
}

func (c FBMConfig) withDefaults() FBMConfig {
	if c.Octaves <= 0 {
		c.Octaves = 4
	}
	if c.Lacunarity <= 0 {
		c.Lacunarity = 2
	}
	if c.Persistence <= 0 {
		c.Persistence = 0.5
	}
	return c
}

// Source2D is an immutable 2D noise source. It holds no mutable state after
// construction, so it may be shared and sampled concurrently.
type Source2D struct {
	sample func(x, y float64) float64

	// recenter marks sources whose native range is [0,1] and whose
	// turbulence contributions must be shifted to zero before taking the
	// absolute value. Set by the value factory only; worley output is
	// non-negative and deliberately used raw.
	recenter bool
}

// Source3D is the 3D counterpart of Source2D.
type Source3D struct {
	sample   func(x, y, z float64) float64
	recenter bool
}

// Sample evaluates the source at (x, y). Coordinates are not validated;
// NaN/Inf propagate through the arithmetic.
func (s Source2D) Sample(x, y float64) float64 { return s.sample(x, y) }

// Sample evaluates the source at (x, y, z).
func (s Source3D) Sample(x, y, z float64) float64 { return s.sample(x, y, z) }

// FBM returns a new source layering cfg.Octaves samples of s at
// geometrically increasing frequency and decreasing amplitude, normalized by
// the amplitude sum. The receiver is unchanged; composed sources compose
// again just like base sources.
func (s Source2D) FBM(cfg FBMConfig) Source2D {
	cfg = cfg.withDefaults()
	inner := s.sample
	return Source2D{recenter: s.recenter, sample: func(x, y float64) float64 {
		var sum, norm float64
		freq, amp := 1.0, 1.0
		for i := 0; i < cfg.Octaves; i++ {
			sum += inner(x*freq, y*freq) * amp
			norm += amp
			freq *= cfg.Lacunarity
			amp *= cfg.Persistence
		}
		return sum / norm
	}}
}

// FBM returns a fractally layered copy of s. See Source2D.FBM.
func (s Source3D) FBM(cfg FBMConfig) Source3D {
	cfg = cfg.withDefaults()
	inner := s.sample
	return Source3D{recenter: s.recenter, sample: func(x, y, z float64) float64 {
		var sum, norm float64
		freq, amp := 1.0, 1.0
		for i := 0; i < cfg.Octaves; i++ {
			sum += inner(x*freq, y*freq, z*freq) * amp
			norm += amp
			freq *= cfg.Lacunarity
			amp *= cfg.Persistence
		}
		return sum / norm
	}}
}

// Turbulence is FBM with absolute-valued octave contributions, producing
// billowy patterns. Sources with a native [0,1] range are recentered around
// zero (and rescaled) per octave to match the gradient-noise convention.
func (s Source2D) Turbulence(cfg FBMConfig) Source2D {
	cfg = cfg.withDefaults()
	inner := s.sample
	recenter := s.recenter
	return Source2D{recenter: recenter, sample: func(x, y float64) float64 {
		var sum, norm float64
		freq, amp := 1.0, 1.0
		for i := 0; i < cfg.Octaves; i++ {
			v := inner(x*freq, y*freq)
			if recenter {
				v = (v - 0.5) * 2
			}
			sum += math.Abs(v) * amp
			norm += amp
			freq *= cfg.Lacunarity
			amp *= cfg.Persistence
		}
		return sum / norm
	}}
}

// Turbulence returns an absolute-valued fractal copy of s. See
// Source2D.Turbulence.
func (s Source3D) Turbulence(cfg FBMConfig) Source3D {
	cfg = cfg.withDefaults()
	inner := s.sample
	recenter := s.recenter
	return Source3D{recenter: recenter, sample: func(x, y, z float64) float64 {
		var sum, norm float64
		freq, amp := 1.0, 1.0
		for i := 0; i < cfg.Octaves; i++ {
			v := inner(x*freq, y*freq, z*freq)
			if recenter {
				v = (v - 0.5) * 2
			}
			sum += math.Abs(v) * amp
			norm += amp
			freq *= cfg.Lacunarity
			amp *= cfg.Persistence
		}
		return sum / norm
	}}
}

// fastFloor avoids math.Floor's overhead on the hot path.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
