package noise

import "math"

// Metric selects the distance function for cellular noise.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricManhattan
	MetricChebyshev
)

// ReturnType selects which feature-point distances cellular noise reports.
type ReturnType int

const (
	// ReturnF1 reports the distance to the nearest feature point.
	ReturnF1 ReturnType = iota
	// ReturnF2 reports the distance to the second nearest feature point.
	ReturnF2
	// ReturnF2MinusF1 reports their difference, highlighting cell borders.
	ReturnF2MinusF1
)

// WorleyConfig extends Config with the cellular distance metric and return
// type. The zero values are euclidean f1.
type WorleyConfig struct {
	Config
	Metric Metric
	Return ReturnType
}

// NewWorley2D returns a 2D cellular (Worley) noise source. Output is >= 0;
// f1 is typically in [0, 1] but may exceed 1 near cell corners.
func NewWorley2D(cfg WorleyConfig) Source2D {
	cfg.Config = cfg.Config.withDefaults()
	seed := uint32(cfg.Seed)
	freq := cfg.Frequency
	metric := cfg.Metric
	ret := cfg.Return
	return Source2D{sample: func(x, y float64) float64 {
		return worley2(seed, metric, ret, x*freq, y*freq)
	}}
}

// NewWorley3D returns a 3D cellular (Worley) noise source.
func NewWorley3D(cfg WorleyConfig) Source3D {
	cfg.Config = cfg.Config.withDefaults()
	seed := uint32(cfg.Seed)
	freq := cfg.Frequency
	metric := cfg.Metric
	ret := cfg.Return
	return Source3D{sample: func(x, y, z float64) float64 {
		return worley3(seed, metric, ret, x*freq, y*freq, z*freq)
	}}
}

func worley2(seed uint32, metric Metric, ret ReturnType, x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)

	f1 := math.MaxFloat64
	f2 := math.MaxFloat64
	for cy := yi - 1; cy <= yi+1; cy++ {
		for cx := xi - 1; cx <= xi+1; cx++ {
			// One deterministic feature point per cell.
			s := newScrambler(cellHash2(seed, int32(cx), int32(cy)))
			fx := float64(cx) + s.next()
			fy := float64(cy) + s.next()

			d := distance2(metric, x-fx, y-fy)
			if d < f1 {
				f2 = f1
				f1 = d
			} else if d < f2 {
				f2 = d
			}
		}
	}
	return pickReturn(ret, f1, f2)
}

func worley3(seed uint32, metric Metric, ret ReturnType, x, y, z float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)

	f1 := math.MaxFloat64
	f2 := math.MaxFloat64
	for cz := zi - 1; cz <= zi+1; cz++ {
		for cy := yi - 1; cy <= yi+1; cy++ {
			for cx := xi - 1; cx <= xi+1; cx++ {
				s := newScrambler(cellHash3(seed, int32(cx), int32(cy), int32(cz)))
				fx := float64(cx) + s.next()
				fy := float64(cy) + s.next()
				fz := float64(cz) + s.next()

				d := distance3(metric, x-fx, y-fy, z-fz)
				if d < f1 {
					f2 = f1
					f1 = d
				} else if d < f2 {
					f2 = d
				}
			}
		}
	}
	return pickReturn(ret, f1, f2)
}

func distance2(metric Metric, dx, dy float64) float64 {
	switch metric {
	case MetricManhattan:
		return math.Abs(dx) + math.Abs(dy)
	case MetricChebyshev:
		return math.Max(math.Abs(dx), math.Abs(dy))
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

func distance3(metric Metric, dx, dy, dz float64) float64 {
	switch metric {
	case MetricManhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case MetricChebyshev:
		return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Abs(dz))
	default:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

func pickReturn(ret ReturnType, f1, f2 float64) float64 {
	switch ret {
	case ReturnF2:
		return f2
	case ReturnF2MinusF1:
		return f2 - f1
	default:
		return f1
	}
}

// hash32 mixes a 32-bit input into a well-distributed output
// (Murmur-finalizer style avalanche).
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// cellHash2 returns a stable hash for 2D integer cell coordinates + seed.
// Large odd constants decorrelate the axes.
func cellHash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return hash32(h)
}

// cellHash3 returns a stable hash for 3D integer cell coordinates + seed.
func cellHash3(seed uint32, x, y, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h ^= uint32(z) * 0xc2b2ae35
	return hash32(h)
}
