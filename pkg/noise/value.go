package noise

// smoothstep is the cubic 3t^2 - 2t^3, enough smoothing for value noise
// where corner values (not gradients) are interpolated.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// NewValue2D returns a 2D lattice-value noise source. Output is in [0, 1]
// by construction.
func NewValue2D(cfg Config) Source2D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	vals := buildValueTable(cfg.Seed)
	freq := cfg.Frequency
	return Source2D{recenter: true, sample: func(x, y float64) float64 {
		return value2(&perm, &vals, x*freq, y*freq)
	}}
}

// NewValue3D returns a 3D lattice-value noise source with output in [0, 1].
func NewValue3D(cfg Config) Source3D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	vals := buildValueTable(cfg.Seed)
	freq := cfg.Frequency
	return Source3D{recenter: true, sample: func(x, y, z float64) float64 {
		return value3(&perm, &vals, x*freq, y*freq, z*freq)
	}}
}

func value2(perm *[512]int, vals *[256]float64, x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)
	X := xi & 255
	Y := yi & 255

	u := smoothstep(xf)
	v := smoothstep(yf)

	v00 := vals[perm[perm[X]+Y]]
	v10 := vals[perm[perm[X+1]+Y]]
	v01 := vals[perm[perm[X]+Y+1]]
	v11 := vals[perm[perm[X+1]+Y+1]]

	return lerp(lerp(v00, v10, u), lerp(v01, v11, u), v)
}

func value3(perm *[512]int, vals *[256]float64, x, y, z float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)
	xf := x - float64(xi)
	yf := y - float64(yi)
	zf := z - float64(zi)
	X := xi & 255
	Y := yi & 255
	Z := zi & 255

	u := smoothstep(xf)
	v := smoothstep(yf)
	w := smoothstep(zf)

	v000 := vals[perm[perm[perm[X]+Y]+Z]]
	v100 := vals[perm[perm[perm[X+1]+Y]+Z]]
	v010 := vals[perm[perm[perm[X]+Y+1]+Z]]
	v110 := vals[perm[perm[perm[X+1]+Y+1]+Z]]
	v001 := vals[perm[perm[perm[X]+Y]+Z+1]]
	v101 := vals[perm[perm[perm[X+1]+Y]+Z+1]]
	v011 := vals[perm[perm[perm[X]+Y+1]+Z+1]]
	v111 := vals[perm[perm[perm[X+1]+Y+1]+Z+1]]

	x1 := lerp(lerp(v000, v100, u), lerp(v010, v110, u), v)
	x2 := lerp(lerp(v001, v101, u), lerp(v011, v111, u), v)
	return lerp(x1, x2, w)
}
