package noise

// grad2 holds the eight 2D gradient directions for lattice-gradient noise.
var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// grad3 holds the twelve 3D gradient directions shared by the perlin and
// simplex samplers (the edge midpoints of a cube).
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

// fade is the quintic curve 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at 0 and 1, which keeps cell boundaries invisible.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// NewPerlin2D returns a classic 2D lattice-gradient noise source with output
// nominally in [-1, 1].
func NewPerlin2D(cfg Config) Source2D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	freq := cfg.Frequency
	return Source2D{sample: func(x, y float64) float64 {
		return perlin2(&perm, x*freq, y*freq)
	}}
}

// NewPerlin3D returns a classic 3D lattice-gradient noise source with output
// nominally in [-1, 1].
func NewPerlin3D(cfg Config) Source3D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	freq := cfg.Frequency
	return Source3D{sample: func(x, y, z float64) float64 {
		return perlin3(&perm, x*freq, y*freq, z*freq)
	}}
}

func perlin2(perm *[512]int, x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)
	X := xi & 255
	Y := yi & 255

	u := fade(xf)
	v := fade(yf)

	aa := perm[perm[X]+Y]
	ab := perm[perm[X]+Y+1]
	ba := perm[perm[X+1]+Y]
	bb := perm[perm[X+1]+Y+1]

	x1 := lerp(dot2(grad2[aa&7], xf, yf), dot2(grad2[ba&7], xf-1, yf), u)
	x2 := lerp(dot2(grad2[ab&7], xf, yf-1), dot2(grad2[bb&7], xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

func perlin3(perm *[512]int, x, y, z float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)
	xf := x - float64(xi)
	yf := y - float64(yi)
	zf := z - float64(zi)
	X := xi & 255
	Y := yi & 255
	Z := zi & 255

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	aaa := perm[perm[perm[X]+Y]+Z] % 12
	aba := perm[perm[perm[X]+Y+1]+Z] % 12
	aab := perm[perm[perm[X]+Y]+Z+1] % 12
	abb := perm[perm[perm[X]+Y+1]+Z+1] % 12
	baa := perm[perm[perm[X+1]+Y]+Z] % 12
	bba := perm[perm[perm[X+1]+Y+1]+Z] % 12
	bab := perm[perm[perm[X+1]+Y]+Z+1] % 12
	bbb := perm[perm[perm[X+1]+Y+1]+Z+1] % 12

	x1 := lerp(dot3(grad3[aaa], xf, yf, zf), dot3(grad3[baa], xf-1, yf, zf), u)
	x2 := lerp(dot3(grad3[aba], xf, yf-1, zf), dot3(grad3[bba], xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	x1 = lerp(dot3(grad3[aab], xf, yf, zf-1), dot3(grad3[bab], xf-1, yf, zf-1), u)
	x2 = lerp(dot3(grad3[abb], xf, yf-1, zf-1), dot3(grad3[bbb], xf-1, yf-1, zf-1), u)
	y2 := lerp(x1, x2, v)

	return lerp(y1, y2, w)
}
