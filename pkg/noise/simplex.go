package noise

// Simplex noise after Ken Perlin's improved algorithm. Output is in [-1, 1].
const (
	f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// NewSimplex2D returns a 2D simplex noise source with output in [-1, 1].
func NewSimplex2D(cfg Config) Source2D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	freq := cfg.Frequency
	return Source2D{sample: func(x, y float64) float64 {
		return simplex2(&perm, x*freq, y*freq)
	}}
}

// NewSimplex3D returns a 3D simplex noise source with output in [-1, 1].
func NewSimplex3D(cfg Config) Source3D {
	cfg = cfg.withDefaults()
	perm := buildPermutation(cfg.Seed)
	freq := cfg.Frequency
	return Source3D{sample: func(x, y, z float64) float64 {
		return simplex3(&perm, x*freq, y*freq, z*freq)
	}}
}

func simplex2(perm *[512]int, x, y float64) float64 {
	// Skew input space to determine which simplex cell we are in.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower triangle (i1=1) or upper triangle (j1=1).
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := perm[ii+perm[jj]] % 12
	gi1 := perm[ii+i1+perm[jj+j1]] % 12
	gi2 := perm[ii+1+perm[jj+1]] % 12

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, 0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, 0)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, 0)
	}

	return 70.0 * (n0 + n1 + n2)
}

func simplex3(perm *[512]int, x, y, z float64) float64 {
	s := (x + y + z) * f3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Coordinate ordering picks one of the six tetrahedra in the skewed cube.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		if y0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		} else if x0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		} else {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		if y0 < z0 {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		} else if x0 < z0 {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		} else {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := perm[ii+perm[jj+perm[kk]]] % 12
	gi1 := perm[ii+i1+perm[jj+j1+perm[kk+k1]]] % 12
	gi2 := perm[ii+i2+perm[jj+j2+perm[kk+k2]]] % 12
	gi3 := perm[ii+1+perm[jj+1+perm[kk+1]]] % 12

	var n0, n1, n2, n3 float64

	t0 := 0.5 - x0*x0 - y0*y0 - z0*z0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}

	t1 := 0.5 - x1*x1 - y1*y1 - z1*z1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}

	t2 := 0.5 - x2*x2 - y2*y2 - z2*z2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}

	t3 := 0.5 - x3*x3 - y3*y3 - z3*z3
	if t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}
