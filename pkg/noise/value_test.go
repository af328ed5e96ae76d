package noise

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestValue2DPinned(t *testing.T) {
	src := NewValue2D(Config{Seed: 7})
	got := src.Sample(1.5, 2.25)
	want := 0.4234220435064344
	if math.Abs(got-want) > pinEps {
		t.Fatalf("Sample(1.5, 2.25) = %v, want %v", got, want)
	}
}

func TestValue3DPinned(t *testing.T) {
	src := NewValue3D(Config{Seed: 7})
	got := src.Sample(1.5, 2.25, 3.75)
	want := 0.4830918013738028
	if math.Abs(got-want) > pinEps {
		t.Fatalf("Sample(1.5, 2.25, 3.75) = %v, want %v", got, want)
	}
}

func TestValueRange(t *testing.T) {
	src2 := NewValue2D(Config{Seed: 3})
	src3 := NewValue3D(Config{Seed: 3})
	r := rand.New(rand.NewPCG(13, 14))
	for i := 0; i < 1000; i++ {
		x := r.Float64()*200 - 100
		y := r.Float64()*200 - 100
		z := r.Float64()*200 - 100
		if v := src2.Sample(x, y); v < 0 || v > 1 {
			t.Fatalf("2D sample at (%v, %v) out of [0,1]: %v", x, y, v)
		}
		if v := src3.Sample(x, y, z); v < 0 || v > 1 {
			t.Fatalf("3D sample at (%v, %v, %v) out of [0,1]: %v", x, y, z, v)
		}
	}
}

func TestValueLatticeExact(t *testing.T) {
	// On integer coordinates both smoothstep weights are zero, so the sample
	// is exactly the table entry hashed for that corner.
	src := NewValue2D(Config{Seed: 7})
	perm := buildPermutation(7)
	vals := buildValueTable(7)
	for _, p := range [][2]int{{0, 0}, {5, 9}, {-4, 3}, {255, 255}} {
		want := vals[perm[perm[p[0]&255]+(p[1]&255)]]
		got := src.Sample(float64(p[0]), float64(p[1]))
		if got != want {
			t.Fatalf("lattice sample at %v = %v, want %v", p, got, want)
		}
	}
}

func TestValueContinuity(t *testing.T) {
	src := NewValue2D(Config{Seed: 11})
	r := rand.New(rand.NewPCG(15, 16))
	for i := 0; i < 500; i++ {
		x := r.Float64()*50 - 25
		y := r.Float64()*50 - 25
		a := src.Sample(x, y)
		b := src.Sample(x, y+0.001)
		if math.Abs(a-b) >= 0.01 {
			t.Fatalf("discontinuity at (%v, %v): %v vs %v", x, y, a, b)
		}
	}
}

func TestValueDeterminism(t *testing.T) {
	a := NewValue2D(Config{Seed: 55})
	b := NewValue2D(Config{Seed: 55})
	c := NewValue2D(Config{Seed: 56})

	r := rand.New(rand.NewPCG(17, 18))
	differ := 0
	for i := 0; i < 10; i++ {
		x := r.Float64() * 100
		y := r.Float64() * 100
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("same seed disagrees at (%v, %v)", x, y)
		}
		if a.Sample(x, y) != c.Sample(x, y) {
			differ++
		}
	}
	if differ <= 5 {
		t.Fatalf("seeds 55 and 56 differ on only %d of 10 probes", differ)
	}
}
