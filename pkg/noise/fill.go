package noise

// FillOptions maps grid indices to sample coordinates:
// nx = (x + OffsetX) * ScaleX, ny = (y + OffsetY) * ScaleY.
// Zero scales fall back to 1 so the zero value samples the integer grid.
type FillOptions struct {
	ScaleX  float64
	ScaleY  float64
	OffsetX float64
	OffsetY float64
}

func (o FillOptions) withDefaults() FillOptions {
	if o.ScaleX == 0 {
		o.ScaleX = 1
	}
	if o.ScaleY == 0 {
		o.ScaleY = 1
	}
	return o
}

// Fill2D writes w*h samples of src into dst in row-major order (y*w + x).
// dst must hold at least w*h entries; no other validation is performed and
// nothing is allocated.
func Fill2D(dst []float64, w, h int, src Source2D, opts FillOptions) {
	opts = opts.withDefaults()
	for y := 0; y < h; y++ {
		ny := (float64(y) + opts.OffsetY) * opts.ScaleY
		row := y * w
		for x := 0; x < w; x++ {
			nx := (float64(x) + opts.OffsetX) * opts.ScaleX
			dst[row+x] = src.Sample(nx, ny)
		}
	}
}

// Fill3D is Fill2D over a fixed-z slice of a 3D source, for animated slice
// sampling.
func Fill3D(dst []float64, w, h int, src Source3D, z float64, opts FillOptions) {
	opts = opts.withDefaults()
	for y := 0; y < h; y++ {
		ny := (float64(y) + opts.OffsetY) * opts.ScaleY
		row := y * w
		for x := 0; x < w; x++ {
			nx := (float64(x) + opts.OffsetX) * opts.ScaleX
			dst[row+x] = src.Sample(nx, ny, z)
		}
	}
}
