// Package field wraps noise sources into named, animatable scalar fields
// consumed by the viewer and export tools.
package field

import (
	"procnoise/pkg/noise"
)

// Size describes the dimensions of a sampled field.
type Size struct {
	W int
	H int
}

// Field samples a 3D noise source over a fixed-z slice into flat row-major
// buffers. Step advances the slice, animating the field.
type Field struct {
	cfg  Config
	name string

	src  noise.Source3D
	opts noise.FillOptions
	z    float64

	samples []float64
	display []uint8
}

// Factory constructs a Field using an optional configuration map.
type Factory func(cfg map[string]string) (*Field, error)

var fields = map[string]Factory{}

// Register adds a field factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	fields[name] = f
}

// Fields exposes the registry of available field factories.
func Fields() map[string]Factory {
	return fields
}

// New constructs a Field from the provided configuration.
func New(name string, cfg Config) (*Field, error) {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	f := &Field{
		cfg:     cfg,
		name:    name,
		opts:    noise.FillOptions{ScaleX: cfg.Scale, ScaleY: cfg.Scale},
		samples: make([]float64, total),
		display: make([]uint8, total),
	}
	if err := f.rebuild(cfg.Seed); err != nil {
		return nil, err
	}
	return f, nil
}

// Name returns the field identifier.
func (f *Field) Name() string { return f.name }

// Size reports the grid dimensions.
func (f *Field) Size() Size { return Size{W: f.cfg.Width, H: f.cfg.Height} }

// Cells exposes the current display buffer.
func (f *Field) Cells() []uint8 { return f.display }

// Samples exposes the raw sample buffer behind the display quantization.
func (f *Field) Samples() []float64 { return f.samples }

// Z reports the current slice depth.
func (f *Field) Z() float64 { return f.z }

// Reset rebuilds the source deterministically and returns to the z=0 slice.
// A zero seed falls back to the configured one, matching the viewer's
// restart key.
func (f *Field) Reset(seed int64) {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	// rebuild cannot fail here: the config was validated when the field was
	// first constructed.
	_ = f.rebuild(seed)
}

// Step advances the slice depth and resamples.
func (f *Field) Step() {
	f.z += f.cfg.ZStep
	f.fill()
}

func (f *Field) rebuild(seed int64) error {
	base := noise.Config{Seed: seed, Frequency: f.cfg.Frequency}

	var src noise.Source3D
	var err error
	if f.cfg.Kind == noise.KindWorley {
		src = noise.NewWorley3D(noise.WorleyConfig{
			Config: base,
			Metric: f.cfg.Metric,
			Return: f.cfg.Return,
		})
	} else {
		src, err = noise.Create3D(f.cfg.Kind, base)
		if err != nil {
			return err
		}
	}

	fbm := noise.FBMConfig{
		Octaves:     f.cfg.Octaves,
		Lacunarity:  f.cfg.Lacunarity,
		Persistence: f.cfg.Persistence,
	}
	if f.cfg.Turbulence {
		src = src.Turbulence(fbm)
	} else if f.cfg.Octaves > 1 {
		src = src.FBM(fbm)
	}

	f.src = src
	f.z = 0
	f.fill()
	return nil
}

func (f *Field) fill() {
	if len(f.samples) == 0 {
		return
	}
	noise.Fill3D(f.samples, f.cfg.Width, f.cfg.Height, f.src, f.z, f.opts)
	quantize(f.display, f.samples, f.cfg.Kind, f.cfg.Turbulence)
}

// quantize maps samples into 0..255 for display. Gradient noise is
// zero-centered; value, worley and turbulence outputs are already
// non-negative.
func quantize(dst []uint8, src []float64, kind noise.Kind, turbulence bool) {
	zeroCentered := !turbulence &&
		(kind == noise.KindPerlin || kind == noise.KindSimplex)
	for i, v := range src {
		if zeroCentered {
			v = noise.Normalize(v)
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		dst[i] = uint8(v * 255)
	}
}
