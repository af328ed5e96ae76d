package field

import (
	"strconv"

	"procnoise/pkg/noise"
)

// Config controls a field's dimensions, noise parameters and animation.
type Config struct {
	Width  int
	Height int

	Seed int64
	Kind noise.Kind

	Frequency   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
	Turbulence  bool

	// Worley only.
	Metric noise.Metric
	Return noise.ReturnType

	// Scale maps grid indices to sample coordinates; ZStep is the per-step
	// slice advance.
	Scale float64
	ZStep float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      256,
		Seed:        1337,
		Kind:        noise.KindPerlin,
		Frequency:   1,
		Octaves:     4,
		Lacunarity:  2,
		Persistence: 0.5,
		Scale:       0.02,
		ZStep:       0.01,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Frequency = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Octaves = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Lacunarity = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Persistence = parsed
		}
	}
	if v, ok := cfg["turbulence"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Turbulence = parsed
		}
	}
	if v, ok := cfg["metric"]; ok {
		if parsed, err := noise.ParseMetric(v); err == nil {
			c.Metric = parsed
		}
	}
	if v, ok := cfg["return"]; ok {
		if parsed, err := noise.ParseReturnType(v); err == nil {
			c.Return = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["zstep"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.ZStep = parsed
		}
	}
	return c
}
