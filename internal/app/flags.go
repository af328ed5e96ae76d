package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Field string
	Scale int
	TPS   int
	Seed  int64

	Frequency  float64
	Octaves    int
	Turbulence bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Field: "perlin", Scale: 3, TPS: 60, Seed: 1337, Frequency: 1, Octaves: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Field, "field", c.Field, "noise field to display")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for field reset")
	fs.Float64Var(&c.Frequency, "freq", c.Frequency, "base frequency")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "fractal octaves")
	fs.BoolVar(&c.Turbulence, "turbulence", c.Turbulence, "use turbulence instead of fbm")
}
