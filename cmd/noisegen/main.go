package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"procnoise/pkg/noise"
)

func main() {
	kindName := flag.String("type", "perlin", "noise type (perlin, simplex, value, worley)")
	seed := flag.Int64("seed", 0, "generator seed")
	freq := flag.Float64("freq", 1.0, "base frequency")
	octaves := flag.Int("octaves", 1, "fractal octaves (1 = base noise only)")
	lacunarity := flag.Float64("lacunarity", 2.0, "per-octave frequency multiplier")
	persistence := flag.Float64("persistence", 0.5, "per-octave amplitude multiplier")
	turbulence := flag.Bool("turbulence", false, "use turbulence instead of fbm")
	metricName := flag.String("metric", "euclidean", "worley distance metric (euclidean, manhattan, chebyshev)")
	returnName := flag.String("return", "f1", "worley return type (f1, f2, f2-f1)")
	remapName := flag.String("remap", "", "post remap (normalize, ridge, billow)")
	size := flag.String("size", "512x512", "image size as WxH")
	scale := flag.Float64("scale", 0.01, "grid-to-coordinate scale")
	out := flag.String("out", "noise.png", "output PNG file")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		fatal(err)
	}

	src, err := buildSource(*kindName, *metricName, *returnName, noise.Config{Seed: *seed, Frequency: *freq})
	if err != nil {
		fatal(err)
	}

	fbm := noise.FBMConfig{Octaves: *octaves, Lacunarity: *lacunarity, Persistence: *persistence}
	if *turbulence {
		src = src.Turbulence(fbm)
	} else if *octaves > 1 {
		src = src.FBM(fbm)
	}

	remap, err := lookupRemap(*remapName)
	if err != nil {
		fatal(err)
	}

	buf := make([]float64, w*h)
	noise.Fill2D(buf, w, h, src, noise.FillOptions{ScaleX: *scale, ScaleY: *scale})

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range buf {
		if remap != nil {
			v = remap(v)
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		img.Pix[i] = uint8(v * 255)
	}

	f, err := os.Create(*out)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s (%dx%d, %s, seed %d)\n", *out, w, h, *kindName, *seed)
}

func buildSource(kindName, metricName, returnName string, cfg noise.Config) (noise.Source2D, error) {
	kind, err := noise.ParseKind(kindName)
	if err != nil {
		return noise.Source2D{}, err
	}
	if kind != noise.KindWorley {
		return noise.Create2D(kind, cfg)
	}

	metric, err := noise.ParseMetric(metricName)
	if err != nil {
		return noise.Source2D{}, err
	}
	ret, err := noise.ParseReturnType(returnName)
	if err != nil {
		return noise.Source2D{}, err
	}
	return noise.NewWorley2D(noise.WorleyConfig{Config: cfg, Metric: metric, Return: ret}), nil
}

func lookupRemap(name string) (func(float64) float64, error) {
	switch name {
	case "":
		return nil, nil
	case "normalize":
		return noise.Normalize, nil
	case "ridge":
		return noise.Ridge, nil
	case "billow":
		return noise.Billow, nil
	default:
		return nil, fmt.Errorf("unknown remap %q (available: normalize, ridge, billow)", name)
	}
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
