package noise

import "fmt"

// Kind identifies a base noise algorithm.
type Kind int

const (
	KindPerlin Kind = iota
	KindSimplex
	KindValue
	KindWorley
)

// String returns the name used by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindPerlin:
		return "perlin"
	case KindSimplex:
		return "simplex"
	case KindValue:
		return "value"
	case KindWorley:
		return "worley"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name from flags or config files onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "perlin":
		return KindPerlin, nil
	case "simplex":
		return KindSimplex, nil
	case "value":
		return KindValue, nil
	case "worley":
		return KindWorley, nil
	default:
		return 0, fmt.Errorf("noise: unknown kind %q", name)
	}
}

// ParseMetric maps a name onto a worley distance Metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "euclidean":
		return MetricEuclidean, nil
	case "manhattan":
		return MetricManhattan, nil
	case "chebyshev":
		return MetricChebyshev, nil
	default:
		return 0, fmt.Errorf("noise: unknown distance metric %q", name)
	}
}

// ParseReturnType maps a name onto a worley ReturnType.
func ParseReturnType(name string) (ReturnType, error) {
	switch name {
	case "f1":
		return ReturnF1, nil
	case "f2":
		return ReturnF2, nil
	case "f2-f1":
		return ReturnF2MinusF1, nil
	default:
		return 0, fmt.Errorf("noise: unknown return type %q", name)
	}
}

// Create2D constructs a 2D source of the given kind. Worley sources get the
// default euclidean/f1 configuration; use NewWorley2D for the full options.
func Create2D(kind Kind, cfg Config) (Source2D, error) {
	switch kind {
	case KindPerlin:
		return NewPerlin2D(cfg), nil
	case KindSimplex:
		return NewSimplex2D(cfg), nil
	case KindValue:
		return NewValue2D(cfg), nil
	case KindWorley:
		return NewWorley2D(WorleyConfig{Config: cfg}), nil
	default:
		return Source2D{}, fmt.Errorf("noise: unknown kind %d", int(kind))
	}
}

// Create3D constructs a 3D source of the given kind.
func Create3D(kind Kind, cfg Config) (Source3D, error) {
	switch kind {
	case KindPerlin:
		return NewPerlin3D(cfg), nil
	case KindSimplex:
		return NewSimplex3D(cfg), nil
	case KindValue:
		return NewValue3D(cfg), nil
	case KindWorley:
		return NewWorley3D(WorleyConfig{Config: cfg}), nil
	default:
		return Source3D{}, fmt.Errorf("noise: unknown kind %d", int(kind))
	}
}
