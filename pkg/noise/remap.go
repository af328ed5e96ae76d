package noise

import "math"

// Normalize remaps a zero-centered sample from [-1, 1] to [0, 1].
func Normalize(v float64) float64 {
	return v*0.5 + 0.5
}

// Ridge inverts the absolute value, turning zero crossings into crests.
func Ridge(v float64) float64 {
	return 1 - math.Abs(v)
}

// Billow is the absolute value, producing puffy cloud-like shapes.
func Billow(v float64) float64 {
	return math.Abs(v)
}
