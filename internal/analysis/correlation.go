package analysis

import "math"

// Correlation is a Pearson coefficient that may be undefined.
type Correlation struct {
	R  float64
	OK bool
}

// Mean returns the arithmetic mean of xs; ok is false for an empty slice.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// Pearson computes the product-moment correlation of two aligned sequences.
// It reports ok=false when the lengths differ, when fewer than two points are
// given, when either side is constant, or when the result is not finite.
func Pearson(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	// A constant sequence's mean can be off by an ulp, leaving a tiny nonzero
	// spread, so test equality on the raw values.
	if constant(x) || constant(y) {
		return 0, false
	}
	mx, _ := Mean(x)
	my, _ := Mean(y)
	var num, ssx, ssy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		num += dx * dy
		ssx += dx * dx
		ssy += dy * dy
	}
	den := math.Sqrt(ssx) * math.Sqrt(ssy)
	if den == 0 {
		return 0, false
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}

// Correlate wraps Pearson over an aligned pair.
func Correlate(p AlignedPair) Correlation {
	r, ok := Pearson(p.X, p.Y)
	return Correlation{R: r, OK: ok}
}
