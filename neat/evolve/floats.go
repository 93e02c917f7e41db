package evolve

import (
	stdmath "math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Floats provides descriptive statistics over a slice of per-generation
// values (fitness, complexity, age, diversity).
type Floats []float64

func (x Floats) Min() float64 {
	if len(x) == 0 {
		return stdmath.NaN()
	}
	return floats.Min(x)
}

func (x Floats) Max() float64 {
	if len(x) == 0 {
		return stdmath.NaN()
	}
	return floats.Max(x)
}

func (x Floats) Sum() float64 {
	return floats.Sum(x)
}

func (x Floats) Mean() float64 {
	if len(x) == 0 {
		return stdmath.NaN()
	}
	return stat.Mean(x, nil)
}

func (x Floats) StdDev() float64 {
	if len(x) == 0 {
		return stdmath.NaN()
	}
	return stat.StdDev(x, nil)
}

func (x Floats) Median() float64 {
	if len(x) == 0 {
		return stdmath.NaN()
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
