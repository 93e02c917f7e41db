package math

import (
	"fmt"
	"sort"
)

// Aggregation is the closed set of functions combining a node's incoming
// edge products before its bias and activation are applied.
type Aggregation byte

const (
	Product Aggregation = iota
	Sum
	Max
	Min
	MaxAbs
	Median
	Mean
)

// AggregationKinds lists every Aggregation kind, in the order used by
// ModifyAggregation's uniform pick.
var AggregationKinds = []Aggregation{Product, Sum, Max, Min, MaxAbs, Median, Mean}

// Aggregate combines components according to kind. An empty slice yields
// the identity for Sum/Product (0/1) and 0 for Median, Max, Min and MaxAbs;
// Mean divides by the length, so an empty slice yields NaN. A node with no
// enabled incoming connections still appears in the topological ordering,
// so the forward pass does aggregate empty slices.
func Aggregate(kind Aggregation, components []float64) float64 {
	switch kind {
	case Product:
		return aggregateProduct(components)
	case Sum:
		return aggregateSum(components)
	case Max:
		return aggregateMax(components)
	case Min:
		return aggregateMin(components)
	case MaxAbs:
		return aggregateMaxAbs(components)
	case Median:
		return aggregateMedian(components)
	case Mean:
		return aggregateSum(components) / float64(len(components))
	default:
		panic(fmt.Sprintf("unknown aggregation kind: %d", byte(kind)))
	}
}

func aggregateSum(components []float64) float64 {
	total := 0.0
	for _, v := range components {
		total += v
	}
	return total
}

func aggregateProduct(components []float64) float64 {
	total := 1.0
	for _, v := range components {
		total *= v
	}
	return total
}

func aggregateMax(components []float64) float64 {
	if len(components) == 0 {
		return 0
	}
	m := components[0]
	for _, v := range components[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func aggregateMin(components []float64) float64 {
	if len(components) == 0 {
		return 0
	}
	m := components[0]
	for _, v := range components[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func aggregateMaxAbs(components []float64) float64 {
	m := 0.0
	for _, v := range components {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// aggregateMedian returns the lower-middle element at even length, not
// the mean of the two middles.
func aggregateMedian(components []float64) float64 {
	if len(components) == 0 {
		return 0
	}
	sorted := make([]float64, len(components))
	copy(sorted, components)
	sort.Float64s(sorted)
	return sorted[(len(sorted)-1)/2]
}

func (a Aggregation) String() string {
	switch a {
	case Product:
		return "Product"
	case Sum:
		return "Sum"
	case Max:
		return "Max"
	case Min:
		return "Min"
	case MaxAbs:
		return "MaxAbs"
	case Median:
		return "Median"
	case Mean:
		return "Mean"
	default:
		return fmt.Sprintf("Aggregation(%d)", byte(a))
	}
}
