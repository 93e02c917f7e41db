package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultCoef = DistanceCoefficients{
	Disjoint: 1.0, Weight: 0.5, Disabled: 1.0, Bias: 0.5, Activation: 1.0, Aggregation: 1.0,
}

// Two identical fresh genomes have distance 0.
func TestDistance_IdenticalGenomesIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	g := New(rng, 2, 1)
	clone := g.Clone()
	assert.Equal(t, 0.0, Distance(defaultCoef, g, clone))
}

// Distance is symmetric.
func TestDistance_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	a := New(rng, 2, 1)
	b := New(rng, 2, 1)
	assert.Equal(t, Distance(defaultCoef, a, b), Distance(defaultCoef, b, a))
}

// Introducing a single disjoint connection increases distance by the
// disjoint coefficient over the larger connection count.
func TestDistance_SingleDisjointConnection(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	a := New(rng, 2, 1)
	b := a.Clone()
	b.AddNode(rand.New(rand.NewSource(1)))
	b.Connections = append(b.Connections, ConnectionGene{From: 0, To: 3, Weight: 0.25})

	before := Distance(defaultCoef, a, a.Clone())
	after := Distance(defaultCoef, a, b)
	maxConns := len(b.Connections)
	assert.InDelta(t, before+defaultCoef.Disjoint/float64(maxConns), after, 1e-9)
}

func TestDistance_NoConnectionsNoDivideByZero(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	a := Empty(rng, 1, 1)
	b := Empty(rng, 1, 1)
	assert.Equal(t, 0.0, Distance(defaultCoef, a, b))
}

func TestDistanceCache_MemoizesAndIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	a := New(rng, 2, 1)
	b := New(rng, 2, 1)
	cache := NewDistanceCache()
	d1 := cache.Distance(defaultCoef, a, b)
	d2 := cache.Distance(defaultCoef, b, a)
	assert.Equal(t, d1, d2)
}
