package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Crossover of parents with differing inputs or outputs yields no child.
func TestCrossover_MismatchedShapeReturnsFalse(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	a := New(rng, 2, 1)
	b := New(rng, 3, 1)
	_, ok := Crossover(rng, a, 1.0, b, 1.0)
	assert.False(t, ok)
}

// Crossover of a genome with itself (even at differing declared fitness)
// returns a child structurally equal to it.
func TestCrossover_SameGenomeReturnsStructurallyEqualChild(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	g := New(rng, 2, 1)

	child, ok := Crossover(rng, g, 1.0, g, 2.0)
	require.True(t, ok)

	assert.Equal(t, g.Inputs, child.Inputs)
	assert.Equal(t, g.Outputs, child.Outputs)
	require.Len(t, child.Nodes, len(g.Nodes))
	require.Len(t, child.Connections, len(g.Connections))
	for i := range g.Connections {
		assert.Equal(t, g.Connections[i].From, child.Connections[i].From)
		assert.Equal(t, g.Connections[i].To, child.Connections[i].To)
		assert.Equal(t, g.Connections[i].Weight, child.Connections[i].Weight)
		assert.Equal(t, g.Connections[i].Disabled, child.Connections[i].Disabled)
	}
}

// Any genome produced by crossover stays feed-forward.
func TestCrossover_ChildIsFeedForward(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	a := New(rng, 2, 2)
	b := New(rng, 2, 2)
	child, ok := Crossover(rng, a, 1.0, b, 0.5)
	require.True(t, ok)
	_, feasible := child.NodeOrder()
	assert.True(t, feasible)
}

// With equal fitness, swapping the argument order only swaps which parent
// seeds the uniform choices; the child's innovation-number set is the same
// either way when both parents share a topology.
func TestCrossover_EqualFitnessArgumentOrderAlignsByInnovation(t *testing.T) {
	a := New(rand.New(rand.NewSource(57)), 2, 1)
	b := New(rand.New(rand.NewSource(58)), 2, 1)

	innovations := func(g *Genome) map[int64]bool {
		out := make(map[int64]bool, len(g.Connections))
		for _, c := range g.Connections {
			out[InnovationNumber(c.From, c.To)] = true
		}
		return out
	}

	ab, ok := Crossover(rand.New(rand.NewSource(59)), a, 1.0, b, 1.0)
	require.True(t, ok)
	ba, ok := Crossover(rand.New(rand.NewSource(59)), b, 1.0, a, 1.0)
	require.True(t, ok)
	assert.Equal(t, innovations(ab), innovations(ba))
}

func TestCrossover_FitterParentContributesDisjointGenes(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	fitter := New(rng, 1, 1)
	fitter.AddNode(rng)
	fitter.Connections = append(fitter.Connections, ConnectionGene{From: 0, To: 3, Weight: 0.75})

	other := New(rng, 1, 1)

	child, ok := Crossover(rng, fitter, 5.0, other, 1.0)
	require.True(t, ok)
	assert.Len(t, child.Connections, len(fitter.Connections))
}
