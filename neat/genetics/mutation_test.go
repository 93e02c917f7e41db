package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleKind_CoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[Kind]bool)
	for i := 0; i < 500; i++ {
		seen[SampleKind(rng, func(string) float64 { return 1 })] = true
	}
	assert.Len(t, seen, len(AllKinds))
}

func TestKindString_MatchesMutationWeightNames(t *testing.T) {
	names := map[string]bool{
		"AddConnection": true, "RemoveConnection": true, "AddNode": true, "RemoveNode": true,
		"ModifyWeight": true, "ModifyBias": true, "ModifyActivation": true, "ModifyAggregation": true,
	}
	for _, k := range AllKinds {
		assert.True(t, names[k.String()], "unexpected kind name %q", k.String())
	}
}

// AddNode on a genome with exactly one enabled connection u->v (weight w)
// produces a Hidden node h, enabled edges u->h (weight w) and h->v
// (random weight), and disables the original u->v.
func TestMutateAddNode_SplitsTheOnlyConnection(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := New(rng, 1, 1)
	originalWeight := g.Connections[0].Weight

	ok := Mutate(rng, g, AddNodeMutation)
	require.True(t, ok)

	require.Len(t, g.Nodes, 3)
	h := uint32(2)
	assert.Equal(t, Hidden, g.Nodes[h].Kind)

	assert.True(t, g.Connections[0].Disabled)

	var uToH, hToV *ConnectionGene
	for i := range g.Connections {
		c := &g.Connections[i]
		if c.From == 0 && c.To == h {
			uToH = c
		}
		if c.From == h && c.To == 1 {
			hToV = c
		}
	}
	require.NotNil(t, uToH)
	require.NotNil(t, hToV)
	assert.Equal(t, originalWeight, uToH.Weight)
	assert.False(t, uToH.Disabled)
	assert.False(t, hToV.Disabled)
}

func TestMutateRemoveConnection_NeverDropsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := New(rng, 1, 1)
	ok := Mutate(rng, g, RemoveConnectionMutation)
	assert.False(t, ok, "the only connection must not be removable")
}

func TestMutateAddConnection_NoCandidatesOnFullyConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := New(rng, 2, 2)
	ok := Mutate(rng, g, AddConnectionMutation)
	assert.False(t, ok)
}

func TestMutateModifyWeight_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	g := New(rng, 1, 1)
	for i := 0; i < 100; i++ {
		Mutate(rng, g, ModifyWeightMutation)
		assert.GreaterOrEqual(t, g.Connections[0].Weight, -1.0)
		assert.LessOrEqual(t, g.Connections[0].Weight, 1.0)
	}
}

// Any sequence of mutation operators leaves the genome feed-forward: a
// topological order always exists, and every enabled connection runs from a
// shallower node to a deeper one by longest-path depth.
func TestMutate_RandomSequenceKeepsGenomeFeedForward(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	g := New(rng, 3, 2)
	for i := 0; i < 200; i++ {
		kind := AllKinds[rng.Intn(len(AllKinds))]
		Mutate(rng, g, kind)

		_, feasible := g.NodeOrder()
		require.True(t, feasible, "node order lost after %s at step %d", kind, i)

		depths := g.depths()
		for _, c := range g.Connections {
			if c.Disabled {
				continue
			}
			require.LessOrEqual(t, g.depthOf(depths, c.From), g.depthOf(depths, c.To),
				"recurrent enabled edge %d->%d at step %d", c.From, c.To, i)
		}
	}
}

func TestMutateRemoveNode_LeavesGenomeFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	g := New(rng, 2, 2)
	Mutate(rng, g, AddNodeMutation)
	Mutate(rng, g, RemoveNodeMutation)
	_, ok := g.NodeOrder()
	assert.True(t, ok, "node_order must stay feasible after RemoveNode")
}
