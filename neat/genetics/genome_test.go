package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func TestNew_FullyConnected(t *testing.T) {
	g := New(newRNG(), 2, 1)
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Connections, 2)
	for _, n := range g.Nodes[:2] {
		assert.Equal(t, Input, n.Kind)
	}
	assert.Equal(t, Output, g.Nodes[2].Kind)
}

// A genome with 2 inputs, 2 outputs and no hidden nodes places both
// inputs before both outputs in its node order.
func TestNodeOrder_InputsBeforeOutputs(t *testing.T) {
	g := New(newRNG(), 2, 2)
	order, ok := g.NodeOrder()
	require.True(t, ok)
	require.Len(t, order, 4)

	pos := make(map[uint32]int, len(order))
	for i, idx := range order {
		pos[idx] = i
	}
	for in := uint32(0); in < 2; in++ {
		for out := uint32(2); out < 4; out++ {
			assert.Less(t, pos[in], pos[out])
		}
	}
}

func TestIsProjecting_DirectEdge(t *testing.T) {
	g := New(newRNG(), 1, 1)
	assert.True(t, g.IsProjecting(0, 1))
	assert.False(t, g.IsProjecting(1, 0))
}

func TestCanConnect_RejectsFromOutput(t *testing.T) {
	g := New(newRNG(), 1, 1)
	assert.False(t, g.CanConnect(1, 0))
}

func TestCanConnect_RejectsToInput(t *testing.T) {
	g := New(newRNG(), 1, 1)
	assert.False(t, g.CanConnect(0, 0))
}

func TestCanConnect_RejectsExistingProjection(t *testing.T) {
	g := New(newRNG(), 1, 1)
	assert.False(t, g.CanConnect(0, 1))
}

// AddConnection on a fully-connected genome is a no-op.
func TestAddConnection_FullyConnectedIsNoOp(t *testing.T) {
	g := New(newRNG(), 2, 2)
	before := len(g.Connections)
	_, added := g.AddConnection(newRNG(), 0, 2)
	assert.False(t, added)
	assert.Len(t, g.Connections, before)
}

func TestAddConnection_ReenablesExistingDisabledGene(t *testing.T) {
	g := New(newRNG(), 1, 1)
	g.DisableConnection(0)
	before := len(g.Connections)
	idx, added := g.AddConnection(newRNG(), 0, 1)
	assert.True(t, added)
	assert.Equal(t, 0, idx)
	assert.False(t, g.Connections[0].Disabled)
	assert.Len(t, g.Connections, before)
}

func TestAddNode_AppendsHidden(t *testing.T) {
	g := New(newRNG(), 1, 1)
	idx := g.AddNode(newRNG())
	assert.Equal(t, uint32(2), idx)
	assert.Equal(t, Hidden, g.Nodes[idx].Kind)
}

func TestClone_IsDeep(t *testing.T) {
	g := New(newRNG(), 1, 1)
	f := 1.5
	g.Fitness = &f
	clone := g.Clone()
	clone.Connections[0].Weight = 99
	assert.NotEqual(t, g.Connections[0].Weight, clone.Connections[0].Weight)

	*clone.Fitness = 2.5
	assert.Equal(t, 1.5, *g.Fitness)
}

func TestEnabledConnectionCount(t *testing.T) {
	g := New(newRNG(), 2, 1)
	assert.Equal(t, 2, g.EnabledConnectionCount())
	g.DisableConnection(0)
	assert.Equal(t, 1, g.EnabledConnectionCount())
}
