package genetics

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoadYAML_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(401))
	g := New(rng, 2, 1)
	f := 3.25
	g.Fitness = &f

	var buf bytes.Buffer
	require.NoError(t, DumpYAML(&buf, g))

	loaded, err := LoadYAML(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.ID, loaded.ID)
	assert.Equal(t, g.Inputs, loaded.Inputs)
	assert.Equal(t, g.Outputs, loaded.Outputs)
	require.NotNil(t, loaded.Fitness)
	assert.Equal(t, *g.Fitness, *loaded.Fitness)
	require.Len(t, loaded.Nodes, len(g.Nodes))
	require.Len(t, loaded.Connections, len(g.Connections))
	for i := range g.Connections {
		assert.Equal(t, g.Connections[i], loaded.Connections[i])
	}
}
