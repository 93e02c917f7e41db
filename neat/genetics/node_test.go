package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Input", Input.String())
	assert.Equal(t, "Hidden", Hidden.String())
	assert.Equal(t, "Output", Output.String())
	assert.Equal(t, "Constant", Constant.String())
}

func TestNodeGeneClone_Independent(t *testing.T) {
	n := NodeGene{Kind: Hidden, Bias: 0.5}
	c := n.clone()
	c.Bias = 1.5
	assert.Equal(t, 0.5, n.Bias)
	assert.Equal(t, 1.5, c.Bias)
}
