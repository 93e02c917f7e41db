// Package network evaluates the phenotype built from a NEAT genome: a
// topologically-ordered forward pass through pluggable activation and
// aggregation kernels.
package network

import (
	"github.com/mhalverson/goneat/neat/genetics"
	"github.com/mhalverson/goneat/neat/math"
)

// Node is one phenotype node. Value is nil ("None") until ForwardPass
// assigns it; ClearValues resets it back to nil between passes.
type Node struct {
	Kind        genetics.NodeKind
	Aggregation math.Aggregation
	Activation  math.ActivationKind
	Bias        float64
	Value       *float64
}

// Connection is an enabled phenotype edge.
type Connection struct {
	From, To uint32
	Weight   float64
}

// Network is the phenotype built from a Genome: its enabled connections
// and a pinned topological evaluation order.
type Network struct {
	Inputs, Outputs uint32
	Nodes           []Node
	Connections     []Connection
	Order           []uint32

	incoming [][]Connection
}

// FromGenome builds the phenotype of g. It returns (nil, false) if g's
// enabled-connection subgraph is not a valid feed-forward DAG.
func FromGenome(g *genetics.Genome) (*Network, bool) {
	order, ok := g.NodeOrder()
	if !ok {
		return nil, false
	}

	nodes := make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = Node{Kind: n.Kind, Aggregation: n.Aggregation, Activation: n.Activation, Bias: n.Bias}
	}

	var conns []Connection
	incoming := make([][]Connection, len(nodes))
	for _, c := range g.Connections {
		if c.Disabled {
			continue
		}
		conn := Connection{From: c.From, To: c.To, Weight: c.Weight}
		conns = append(conns, conn)
		incoming[c.To] = append(incoming[c.To], conn)
	}

	return &Network{
		Inputs: g.Inputs, Outputs: g.Outputs,
		Nodes: nodes, Connections: conns, Order: order,
		incoming: incoming,
	}, true
}

// ClearValues resets every node's value to None, ready for a fresh pass.
func (n *Network) ClearValues() {
	for i := range n.Nodes {
		n.Nodes[i].Value = nil
	}
}

// ForwardPass clears prior values and walks Order once: input nodes are
// loaded directly from inputs, every other node aggregates its incoming
// edges' weighted predecessor values, adds its bias and applies its
// activation kernel. The result may contain NaN and is returned as-is.
func (n *Network) ForwardPass(inputs []float64) []float64 {
	n.ClearValues()
	for _, idx := range n.Order {
		node := &n.Nodes[idx]
		if node.Kind == genetics.Input {
			v := inputs[idx]
			node.Value = &v
			continue
		}
		components := make([]float64, len(n.incoming[idx]))
		for i, c := range n.incoming[idx] {
			components[i] = nodeValue(&n.Nodes[c.From]) * c.Weight
		}
		z := math.Aggregate(node.Aggregation, components) + node.Bias
		out := math.Activate(z, node.Activation)
		node.Value = &out
	}

	outputs := make([]float64, 0, n.Outputs)
	for i := n.Inputs; i < n.Inputs+n.Outputs; i++ {
		outputs = append(outputs, nodeValue(&n.Nodes[i]))
	}
	return outputs
}

func nodeValue(n *Node) float64 {
	if n.Value == nil {
		return 0
	}
	return *n.Value
}

// NodeCount and ConnectionCount report phenotype complexity. The evolution
// loop's cost-adjusted fitness does not use them; it counts the genome's genes.
func (n *Network) NodeCount() int       { return len(n.Nodes) }
func (n *Network) ConnectionCount() int { return len(n.Connections) }
