// Package genetics implements the NEAT genome representation, its
// structural mutation algebra, crossover, genomic distance and speciation.
package genetics

import (
	"math/rand"

	"github.com/mhalverson/goneat/neat/math"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// GenomeID is a 64-bit random identifier assigned to a Genome at birth.
type GenomeID uint64

// Genome is the genotype: an ordered sequence of node genes and an ordered
// sequence of connection genes. Node indices are positions in Nodes - the
// first Inputs entries are Input nodes, the next Outputs entries are Output
// nodes, and any further entries are Hidden.
type Genome struct {
	ID      GenomeID
	Inputs  uint32
	Outputs uint32
	Fitness *float64

	Nodes       []NodeGene
	Connections []ConnectionGene
}

func newGenomeID(rng *rand.Rand) GenomeID {
	return GenomeID(rng.Uint64())
}

func randWeight(rng *rand.Rand) float64 {
	return float64(math.RandSign(rng)) * rng.Float64()
}

// randBirthBias samples a node's initial bias in the asymmetric [-1, 1.9]
// range; only ModifyBias's later resample clamps it back to [-1,1].
func randBirthBias(rng *rand.Rand) float64 {
	return rng.Float64()*2.9 - 1.0
}

func randActivationKind(rng *rand.Rand) math.ActivationKind {
	return math.ActivationKinds[rng.Intn(len(math.ActivationKinds))]
}

func randAggregation(rng *rand.Rand) math.Aggregation {
	return math.AggregationKinds[rng.Intn(len(math.AggregationKinds))]
}

func newNonInputNode(rng *rand.Rand, kind NodeKind) NodeGene {
	return NodeGene{
		Kind:        kind,
		Aggregation: randAggregation(rng),
		Activation:  randActivationKind(rng),
		Bias:        randBirthBias(rng),
	}
}

// New creates a fully-connected feed-forward genome: inputs+outputs nodes
// and an enabled connection from every input to every output, with random
// weights, activations, aggregations and biases.
func New(rng *rand.Rand, inputs, outputs uint32) *Genome {
	g := &Genome{
		ID:      newGenomeID(rng),
		Inputs:  inputs,
		Outputs: outputs,
		Nodes:   make([]NodeGene, 0, inputs+outputs),
	}
	for i := uint32(0); i < inputs; i++ {
		g.Nodes = append(g.Nodes, NodeGene{Kind: Input, Activation: math.Input})
	}
	for i := uint32(0); i < outputs; i++ {
		g.Nodes = append(g.Nodes, newNonInputNode(rng, Output))
	}
	for in := uint32(0); in < inputs; in++ {
		for out := inputs; out < inputs+outputs; out++ {
			g.Connections = append(g.Connections, ConnectionGene{
				From: in, To: out, Weight: randWeight(rng),
			})
		}
	}
	return g
}

// Empty creates a genome with no nodes and no connections, used as a
// crossover target before its node and connection genes are populated.
func Empty(rng *rand.Rand, inputs, outputs uint32) *Genome {
	return &Genome{
		ID:      newGenomeID(rng),
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// Clone deep-copies g, including a fresh top-level Fitness pointer.
func (g *Genome) Clone() *Genome {
	clone := &Genome{
		ID:          g.ID,
		Inputs:      g.Inputs,
		Outputs:     g.Outputs,
		Nodes:       make([]NodeGene, len(g.Nodes)),
		Connections: make([]ConnectionGene, len(g.Connections)),
	}
	copy(clone.Nodes, g.Nodes)
	copy(clone.Connections, g.Connections)
	if g.Fitness != nil {
		f := *g.Fitness
		clone.Fitness = &f
	}
	return clone
}

func (g *Genome) kindOf(i uint32) NodeKind {
	return g.Nodes[i].Kind
}

// NodeOrder computes a topological order of all node indices using enabled
// connections plus any hypothetical additional connections, for feasibility
// testing. It returns (order, true) iff every node is reachable; (nil,
// false) otherwise, signaling a cyclic or infeasible graph.
//
// A genome with nodes but no enabled connections is still orderable here
// (every node admits immediately); callers that require a connected
// phenotype must check the connection count themselves.
func (g *Genome) NodeOrder(extra ...ConnectionGene) ([]uint32, bool) {
	dg := simple.NewDirectedGraph()
	for i := range g.Nodes {
		dg.AddNode(simple.Node(int64(i)))
	}
	addEdge := func(c ConnectionGene) {
		dg.SetEdge(simple.Edge{F: simple.Node(int64(c.From)), T: simple.Node(int64(c.To))})
	}
	for _, c := range g.Connections {
		if !c.Disabled {
			addEdge(c)
		}
	}
	for _, c := range extra {
		addEdge(c)
	}

	sorted, err := topo.Sort(dg)
	if err != nil {
		return nil, false
	}
	order := make([]uint32, len(sorted))
	for i, n := range sorted {
		order[i] = uint32(n.ID())
	}
	return order, true
}

// IsProjecting reports whether src reaches tgt via a path of enabled
// connections (a BFS over the enabled forward-edge subgraph).
func (g *Genome) IsProjecting(src, tgt uint32) bool {
	visited := map[uint32]bool{src: true}
	queue := []uint32{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, c := range g.Connections {
			if c.Disabled || c.From != u {
				continue
			}
			v := c.To
			if v == tgt {
				return true
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

const unreachableDepth = ^uint32(0)

// depths computes, for every node reachable from an Input node, the length
// of the longest path from any input to it, using all connections
// (enabled and disabled). Nodes absent from the result are unreachable.
func (g *Genome) depths() map[uint32]uint32 {
	depth := make(map[uint32]uint32)
	queue := make([]uint32, 0, g.Inputs)
	for i := uint32(0); i < g.Inputs; i++ {
		depth[i] = 0
		queue = append(queue, i)
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		for _, c := range g.Connections {
			if c.From != u {
				continue
			}
			if cur, ok := depth[c.To]; !ok || d+1 > cur {
				depth[c.To] = d + 1
				queue = append(queue, c.To)
			}
		}
	}
	return depth
}

func (g *Genome) depthOf(depths map[uint32]uint32, node uint32) uint32 {
	if d, ok := depths[node]; ok {
		return d
	}
	return unreachableDepth
}

// CanConnect reports whether a new enabled connection from->to would keep
// the genome feed-forward: from is not Output, to is not Input, the edge is
// not recurrent (by longest-path depth), and from does not already project
// to to.
func (g *Genome) CanConnect(from, to uint32) bool {
	if g.kindOf(from) == Output || g.kindOf(to) == Input {
		return false
	}
	depths := g.depths()
	if g.depthOf(depths, from) > g.depthOf(depths, to) {
		return false
	}
	return !g.IsProjecting(from, to)
}

// AddConnection enables a from->to connection if CanConnect allows it,
// re-enabling an existing disabled gene for that pair if one exists or else
// appending a new one with a random weight. Returns the affected
// connection's index and whether anything changed.
func (g *Genome) AddConnection(rng *rand.Rand, from, to uint32) (int, bool) {
	if !g.CanConnect(from, to) {
		return -1, false
	}
	for i, c := range g.Connections {
		if c.From == from && c.To == to {
			g.Connections[i].Disabled = false
			return i, true
		}
	}
	g.Connections = append(g.Connections, ConnectionGene{From: from, To: to, Weight: randWeight(rng)})
	return len(g.Connections) - 1, true
}

// DisableConnection marks connection i as disabled.
func (g *Genome) DisableConnection(i int) {
	g.Connections[i].Disabled = true
}

// AddNode appends a new Hidden node and returns its index.
func (g *Genome) AddNode(rng *rand.Rand) uint32 {
	g.Nodes = append(g.Nodes, newNonInputNode(rng, Hidden))
	return uint32(len(g.Nodes) - 1)
}

// enabledIncomingCount and enabledOutgoingCount count a node's enabled
// incident connections, used by RemoveConnection/RemoveNode eligibility.
func (g *Genome) enabledIncomingCount(node uint32) int {
	n := 0
	for _, c := range g.Connections {
		if !c.Disabled && c.To == node {
			n++
		}
	}
	return n
}

func (g *Genome) enabledOutgoingCount(node uint32) int {
	n := 0
	for _, c := range g.Connections {
		if !c.Disabled && c.From == node {
			n++
		}
	}
	return n
}

// EnabledConnectionCount reports how many of the genome's connection genes
// are currently enabled, used by the evolution loop's complexity cost.
func (g *Genome) EnabledConnectionCount() int {
	n := 0
	for _, c := range g.Connections {
		if !c.Disabled {
			n++
		}
	}
	return n
}
