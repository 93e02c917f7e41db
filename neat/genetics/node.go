package genetics

import (
	"fmt"

	"github.com/mhalverson/goneat/neat/math"
)

// NodeKind classifies a NodeGene's role in the feed-forward graph.
type NodeKind byte

const (
	Input NodeKind = iota
	Hidden
	Output
	// Constant is reserved for future operators; no constructor or
	// mutator in this package ever produces it.
	Constant
)

func (k NodeKind) String() string {
	switch k {
	case Input:
		return "Input"
	case Hidden:
		return "Hidden"
	case Output:
		return "Output"
	case Constant:
		return "Constant"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(k))
	}
}

// NodeGene is one node of a Genome. Input nodes always carry
// Activation=math.Input and Bias=0.
type NodeGene struct {
	Kind        NodeKind
	Aggregation math.Aggregation
	Activation  math.ActivationKind
	Bias        float64
}

func (n NodeGene) clone() NodeGene {
	return n
}
