package genetics

import (
	"fmt"
	"math/rand"

	"github.com/mhalverson/goneat/neat"
	"github.com/mhalverson/goneat/neat/math"
)

// Kind enumerates the eight structural/parametric mutation operators.
type Kind int

const (
	AddConnectionMutation Kind = iota
	RemoveConnectionMutation
	AddNodeMutation
	RemoveNodeMutation
	ModifyWeightMutation
	ModifyBiasMutation
	ModifyActivationMutation
	ModifyAggregationMutation
)

// AllKinds lists every mutation operator, in the fixed order used to align
// Options.MutationWeights lookups with the roulette-wheel sample.
var AllKinds = []Kind{
	AddConnectionMutation, RemoveConnectionMutation, AddNodeMutation, RemoveNodeMutation,
	ModifyWeightMutation, ModifyBiasMutation, ModifyActivationMutation, ModifyAggregationMutation,
}

func (k Kind) String() string {
	switch k {
	case AddConnectionMutation:
		return "AddConnection"
	case RemoveConnectionMutation:
		return "RemoveConnection"
	case AddNodeMutation:
		return "AddNode"
	case RemoveNodeMutation:
		return "RemoveNode"
	case ModifyWeightMutation:
		return "ModifyWeight"
	case ModifyBiasMutation:
		return "ModifyBias"
	case ModifyActivationMutation:
		return "ModifyActivation"
	case ModifyAggregationMutation:
		return "ModifyAggregation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SampleKind picks a mutation operator by weighted roulette selection over
// AllKinds, looking up each kind's weight by name.
func SampleKind(rng *rand.Rand, weight func(name string) float64) Kind {
	weights := make([]float64, len(AllKinds))
	for i, k := range AllKinds {
		weights[i] = weight(k.String())
	}
	idx := math.SingleRouletteThrow(rng, weights)
	if idx < 0 {
		idx = 0
	}
	kind := AllKinds[idx]
	neat.DebugLog(fmt.Sprintf("MUTATION: selected operator %s", kind))
	return kind
}

// Mutate applies the given operator to g. It returns false if the operator
// found no eligible target and left g unchanged; no operator ever violates
// invariants I1-I3.
func Mutate(rng *rand.Rand, g *Genome, kind Kind) bool {
	switch kind {
	case AddConnectionMutation:
		return mutateAddConnection(rng, g)
	case RemoveConnectionMutation:
		return mutateRemoveConnection(rng, g)
	case AddNodeMutation:
		return mutateAddNode(rng, g)
	case RemoveNodeMutation:
		return mutateRemoveNode(rng, g)
	case ModifyWeightMutation:
		return mutateModifyWeight(rng, g)
	case ModifyBiasMutation:
		return mutateModifyBias(rng, g)
	case ModifyActivationMutation:
		return mutateModifyActivation(rng, g)
	case ModifyAggregationMutation:
		return mutateModifyAggregation(rng, g)
	default:
		return false
	}
}

func mutateAddConnection(rng *rand.Rand, g *Genome) bool {
	type pair struct{ from, to uint32 }
	var candidates []pair
	n := uint32(len(g.Nodes))
	for i := uint32(0); i < n; i++ {
		for j := uint32(0); j < n; j++ {
			if i == j {
				continue
			}
			if g.CanConnect(i, j) {
				candidates = append(candidates, pair{i, j})
			}
		}
	}
	if len(candidates) == 0 {
		return false
	}
	p := candidates[rng.Intn(len(candidates))]
	_, added := g.AddConnection(rng, p.from, p.to)
	return added
}

func mutateRemoveConnection(rng *rand.Rand, g *Genome) bool {
	var candidates []int
	for i, c := range g.Connections {
		if c.Disabled {
			continue
		}
		if g.enabledOutgoingCount(c.From) >= 2 && g.enabledIncomingCount(c.To) >= 2 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	i := candidates[rng.Intn(len(candidates))]
	g.DisableConnection(i)
	return true
}

func mutateAddNode(rng *rand.Rand, g *Genome) bool {
	var candidates []int
	for i, c := range g.Connections {
		if !c.Disabled {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	i := candidates[rng.Intn(len(candidates))]
	c := g.Connections[i]
	g.DisableConnection(i)
	h := g.AddNode(rng)
	g.Connections = append(g.Connections,
		ConnectionGene{From: c.From, To: h, Weight: c.Weight},
		ConnectionGene{From: h, To: c.To, Weight: randWeight(rng)},
	)
	return true
}

func mutateRemoveNode(rng *rand.Rand, g *Genome) bool {
	var candidates []uint32
	for i := g.Inputs + g.Outputs; i < uint32(len(g.Nodes)); i++ {
		if g.kindOf(i) == Hidden && g.enabledIncomingCount(i) >= 1 && g.enabledOutgoingCount(i) >= 1 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	h := candidates[rng.Intn(len(candidates))]

	var preds, succs []uint32
	for _, c := range g.Connections {
		if c.Disabled {
			continue
		}
		if c.To == h {
			preds = append(preds, c.From)
		}
		if c.From == h {
			succs = append(succs, c.To)
		}
	}
	for _, p := range preds {
		for _, s := range succs {
			g.AddConnection(rng, p, s)
		}
	}
	for i, c := range g.Connections {
		if c.From == h || c.To == h {
			g.Connections[i].Disabled = true
		}
	}
	return true
}

// perturbOrResample applies the 0.1-probability perturb / 0.9-probability
// resample policy shared by ModifyWeight and ModifyBias, clamped to [-1,1].
func perturbOrResample(rng *rand.Rand, current float64) float64 {
	var next float64
	if rng.Float64() < 0.1 {
		next = current + rng.NormFloat64()*0.2 + 0.5
	} else {
		next = rng.Float64()*2 - 1
	}
	if next < -1 {
		return -1
	}
	if next > 1 {
		return 1
	}
	return next
}

func mutateModifyWeight(rng *rand.Rand, g *Genome) bool {
	if len(g.Connections) == 0 {
		return false
	}
	i := rng.Intn(len(g.Connections))
	g.Connections[i].Weight = perturbOrResample(rng, g.Connections[i].Weight)
	return true
}

func nonInputNodeIndices(g *Genome) []uint32 {
	var out []uint32
	for i := g.Inputs; i < uint32(len(g.Nodes)); i++ {
		out = append(out, i)
	}
	return out
}

func mutateModifyBias(rng *rand.Rand, g *Genome) bool {
	candidates := nonInputNodeIndices(g)
	if len(candidates) == 0 {
		return false
	}
	i := candidates[rng.Intn(len(candidates))]
	g.Nodes[i].Bias = perturbOrResample(rng, g.Nodes[i].Bias)
	return true
}

func mutateModifyActivation(rng *rand.Rand, g *Genome) bool {
	candidates := nonInputNodeIndices(g)
	if len(candidates) == 0 {
		return false
	}
	i := candidates[rng.Intn(len(candidates))]
	g.Nodes[i].Activation = randActivationKind(rng)
	return true
}

func mutateModifyAggregation(rng *rand.Rand, g *Genome) bool {
	candidates := nonInputNodeIndices(g)
	if len(candidates) == 0 {
		return false
	}
	i := candidates[rng.Intn(len(candidates))]
	g.Nodes[i].Aggregation = randAggregation(rng)
	return true
}
