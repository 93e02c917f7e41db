package genetics

import "math/rand"

// Crossover recombines two parents, aligned by innovation number, into a
// child genome. It returns (nil, false) if the parents' input/output
// counts differ, or if the recombined topology is not realizable as a
// feed-forward network.
func Crossover(rng *rand.Rand, a *Genome, fitnessA float64, b *Genome, fitnessB float64) (*Genome, bool) {
	if a.Inputs != b.Inputs || a.Outputs != b.Outputs {
		return nil, false
	}

	fitter, other := a, b
	if fitnessB > fitnessA {
		fitter, other = b, a
	}

	child := Empty(rng, fitter.Inputs, fitter.Outputs)
	nodeCount := int(fitter.Inputs + fitter.Outputs)

	for _, c := range fitter.Connections {
		var match *ConnectionGene
		for i := range other.Connections {
			o := other.Connections[i]
			if o.From == c.From && o.To == c.To {
				match = &other.Connections[i]
				break
			}
		}

		weight := c.Weight
		disabled := c.Disabled
		if match != nil {
			if rng.Intn(2) == 0 {
				weight = match.Weight
			}
			switch {
			case c.Disabled && match.Disabled:
				disabled = rng.Float64() < 0.75
			case !c.Disabled && !match.Disabled:
				disabled = false
			default:
				disabled = rng.Float64() < 0.5
			}
		}

		child.Connections = append(child.Connections, ConnectionGene{
			From: c.From, To: c.To, Weight: weight, Disabled: disabled,
		})
		if int(c.From)+1 > nodeCount {
			nodeCount = int(c.From) + 1
		}
		if int(c.To)+1 > nodeCount {
			nodeCount = int(c.To) + 1
		}
	}

	child.Nodes = make([]NodeGene, nodeCount)
	for i := 0; i < nodeCount; i++ {
		fitterHas := i < len(fitter.Nodes)
		otherHas := i < len(other.Nodes)
		switch {
		case fitterHas && otherHas:
			if rng.Intn(2) == 0 {
				child.Nodes[i] = fitter.Nodes[i].clone()
			} else {
				child.Nodes[i] = other.Nodes[i].clone()
			}
		case fitterHas:
			child.Nodes[i] = fitter.Nodes[i].clone()
		case otherHas:
			child.Nodes[i] = other.Nodes[i].clone()
		}
	}

	if _, ok := child.NodeOrder(); !ok {
		return nil, false
	}
	return child, true
}
