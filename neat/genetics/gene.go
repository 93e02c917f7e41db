package genetics

import "fmt"

// ConnectionGene is a single link between two node indices.
type ConnectionGene struct {
	From, To uint32
	Weight   float64
	Disabled bool
}

func (c ConnectionGene) clone() ConnectionGene {
	return c
}

func (c ConnectionGene) String() string {
	state := "enabled"
	if c.Disabled {
		state = "disabled"
	}
	return fmt.Sprintf("(%d -> %d) w=%.3f [%s] innov=%d", c.From, c.To, c.Weight, state, InnovationNumber(c.From, c.To))
}

// InnovationNumber derives a deterministic alignment key for a connection
// from its endpoints via the Cantor pairing function, giving a single
// integer that is injective over (from, to).
func InnovationNumber(from, to uint32) int64 {
	f, t := int64(from), int64(to)
	return (f+t)*(f+t+1)/2 + t
}
