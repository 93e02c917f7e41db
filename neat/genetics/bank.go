package genetics

// GenomeBank owns the current generation's genomes and a snapshot of the
// previous generation, which speciation needs in order to resolve species
// representatives that may not have survived into the current generation.
type GenomeBank struct {
	Current  []*Genome
	Previous []*Genome
}

// NewGenomeBank creates a bank seeded with the given initial generation.
func NewGenomeBank(initial []*Genome) *GenomeBank {
	return &GenomeBank{Current: initial}
}

// IDs returns the ids of the current generation's genomes, in order.
func (b *GenomeBank) IDs() []GenomeID {
	ids := make([]GenomeID, len(b.Current))
	for i, g := range b.Current {
		ids[i] = g.ID
	}
	return ids
}

// AllGenomes returns a lookup covering both the current and previous
// generations, as required by Speciate to resolve prior representatives.
func (b *GenomeBank) AllGenomes() map[GenomeID]*Genome {
	all := make(map[GenomeID]*Genome, len(b.Current)+len(b.Previous))
	for _, g := range b.Previous {
		all[g.ID] = g
	}
	for _, g := range b.Current {
		all[g.ID] = g
	}
	return all
}

// Rollover moves the current generation into Previous and installs next as
// the new current generation.
func (b *GenomeBank) Rollover(next []*Genome) {
	b.Previous = b.Current
	b.Current = next
}

// ByID returns the current generation's genome with the given id, or nil.
func (b *GenomeBank) ByID(id GenomeID) *Genome {
	for _, g := range b.Current {
		if g.ID == id {
			return g
		}
	}
	return nil
}
