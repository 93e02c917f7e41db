package evolve

import (
	"io"

	"github.com/sbinet/npyio/npz"
)

// WriteNPZ dumps the run's generation-by-generation history to an NPZ
// archive: best_fitness, mean_fitness and species_count vectors plus the
// best genome's complexity, one entry per generation.
func (r RunResult) WriteNPZ(w io.Writer) error {
	bestFitness := make(Floats, len(r.History))
	meanFitness := make(Floats, len(r.History))
	speciesCount := make(Floats, len(r.History))
	bestNodes := make(Floats, len(r.History))
	bestConns := make(Floats, len(r.History))
	for i, s := range r.History {
		bestFitness[i] = s.BestFitness
		meanFitness[i] = s.MeanFitness
		speciesCount[i] = float64(s.SpeciesCount)
		bestNodes[i] = float64(s.BestNodes)
		bestConns[i] = float64(s.BestConns)
	}

	out := npz.NewWriter(w)
	if err := out.Write("best_fitness", []float64(bestFitness)); err != nil {
		return err
	}
	if err := out.Write("mean_fitness", []float64(meanFitness)); err != nil {
		return err
	}
	if err := out.Write("species_count", []float64(speciesCount)); err != nil {
		return err
	}
	if err := out.Write("best_nodes", []float64(bestNodes)); err != nil {
		return err
	}
	if err := out.Write("best_conns", []float64(bestConns)); err != nil {
		return err
	}
	return out.Close()
}
