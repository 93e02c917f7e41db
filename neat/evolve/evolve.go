// Package evolve drives the generational NEAT loop: evaluate, speciate,
// reproduce, roll over.
package evolve

import (
	"context"
	"fmt"
	stdmath "math"
	"math/rand"
	"runtime"
	"sort"

	"github.com/mhalverson/goneat/neat"
	"github.com/mhalverson/goneat/neat/genetics"
	"github.com/mhalverson/goneat/neat/network"
)

// GenerationStats summarizes one completed generation, used both for the
// Report callback and for RunResult's history.
type GenerationStats struct {
	Generation   uint32
	BestFitness  float64
	MeanFitness  float64
	SpeciesCount int
	BestNodes    int
	BestConns    int
}

// RunResult is the full record of a completed Start call.
type RunResult struct {
	BestID       genetics.GenomeID
	BestFitness  float64
	BestNetwork  *network.Network
	Generations  int
	History      []GenerationStats
	FitnessGoal  bool // true if the run ended because FitnessGoal was reached
}

// Engine owns one evolutionary run. Construct with NewEngine; Start runs it
// to completion.
type Engine struct {
	Inputs, Outputs uint32
	Score           ScoreFunc
	Report          func(generation uint32, stats GenerationStats)
	Options         *neat.Options
	Evaluator       Evaluator
	RNG             *rand.Rand

	bank      *genetics.GenomeBank
	species   *genetics.SpeciesSet
	distCache *genetics.DistanceCache
	result    RunResult
}

// NewEngine builds an Engine ready to Start. evaluator selects the
// scheduling strategy for fitness evaluation; pass nil to use
// Options.EvaluationMode's default (sequential, or a parallel evaluator
// sized to runtime.NumCPU when "parallel"). Options are not supplied here -
// Start resolves them from the context.Context passed to it, via
// neat.FromContext.
func NewEngine(inputs, outputs uint32, score ScoreFunc, rng *rand.Rand, evaluator Evaluator) *Engine {
	return &Engine{
		Inputs: inputs, Outputs: outputs, Score: score,
		RNG: rng, Evaluator: evaluator,
		distCache: genetics.NewDistanceCache(),
		species:   genetics.NewSpeciesSet(),
	}
}

func (e *Engine) coefficients() genetics.DistanceCoefficients {
	o := e.Options
	return genetics.DistanceCoefficients{
		Disjoint: o.DisjointCoeff, Weight: o.WeightCoeff, Disabled: o.DisabledCoeff,
		Bias: o.BiasCoeff, Activation: o.ActivationCoeff, Aggregation: o.AggregationCoeff,
	}
}

// Start runs generations until the fitness goal is reached or
// Options.MaxGenerations is exhausted, returning the best genome's network
// and fitness found across the whole run. Options are pulled from ctx via
// neat.FromContext; ctx must carry them (see neat.NewContext).
func (e *Engine) Start(ctx context.Context) (*network.Network, float64, error) {
	opts, found := neat.FromContext(ctx)
	if !found {
		return nil, 0, neat.ErrNEATOptionsNotFound
	}
	e.Options = opts

	if e.Evaluator == nil {
		if opts.EvaluationMode == neat.EvaluationParallel {
			e.Evaluator = ParallelEvaluator{Workers: runtime.NumCPU()}
		} else {
			e.Evaluator = SequentialEvaluator{}
		}
	}

	e.result = RunResult{BestFitness: stdmath.Inf(-1)}

	initial := make([]*genetics.Genome, e.Options.PopulationSize)
	for i := range initial {
		initial[i] = genetics.New(e.RNG, e.Inputs, e.Outputs)
	}
	e.bank = genetics.NewGenomeBank(initial)

	coef := e.coefficients()

	for gen := uint32(0); gen <= uint32(e.Options.MaxGenerations); gen++ {
		e.evaluateGeneration()

		stats := e.collectStats(gen)
		e.result.Generations = int(gen) + 1
		e.result.History = append(e.result.History, stats)
		if stats.BestFitness > e.result.BestFitness {
			e.result.BestFitness = stats.BestFitness
			e.result.BestID = e.bestID()
			if n, ok := network.FromGenome(e.bank.ByID(e.result.BestID)); ok {
				e.result.BestNetwork = n
			}
		}

		neat.InfoLog(fmt.Sprintf("generation %d: best=%.4f mean=%.4f species=%d",
			stats.Generation, stats.BestFitness, stats.MeanFitness, stats.SpeciesCount))
		if e.Report != nil {
			e.Report(gen, stats)
		}

		goalReached := e.Options.FitnessGoal != nil && stats.BestFitness >= *e.Options.FitnessGoal
		if goalReached {
			e.result.FitnessGoal = true
			break
		}
		if gen == uint32(e.Options.MaxGenerations) {
			break
		}

		e.species.Speciate(gen, e.bank.IDs(), e.bank.AllGenomes(), coef, e.distCache,
			e.Options.CompatibilityThreshold, e.Options.StagnationAfter, e.Options.ElitismSpecies)
		next := e.reproduce()
		e.bank.Rollover(next)
	}

	history := make(Floats, len(e.result.History))
	for i, s := range e.result.History {
		history[i] = s.BestFitness
	}
	neat.InfoLog(fmt.Sprintf("run complete after %d generations: best=%.4f mean=%.4f stddev=%.4f median=%.4f min=%.4f",
		e.result.Generations, history.Max(), history.Mean(), history.StdDev(), history.Median(), history.Min()))

	return e.result.BestNetwork, e.result.BestFitness, nil
}

// Best reports the best genome id and fitness seen over the whole run.
func (e *Engine) Best() (genetics.GenomeID, float64, bool) {
	if e.result.BestNetwork == nil {
		return 0, 0, false
	}
	return e.result.BestID, e.result.BestFitness, true
}

// Result returns the full record of the completed run.
func (e *Engine) Result() RunResult {
	return e.result
}

func (e *Engine) evaluateGeneration() {
	scores := e.Evaluator.Evaluate(e.bank.Current, e.Score)
	for _, g := range e.bank.Current {
		raw := scores[g.ID]
		fitness := raw
		if raw != infeasibleScore {
			fitness = raw - e.Options.NodeCost*float64(len(g.Nodes)) - e.Options.ConnectionCost*float64(g.EnabledConnectionCount())
		}
		f := fitness
		g.Fitness = &f
	}
}

func (e *Engine) bestID() genetics.GenomeID {
	var best *genetics.Genome
	for _, g := range e.bank.Current {
		if g.Fitness == nil {
			continue
		}
		if best == nil || *g.Fitness > *best.Fitness {
			best = g
		}
	}
	if best == nil {
		return 0
	}
	return best.ID
}

func (e *Engine) collectStats(generation uint32) GenerationStats {
	stats := GenerationStats{Generation: generation, SpeciesCount: len(e.species.Species), BestFitness: stdmath.Inf(-1)}
	sum := 0.0
	var best *genetics.Genome
	for _, g := range e.bank.Current {
		if g.Fitness == nil {
			continue
		}
		sum += *g.Fitness
		if best == nil || *g.Fitness > *best.Fitness {
			best = g
		}
	}
	if len(e.bank.Current) > 0 {
		stats.MeanFitness = sum / float64(len(e.bank.Current))
	}
	if best != nil {
		stats.BestFitness = *best.Fitness
		stats.BestNodes = len(best.Nodes)
		stats.BestConns = best.EnabledConnectionCount()
	}
	return stats
}

// reproduce builds the next generation by running each species' offspring
// budget through elitism, crossover and mutation.
func (e *Engine) reproduce() []*genetics.Genome {
	genomes := e.bank.AllGenomes()
	popSize := e.Options.PopulationSize

	ids := make([]uint32, 0, len(e.species.Species))
	for id := range e.species.Species {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var next []*genetics.Genome
	for _, sid := range ids {
		s := e.species.Species[sid]
		next = append(next, e.reproduceSpecies(s, genomes, popSize)...)
	}
	return next
}

func (e *Engine) reproduceSpecies(s *genetics.Species, genomes map[genetics.GenomeID]*genetics.Genome, popSize int) []*genetics.Genome {
	members := make([]*genetics.Genome, 0, len(s.Members))
	for _, id := range s.Members {
		if g := genomes[id]; g != nil {
			members = append(members, g)
		}
	}
	if len(members) == 0 {
		return nil
	}
	sort.Slice(members, func(i, j int) bool { return *members[i].Fitness > *members[j].Fitness })

	survivorCount := ceilInt(float64(len(members)) * e.Options.SurvivalRatio)
	if survivorCount > len(members) {
		survivorCount = len(members)
	}
	survivors := members[:survivorCount]
	if len(survivors) == 0 {
		return nil
	}

	offspringCount := ceilInt(*s.AdjustedFitness * float64(popSize))
	elitesCount := ceilInt(float64(offspringCount) * e.Options.Elitism)
	nonElitesCount := offspringCount - elitesCount
	if nonElitesCount < 0 {
		nonElitesCount = 0
	}

	var offspring []*genetics.Genome
	eliteEmit := elitesCount
	if eliteEmit > len(survivors) {
		eliteEmit = len(survivors)
	}
	for i := 0; i < eliteEmit; i++ {
		offspring = append(offspring, survivors[i].Clone())
	}

	for i := 0; i < nonElitesCount; i++ {
		a := survivors[e.RNG.Intn(len(survivors))]
		b := survivors[e.RNG.Intn(len(survivors))]
		child, ok := genetics.Crossover(e.RNG, a, *a.Fitness, b, *b.Fitness)
		if !ok {
			continue
		}
		if e.RNG.Float64() < e.Options.MutationRate {
			kind := genetics.SampleKind(e.RNG, e.Options.MutationWeight)
			genetics.Mutate(e.RNG, child, kind)
		}
		offspring = append(offspring, child)
	}

	return offspring
}

func ceilInt(x float64) int {
	return int(stdmath.Ceil(x))
}
