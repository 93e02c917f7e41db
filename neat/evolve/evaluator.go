package evolve

import (
	"sync"

	"github.com/mhalverson/goneat/neat/genetics"
	"github.com/mhalverson/goneat/neat/network"
)

// ScoreFunc scores a phenotype network, higher is better. Under
// EvaluationParallel it is invoked concurrently from multiple workers and
// must be safe for that.
type ScoreFunc func(n *network.Network) float64

// Evaluator assigns a raw score to every genome of a generation.
type Evaluator interface {
	Evaluate(genomes []*genetics.Genome, score ScoreFunc) map[genetics.GenomeID]float64
}

// infeasible genomes (node_order fails) score -1e300, below any real score,
// so they never win reproduction, without special-casing them in the caller.
const infeasibleScore = -1e300

// SequentialEvaluator scores genomes one at a time, in order.
type SequentialEvaluator struct{}

func (SequentialEvaluator) Evaluate(genomes []*genetics.Genome, score ScoreFunc) map[genetics.GenomeID]float64 {
	out := make(map[genetics.GenomeID]float64, len(genomes))
	for _, g := range genomes {
		out[g.ID] = evaluateOne(g, score)
	}
	return out
}

// ParallelEvaluator scores genomes across a fixed-size worker pool.
type ParallelEvaluator struct {
	Workers int
}

type evaluationJob struct {
	genome *genetics.Genome
}

type evaluationResult struct {
	id    genetics.GenomeID
	score float64
}

func (p ParallelEvaluator) Evaluate(genomes []*genetics.Genome, score ScoreFunc) map[genetics.GenomeID]float64 {
	workers := p.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan evaluationJob, len(genomes))
	results := make(chan evaluationResult, len(genomes))
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for job := range jobs {
			results <- evaluationResult{id: job.genome.ID, score: evaluateOne(job.genome, score)}
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}
	for _, g := range genomes {
		jobs <- evaluationJob{genome: g}
	}
	close(jobs)

	wg.Wait()
	close(results)

	out := make(map[genetics.GenomeID]float64, len(genomes))
	for r := range results {
		out[r.id] = r.score
	}
	return out
}

func evaluateOne(g *genetics.Genome, score ScoreFunc) float64 {
	n, ok := network.FromGenome(g)
	if !ok {
		return infeasibleScore
	}
	return score(n)
}
