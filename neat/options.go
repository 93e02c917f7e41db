package neat

// Options is the global configuration for one evolutionary run. All fields
// are user-tunable and are loaded from YAML or from the plain `.neat`
// key/value format via LoadYAMLOptions / LoadPlainOptions.
type Options struct {
	// MaxGenerations bounds how many generations Start will run before
	// returning, regardless of FitnessGoal.
	MaxGenerations int `yaml:"max_generations"`
	// PopulationSize is the number of genomes maintained each generation.
	PopulationSize int `yaml:"population_size"`

	// Elitism is the fraction, in [0,1], of each species' offspring budget
	// reserved for unmodified clones of its fittest survivors.
	Elitism float64 `yaml:"elitism"`
	// ElitismSpecies is the minimum number of species protected from the
	// stagnation cull regardless of how long they have stagnated.
	ElitismSpecies int `yaml:"elitism_species"`
	// StagnationAfter is the number of generations without improvement
	// after which a species becomes a stagnation-cull candidate.
	StagnationAfter int `yaml:"stagnation_after"`

	// NodeCost and ConnectionCost are subtracted from raw fitness,
	// proportionally to genome complexity, before recording it.
	NodeCost       float64 `yaml:"node_cost"`
	ConnectionCost float64 `yaml:"connection_cost"`

	// MutationRate is the probability, in [0,1], that a crossover child is
	// mutated before entering the next generation.
	MutationRate float64 `yaml:"mutation_rate"`
	// SurvivalRatio is the fraction, in [0,1], of a species' members
	// (sorted by descending fitness) eligible to be parents.
	SurvivalRatio float64 `yaml:"survival_ratio"`

	// MutationWeights assigns a relative selection weight to each mutation
	// operator by name (AddConnection, RemoveConnection, AddNode,
	// RemoveNode, ModifyWeight, ModifyBias, ModifyActivation,
	// ModifyAggregation). Unlisted operators default to weight 10.
	MutationWeights map[string]float64 `yaml:"mutation_kinds"`

	// FitnessGoal, if non-nil, ends the run early once the best genome's
	// fitness reaches or exceeds it.
	FitnessGoal *float64 `yaml:"fitness_goal,omitempty"`

	// Genomic distance coefficients.
	DisjointCoeff    float64 `yaml:"disjoint_coeff"`
	WeightCoeff      float64 `yaml:"weight_coeff"`
	DisabledCoeff    float64 `yaml:"disabled_coeff"`
	BiasCoeff        float64 `yaml:"bias_coeff"`
	ActivationCoeff  float64 `yaml:"activation_coeff"`
	AggregationCoeff float64 `yaml:"aggregation_coeff"`

	// CompatibilityThreshold is the genomic distance below which two
	// genomes are considered the same species.
	CompatibilityThreshold float64 `yaml:"compatibility_threshold"`

	// EvaluationMode selects the fitness evaluation executor.
	EvaluationMode EvaluationMode `yaml:"evaluation_mode"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// EvaluationMode selects how fitness evaluation is scheduled across the
// population within a generation.
type EvaluationMode string

const (
	// EvaluationSequential evaluates genomes one at a time.
	EvaluationSequential EvaluationMode = "sequential"
	// EvaluationParallel evaluates genomes across a worker pool; the
	// caller's Score function must be safe for concurrent use.
	EvaluationParallel EvaluationMode = "parallel"
)

// DefaultMutationWeight is applied to any mutation operator absent from
// Options.MutationWeights.
const DefaultMutationWeight = 10.0

// MutationWeight returns the configured weight for the named mutation
// operator, or DefaultMutationWeight if unset.
func (o *Options) MutationWeight(name string) float64 {
	if o.MutationWeights == nil {
		return DefaultMutationWeight
	}
	if w, ok := o.MutationWeights[name]; ok {
		return w
	}
	return DefaultMutationWeight
}

// NewDefaultOptions returns Options populated with sensible defaults:
// equal mutation operator weights and a modest population.
func NewDefaultOptions() *Options {
	return &Options{
		MaxGenerations:         1000,
		PopulationSize:         150,
		Elitism:                0.1,
		ElitismSpecies:         2,
		StagnationAfter:        15,
		NodeCost:               0.0,
		ConnectionCost:         0.0,
		MutationRate:           0.25,
		SurvivalRatio:          0.2,
		DisjointCoeff:          1.0,
		WeightCoeff:            0.5,
		DisabledCoeff:          1.0,
		BiasCoeff:              0.5,
		ActivationCoeff:        1.0,
		AggregationCoeff:       1.0,
		CompatibilityThreshold: 3.0,
		EvaluationMode:         EvaluationSequential,
		LogLevel:               string(LogLevelInfo),
	}
}

// Validate rejects Options whose ratios/probabilities fall outside their
// documented ranges.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return NewLogicError("population_size must be positive")
	}
	if o.Elitism < 0 || o.Elitism > 1 {
		return NewLogicError("elitism must be in [0,1]")
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return NewLogicError("mutation_rate must be in [0,1]")
	}
	if o.SurvivalRatio < 0 || o.SurvivalRatio > 1 {
		return NewLogicError("survival_ratio must be in [0,1]")
	}
	if o.CompatibilityThreshold <= 0 {
		return NewLogicError("compatibility_threshold must be positive")
	}
	if o.StagnationAfter < 0 {
		return NewLogicError("stagnation_after must be non-negative")
	}
	if o.ElitismSpecies < 0 {
		return NewLogicError("elitism_species must be non-negative")
	}
	return nil
}
