package neat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions loads NEAT Options encoded as YAML from r.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts := NewDefaultOptions()
	if err = yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}
	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}

// LoadPlainOptions loads NEAT Options encoded in the plain `key value` per
// line text format, coercing scalar values with github.com/spf13/cast.
func LoadPlainOptions(r io.Reader) (*Options, error) {
	opts := NewDefaultOptions()
	var name, param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		switch name {
		case "max_generations":
			opts.MaxGenerations = cast.ToInt(param)
		case "population_size":
			opts.PopulationSize = cast.ToInt(param)
		case "elitism":
			opts.Elitism = cast.ToFloat64(param)
		case "elitism_species":
			opts.ElitismSpecies = cast.ToInt(param)
		case "stagnation_after":
			opts.StagnationAfter = cast.ToInt(param)
		case "node_cost":
			opts.NodeCost = cast.ToFloat64(param)
		case "connection_cost":
			opts.ConnectionCost = cast.ToFloat64(param)
		case "mutation_rate":
			opts.MutationRate = cast.ToFloat64(param)
		case "survival_ratio":
			opts.SurvivalRatio = cast.ToFloat64(param)
		case "disjoint_coeff":
			opts.DisjointCoeff = cast.ToFloat64(param)
		case "weight_coeff":
			opts.WeightCoeff = cast.ToFloat64(param)
		case "disabled_coeff":
			opts.DisabledCoeff = cast.ToFloat64(param)
		case "bias_coeff":
			opts.BiasCoeff = cast.ToFloat64(param)
		case "activation_coeff":
			opts.ActivationCoeff = cast.ToFloat64(param)
		case "aggregation_coeff":
			opts.AggregationCoeff = cast.ToFloat64(param)
		case "compatibility_threshold":
			opts.CompatibilityThreshold = cast.ToFloat64(param)
		case "evaluation_mode":
			opts.EvaluationMode = EvaluationMode(param)
		case "log_level":
			opts.LogLevel = param
		default:
			return nil, errors.Errorf("unknown configuration parameter found: %s = %s", name, param)
		}
	}
	if err := InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}

// LoadOptionsFromFile reads NEAT Options from configFilePath, resolving
// encoding (YAML vs plain text) from the file extension.
func LoadOptionsFromFile(configFilePath string) (*Options, error) {
	f, err := os.Open(configFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer func() { _ = f.Close() }()

	name := f.Name()
	if strings.HasSuffix(name, "yml") || strings.HasSuffix(name, "yaml") {
		return LoadYAMLOptions(f)
	}
	return LoadPlainOptions(f)
}
