package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutationWeight_DefaultsWhenUnset(t *testing.T) {
	o := NewDefaultOptions()
	assert.Equal(t, DefaultMutationWeight, o.MutationWeight("AddNode"))
}

func TestMutationWeight_UsesConfiguredValue(t *testing.T) {
	o := NewDefaultOptions()
	o.MutationWeights = map[string]float64{"AddNode": 25}
	assert.Equal(t, 25.0, o.MutationWeight("AddNode"))
	assert.Equal(t, DefaultMutationWeight, o.MutationWeight("RemoveNode"))
}

func TestValidate_RejectsOutOfRangeRatios(t *testing.T) {
	o := NewDefaultOptions()
	o.Elitism = 1.5
	assert.Error(t, o.Validate())
}

func TestValidate_RejectsNonPositivePopulation(t *testing.T) {
	o := NewDefaultOptions()
	o.PopulationSize = 0
	assert.Error(t, o.Validate())
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, NewDefaultOptions().Validate())
}
