package neat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLOptions_OverridesDefaults(t *testing.T) {
	yamlDoc := "population_size: 42\nlog_level: warn\n"
	opts, err := LoadYAMLOptions(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, 42, opts.PopulationSize)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestLoadPlainOptions_ParsesKnownKeys(t *testing.T) {
	plain := "population_size 64\nmutation_rate 0.3\nlog_level info\n"
	opts, err := LoadPlainOptions(strings.NewReader(plain))
	require.NoError(t, err)
	assert.Equal(t, 64, opts.PopulationSize)
	assert.Equal(t, 0.3, opts.MutationRate)
}

func TestLoadPlainOptions_RejectsUnknownKey(t *testing.T) {
	_, err := LoadPlainOptions(strings.NewReader("not_a_real_key 1\n"))
	assert.Error(t, err)
}

func TestLoadOptionsFromFile_MissingFile(t *testing.T) {
	_, err := LoadOptionsFromFile("/nonexistent/path/xor.neat.yml")
	assert.Error(t, err)
}
