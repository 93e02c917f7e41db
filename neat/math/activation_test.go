package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivate_Tanh(t *testing.T) {
	assert.InDelta(t, 0.0, Activate(0, Tanh), 1e-9)
	assert.InDelta(t, math.Tanh(1), Activate(1, Tanh), 1e-9)
}

func TestActivate_Step(t *testing.T) {
	assert.Equal(t, 0.0, Activate(-0.5, Step))
	assert.Equal(t, 0.0, Activate(0, Step))
	assert.Equal(t, 1.0, Activate(0.5, Step))
}

func TestActivate_Inverse(t *testing.T) {
	assert.Equal(t, 1.0, Activate(0, Inverse))
	assert.Equal(t, 0.75, Activate(0.25, Inverse))
	assert.Equal(t, 2.0, Activate(-1, Inverse))
}

func TestActivate_Logistic(t *testing.T) {
	assert.InDelta(t, 0.5, Activate(0, Logistic), 1e-9)
}

func TestActivate_Input(t *testing.T) {
	assert.Equal(t, 3.25, Activate(3.25, Input))
}

func TestActivate_UnknownKind(t *testing.T) {
	assert.True(t, math.IsNaN(Activate(1, ActivationKind(255))))
}

func TestActivationKinds_ExcludesInput(t *testing.T) {
	for _, k := range ActivationKinds {
		assert.NotEqual(t, Input, k)
	}
	assert.Len(t, ActivationKinds, 12)
}
