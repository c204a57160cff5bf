package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/demandcast/internal/domain"
)

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.MethodMovingAverage, func() Model { return NewMovingAverage() })
	registry.Register(domain.MethodSBA, func() Model { return NewSBA() })

	model, err := registry.Resolve(domain.MethodSBA)
	require.NoError(t, err)
	assert.Equal(t, domain.MethodSBA, model.Info().Name)
}

func TestRegistryUnknownMethod(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve(domain.MethodID("prophet"))
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.MethodCroston, func() Model { return NewCroston() })

	a, err := registry.Resolve(domain.MethodCroston)
	require.NoError(t, err)
	b, err := registry.Resolve(domain.MethodCroston)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
}

func TestRegistryMethods(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.MethodMovingAverage, func() Model { return NewMovingAverage() })
	registry.Register(domain.MethodMinMax, func() Model { return NewMinMax() })

	assert.ElementsMatch(t,
		[]domain.MethodID{domain.MethodMovingAverage, domain.MethodMinMax},
		registry.Methods())
}
