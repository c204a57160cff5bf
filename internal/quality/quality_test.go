package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/demandcast/internal/domain"
)

func TestCalculateExactValues(t *testing.T) {
	metrics, err := Calculate([]float64{100, 110, 120}, []float64{95, 105, 115})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, metrics.MAE, 1e-9)
	assert.InDelta(t, 5.0, metrics.RMSE, 1e-9)
	assert.InDelta(t, -5.0, metrics.Bias, 1e-9)
	assert.Equal(t, 3, metrics.SampleCount)

	expectedMAPE := 100.0 / 3.0 * (5.0/100 + 5.0/110 + 5.0/120)
	assert.InDelta(t, expectedMAPE, metrics.MAPE, 1e-9)
}

func TestCalculatePerfectForecast(t *testing.T) {
	metrics, err := Calculate([]float64{10, 20, 30}, []float64{10, 20, 30})
	require.NoError(t, err)

	assert.Zero(t, metrics.MAPE)
	assert.Zero(t, metrics.MAE)
	assert.Zero(t, metrics.RMSE)
	assert.Zero(t, metrics.Bias)
}

func TestCalculateOverForecastBias(t *testing.T) {
	metrics, err := Calculate([]float64{10, 10, 10}, []float64{13, 13, 13})
	require.NoError(t, err)

	// Positive bias means over-forecasting
	assert.InDelta(t, 3.0, metrics.Bias, 1e-9)
}

func TestCalculateSkipsZeroActualsForMAPE(t *testing.T) {
	metrics, err := Calculate([]float64{100, 0, 100}, []float64{90, 5, 110})
	require.NoError(t, err)

	// MAPE averages over the two nonzero-actual pairs only
	assert.InDelta(t, 100.0/2.0*(10.0/100+10.0/100), metrics.MAPE, 1e-9)
	assert.Equal(t, 2, metrics.SampleCount)

	// MAE still counts every pair
	assert.InDelta(t, (10.0+5.0+10.0)/3.0, metrics.MAE, 1e-9)
}

func TestCalculateAllZeroActuals(t *testing.T) {
	_, err := Calculate([]float64{0, 0, 0}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientSamples)
}

func TestCalculateEmptyInput(t *testing.T) {
	_, err := Calculate(nil, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientSamples)
}

func TestCalculateLengthMismatch(t *testing.T) {
	_, err := Calculate([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
