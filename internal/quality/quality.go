// internal/quality/quality.go
package quality

import (
	"fmt"
	"math"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// Calculate computes accuracy metrics over aligned (actual, forecast) pairs.
// MAPE skips pairs whose actual is zero; this understates error on
// intermittent items and is kept as a known limitation rather than
// corrected. MAE, RMSE and Bias use every pair.
func Calculate(actuals, forecasts []float64) (domain.QualityMetrics, error) {
	if len(actuals) != len(forecasts) {
		return domain.QualityMetrics{}, fmt.Errorf("%w: %d actuals vs %d forecasts",
			domain.ErrInvalidInput, len(actuals), len(forecasts))
	}
	if len(actuals) == 0 {
		return domain.QualityMetrics{}, fmt.Errorf("%w: no pairs supplied", domain.ErrInsufficientSamples)
	}

	var (
		absErrSum float64
		sqErrSum  float64
		biasSum   float64
		mapeSum   float64
		mapeN     int
	)

	for i := range actuals {
		diff := actuals[i] - forecasts[i]
		absErrSum += math.Abs(diff)
		sqErrSum += diff * diff
		biasSum += forecasts[i] - actuals[i]

		if actuals[i] != 0 {
			mapeSum += math.Abs(diff) / math.Abs(actuals[i])
			mapeN++
		}
	}

	if mapeN == 0 {
		return domain.QualityMetrics{}, fmt.Errorf("%w: every actual is zero", domain.ErrInsufficientSamples)
	}

	n := float64(len(actuals))
	return domain.QualityMetrics{
		MAPE:        100 / float64(mapeN) * mapeSum,
		MAE:         absErrSum / n,
		RMSE:        math.Sqrt(sqErrSum / n),
		Bias:        biasSum / n,
		SampleCount: mapeN,
	}, nil
}
