// internal/forecast/sba.go
package forecast

import (
	"context"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// sbaSpread widens the quantile band for lumpy demand.
const sbaSpread = 1.0

// SBA implements the Syntetos-Boylan Approximation for lumpy demand:
// Croston's rate estimate with the (1 - 1/(2*ADI)) multiplicative bias
// correction applied.
type SBA struct{}

func NewSBA() *SBA { return &SBA{} }

func (s *SBA) Info() ModelInfo {
	return ModelInfo{Name: domain.MethodSBA, Kind: KindStatistical}
}

func (s *SBA) Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error) {
	if err := validateInput(series, horizon); err != nil {
		return nil, err
	}

	values := domain.Quantities(series)
	nonzero := domain.NonzeroCount(values)

	var point float64
	if nonzero > 0 {
		adi := float64(len(values)) / float64(nonzero)
		ads := domain.NonzeroMean(values)
		point = (ads / adi) * (1 - 1/(2*adi))
	}

	return flatForecast(series, horizon, point, quantileLevels, sbaSpread), nil
}
