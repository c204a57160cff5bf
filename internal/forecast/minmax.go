// internal/forecast/minmax.go
package forecast

import (
	"context"
	"math"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// MinMax band endpoints: p10 at 0.25x the point forecast, p90 at 1.75x.
// The band is deliberately wide: C-Z items do not justify a tighter
// estimate, the band is the product.
const (
	minMaxLowLevel   = 0.1
	minMaxHighLevel  = 0.9
	minMaxLowFactor  = 0.25
	minMaxHighFactor = 1.75
)

// MinMax is the low-priority fallback: mean of nonzero demand with wide
// quantile bands.
type MinMax struct{}

func NewMinMax() *MinMax { return &MinMax{} }

func (m *MinMax) Info() ModelInfo {
	return ModelInfo{Name: domain.MethodMinMax, Kind: KindStatistical}
}

func (m *MinMax) Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error) {
	if err := validateInput(series, horizon); err != nil {
		return nil, err
	}

	point := domain.NonzeroMean(domain.Quantities(series))
	dates := forecastDates(series, horizon)

	out := make([]domain.PredictionPoint, horizon)
	for i := range out {
		q := make(map[float64]float64, len(quantileLevels))
		for _, level := range quantileLevels {
			q[level] = math.Max(0, point*minMaxFactor(level))
		}
		out[i] = domain.PredictionPoint{
			Date:          dates[i],
			PointForecast: point,
			Quantiles:     q,
		}
	}
	return out, nil
}

// minMaxFactor interpolates the band linearly between the p10 and p90
// anchors so arbitrary quantile levels stay consistent with them.
func minMaxFactor(level float64) float64 {
	slope := (minMaxHighFactor - minMaxLowFactor) / (minMaxHighLevel - minMaxLowLevel)
	return minMaxLowFactor + (level-minMaxLowLevel)*slope
}
