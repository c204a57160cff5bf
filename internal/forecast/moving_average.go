// internal/forecast/moving_average.go
package forecast

import (
	"context"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// DefaultMAWindow is the trailing window the baseline averages over.
const DefaultMAWindow = 7

// maSpread gives the baseline a +/-20% band at p10/p90.
const maSpread = 0.5

// MovingAverage is the baseline model: the mean of the last window days,
// held flat across the horizon.
type MovingAverage struct {
	Window int
}

// NewMovingAverage builds the baseline with the default window.
func NewMovingAverage() *MovingAverage {
	return &MovingAverage{Window: DefaultMAWindow}
}

func (m *MovingAverage) Info() ModelInfo {
	return ModelInfo{Name: domain.MethodMovingAverage, Kind: KindStatistical}
}

func (m *MovingAverage) Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error) {
	if err := validateInput(series, horizon); err != nil {
		return nil, err
	}

	window := m.Window
	if window < 1 {
		window = DefaultMAWindow
	}
	if window > len(series) {
		window = len(series)
	}

	values := domain.Quantities(series)
	point := domain.Mean(values[len(values)-window:])

	return flatForecast(series, horizon, point, quantileLevels, maSpread), nil
}
