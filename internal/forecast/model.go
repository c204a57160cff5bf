// internal/forecast/model.go
package forecast

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// ModelKind distinguishes local statistical models from remote ones.
type ModelKind string

const (
	KindStatistical ModelKind = "statistical"
	KindExternal    ModelKind = "external"
)

// ModelInfo describes a model implementation.
type ModelInfo struct {
	Name domain.MethodID `json:"name"`
	Kind ModelKind       `json:"kind"`
}

// Model is the contract every forecasting method implements. Predict never
// mutates the input series and always returns nonnegative point forecasts.
type Model interface {
	Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error)
	Info() ModelInfo
}

// validateInput enforces the shared preconditions of the model family.
func validateInput(series []domain.TimeSeriesPoint, horizon int) error {
	if len(series) < domain.MinHistoryPeriods {
		return fmt.Errorf("%w: need %d periods, got %d",
			domain.ErrInsufficientHistory, domain.MinHistoryPeriods, len(series))
	}
	if horizon < 1 || horizon > domain.MaxHorizon {
		return fmt.Errorf("%w: horizon %d outside [1,%d]",
			domain.ErrInvalidInput, horizon, domain.MaxHorizon)
	}
	for i, p := range series {
		if p.Quantity < 0 {
			return fmt.Errorf("%w: negative quantity %.2f at period %d",
				domain.ErrInvalidInput, p.Quantity, i)
		}
	}
	return nil
}

// flatForecast produces a horizon of identical daily points starting the day
// after the series ends, with quantiles scaled off the point forecast by
// spread: quantile q gets point*(1+(q-0.5)*spread), floored at zero.
func flatForecast(series []domain.TimeSeriesPoint, horizon int, point float64, quantileLevels []float64, spread float64) []domain.PredictionPoint {
	if point < 0 {
		point = 0
	}
	start := series[len(series)-1].Date
	out := make([]domain.PredictionPoint, horizon)
	for i := 0; i < horizon; i++ {
		q := make(map[float64]float64, len(quantileLevels))
		for _, level := range quantileLevels {
			q[level] = math.Max(0, point*(1+(level-0.5)*spread))
		}
		out[i] = domain.PredictionPoint{
			Date:          start.AddDate(0, 0, i+1),
			PointForecast: point,
			Quantiles:     q,
		}
	}
	return out
}

// forecastDates returns the horizon dates following the series, one per day.
func forecastDates(series []domain.TimeSeriesPoint, horizon int) []time.Time {
	start := series[len(series)-1].Date
	dates := make([]time.Time, horizon)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i+1)
	}
	return dates
}
