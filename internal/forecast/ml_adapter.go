// internal/forecast/ml_adapter.go
package forecast

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/internal/mlservice"
)

// MLForecaster is the slice of the ML client the adapter needs.
type MLForecaster interface {
	Forecast(ctx context.Context, req mlservice.ForecastRequest) (*mlservice.ForecastResponse, error)
}

// MLAdapter exposes the external pretrained model through the local Model
// contract. Any failure (timeout, unavailable service, malformed payload)
// surfaces as ErrModelExecution so the orchestrator treats it like any
// other method failure.
type MLAdapter struct {
	client  MLForecaster
	timeout time.Duration
}

// NewMLAdapter wraps client; timeout bounds every Predict call.
func NewMLAdapter(client MLForecaster, timeout time.Duration) *MLAdapter {
	return &MLAdapter{client: client, timeout: timeout}
}

func (a *MLAdapter) Info() ModelInfo {
	return ModelInfo{Name: domain.MethodML, Kind: KindExternal}
}

func (a *MLAdapter) Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error) {
	if err := validateInput(series, horizon); err != nil {
		return nil, err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.Forecast(ctx, mlservice.ForecastRequest{
		Series:         mlservice.EncodeSeries(series),
		Horizon:        horizon,
		QuantileLevels: quantileLevels,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelExecution, err)
	}

	return a.decode(resp, series, horizon)
}

// decode maps the wire payload back into domain points, validating shape
// and nonnegativity. A horizon mismatch or negative forecast is a malformed
// response, reported as ErrModelExecution.
func (a *MLAdapter) decode(resp *mlservice.ForecastResponse, series []domain.TimeSeriesPoint, horizon int) ([]domain.PredictionPoint, error) {
	if len(resp.Predictions) != horizon {
		return nil, fmt.Errorf("%w: expected %d predictions, got %d",
			domain.ErrModelExecution, horizon, len(resp.Predictions))
	}

	dates := forecastDates(series, horizon)
	out := make([]domain.PredictionPoint, horizon)
	for i, p := range resp.Predictions {
		if p.PointForecast < 0 {
			return nil, fmt.Errorf("%w: negative point forecast %.4f at day %d",
				domain.ErrModelExecution, p.PointForecast, i)
		}

		date := dates[i]
		if parsed, err := time.Parse("2006-01-02", p.Date); err == nil {
			date = parsed
		}

		quantiles := make(map[float64]float64, len(p.Quantiles))
		for k, v := range p.Quantiles {
			level, err := strconv.ParseFloat(k, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed quantile key %q", domain.ErrModelExecution, k)
			}
			if v < 0 {
				v = 0
			}
			quantiles[level] = v
		}

		out[i] = domain.PredictionPoint{
			Date:          date,
			PointForecast: p.PointForecast,
			Quantiles:     quantiles,
		}
	}
	return out, nil
}
