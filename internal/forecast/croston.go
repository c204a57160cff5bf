// internal/forecast/croston.go
package forecast

import (
	"context"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// DefaultCrostonAlpha is the smoothing constant for both the size and
// interval estimates.
const DefaultCrostonAlpha = 0.1

const crostonSpread = 1.0

// Croston implements Croston's method for intermittent demand: nonzero
// demand sizes and inter-demand intervals are smoothed separately and the
// forecast is their ratio.
type Croston struct {
	Alpha float64
}

func NewCroston() *Croston {
	return &Croston{Alpha: DefaultCrostonAlpha}
}

func (c *Croston) Info() ModelInfo {
	return ModelInfo{Name: domain.MethodCroston, Kind: KindStatistical}
}

func (c *Croston) Predict(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantileLevels []float64) ([]domain.PredictionPoint, error) {
	if err := validateInput(series, horizon); err != nil {
		return nil, err
	}

	alpha := c.Alpha
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultCrostonAlpha
	}

	point := crostonRate(domain.Quantities(series), alpha)

	return flatForecast(series, horizon, point, quantileLevels, crostonSpread), nil
}

// crostonRate runs the two exponential smoothers over the series and returns
// smoothed size / smoothed interval, or 0 when the series never had demand.
func crostonRate(values []float64, alpha float64) float64 {
	var (
		size        float64
		interval    float64
		gap         float64 = 1
		initialized bool
	)

	for _, v := range values {
		if v <= 0 {
			gap++
			continue
		}
		if !initialized {
			size = v
			interval = gap
			initialized = true
		} else {
			size = alpha*v + (1-alpha)*size
			interval = alpha*gap + (1-alpha)*interval
		}
		gap = 1
	}

	if !initialized || interval <= 0 {
		return 0
	}
	return size / interval
}
