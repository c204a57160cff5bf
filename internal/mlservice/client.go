// internal/mlservice/client.go
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/pkg/logger"
)

// ForecastRequest is the wire contract of the external time-series service.
type ForecastRequest struct {
	Series         []SeriesPoint `json:"series"`
	Horizon        int           `json:"horizon"`
	QuantileLevels []float64     `json:"quantile_levels"`
}

// SeriesPoint mirrors domain.TimeSeriesPoint on the wire.
type SeriesPoint struct {
	Date       string             `json:"date"`
	Quantity   float64            `json:"quantity"`
	Covariates map[string]float64 `json:"covariates,omitempty"`
}

// ForecastResponse is the service's prediction payload.
type ForecastResponse struct {
	Predictions []PredictionPoint `json:"predictions"`
}

// PredictionPoint is one forecast day as returned by the service. Quantile
// keys arrive as strings ("0.1") because JSON maps cannot key on numbers.
type PredictionPoint struct {
	Date          string             `json:"date"`
	PointForecast float64            `json:"point_forecast"`
	Quantiles     map[string]float64 `json:"quantiles"`
}

// Client is a thin HTTP client for the pretrained forecasting service.
// It performs no retries: retry policy belongs to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a client for the service at baseURL. The timeout bounds
// the whole request; the per-call context can shorten it further.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("ml_client"),
	}
}

// Forecast calls POST /forecast and returns the raw prediction payload.
func (c *Client) Forecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forecast request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forecast", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("ML service request failed")
		return nil, fmt.Errorf("ml service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().Int("status", resp.StatusCode).Msg("ML service returned error status")
		return nil, fmt.Errorf("ml service returned %d: %s", resp.StatusCode, string(payload))
	}

	var out ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}
	if len(out.Predictions) == 0 {
		return nil, fmt.Errorf("ml service returned no predictions")
	}

	c.logger.Debug().
		Int("horizon", req.Horizon).
		Int("predictions", len(out.Predictions)).
		Dur("latency", time.Since(start)).
		Msg("ML forecast completed")

	return &out, nil
}

// EncodeSeries converts the domain series to the wire shape.
func EncodeSeries(series []domain.TimeSeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, len(series))
	for i, p := range series {
		out[i] = SeriesPoint{
			Date:       p.Date.Format("2006-01-02"),
			Quantity:   p.Quantity,
			Covariates: p.Covariates,
		}
	}
	return out
}
