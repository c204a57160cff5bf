package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/internal/mlservice"
)

type stubMLClient struct {
	resp *mlservice.ForecastResponse
	err  error

	gotReq mlservice.ForecastRequest
}

func (s *stubMLClient) Forecast(ctx context.Context, req mlservice.ForecastRequest) (*mlservice.ForecastResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func stubResponse(horizon int, point float64) *mlservice.ForecastResponse {
	resp := &mlservice.ForecastResponse{}
	for i := 0; i < horizon; i++ {
		resp.Predictions = append(resp.Predictions, mlservice.PredictionPoint{
			Date:          "2026-04-0" + string(rune('1'+i)),
			PointForecast: point,
			Quantiles:     map[string]float64{"0.1": point * 0.8, "0.5": point, "0.9": point * 1.2},
		})
	}
	return resp
}

func TestMLAdapterSuccess(t *testing.T) {
	client := &stubMLClient{resp: stubResponse(3, 42)}
	adapter := NewMLAdapter(client, time.Second)
	series := constantSeries(40, 14)

	predictions, err := adapter.Predict(context.Background(), series, 3, defaultQuantiles)
	require.NoError(t, err)
	require.Len(t, predictions, 3)

	assert.Len(t, client.gotReq.Series, 14)
	assert.Equal(t, 3, client.gotReq.Horizon)

	for _, p := range predictions {
		assert.InDelta(t, 42, p.PointForecast, 1e-9)
		assert.InDelta(t, 42*0.8, p.Quantiles[0.1], 1e-9)
		assert.InDelta(t, 42*1.2, p.Quantiles[0.9], 1e-9)
	}
}

func TestMLAdapterClientFailure(t *testing.T) {
	client := &stubMLClient{err: errors.New("connection refused")}
	adapter := NewMLAdapter(client, time.Second)

	_, err := adapter.Predict(context.Background(), constantSeries(40, 14), 3, defaultQuantiles)
	assert.ErrorIs(t, err, domain.ErrModelExecution)
}

func TestMLAdapterHorizonMismatch(t *testing.T) {
	client := &stubMLClient{resp: stubResponse(2, 42)}
	adapter := NewMLAdapter(client, time.Second)

	_, err := adapter.Predict(context.Background(), constantSeries(40, 14), 5, defaultQuantiles)
	assert.ErrorIs(t, err, domain.ErrModelExecution)
}

func TestMLAdapterNegativeForecast(t *testing.T) {
	resp := stubResponse(3, 42)
	resp.Predictions[1].PointForecast = -1

	adapter := NewMLAdapter(&stubMLClient{resp: resp}, time.Second)

	_, err := adapter.Predict(context.Background(), constantSeries(40, 14), 3, defaultQuantiles)
	assert.ErrorIs(t, err, domain.ErrModelExecution)
}

func TestMLAdapterMalformedQuantileKey(t *testing.T) {
	resp := stubResponse(1, 42)
	resp.Predictions[0].Quantiles = map[string]float64{"p10": 10}

	adapter := NewMLAdapter(&stubMLClient{resp: resp}, time.Second)

	_, err := adapter.Predict(context.Background(), constantSeries(40, 14), 1, defaultQuantiles)
	assert.ErrorIs(t, err, domain.ErrModelExecution)
}

func TestMLAdapterValidatesInput(t *testing.T) {
	adapter := NewMLAdapter(&stubMLClient{resp: stubResponse(3, 42)}, time.Second)

	_, err := adapter.Predict(context.Background(), makeSeries(1, 2, 3), 3, defaultQuantiles)
	assert.ErrorIs(t, err, domain.ErrInsufficientHistory)
}

type slowMLClient struct{}

func (slowMLClient) Forecast(ctx context.Context, req mlservice.ForecastRequest) (*mlservice.ForecastResponse, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Second):
		return &mlservice.ForecastResponse{}, nil
	}
}

func TestMLAdapterTimeout(t *testing.T) {
	adapter := NewMLAdapter(slowMLClient{}, 20*time.Millisecond)

	start := time.Now()
	_, err := adapter.Predict(context.Background(), constantSeries(40, 14), 3, defaultQuantiles)

	assert.ErrorIs(t, err, domain.ErrModelExecution)
	assert.Less(t, time.Since(start), time.Second)
}
