// internal/orchestrator/orchestrator.go
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/demandcast/internal/classifier"
	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/internal/forecast"
	"github.com/andresuchdata/demandcast/pkg/logger"
)

// Request are the per-call parameters of one orchestration.
type Request struct {
	// Horizon is the number of days to forecast, 1..365.
	Horizon int

	// Method, when set, overrides the classifier's routing.
	Method domain.MethodID

	// WithBaseline additionally runs the moving-average baseline for
	// comparison. Duplicates with the routed method collapse.
	WithBaseline bool

	// QuantileLevels defaults to p10/p50/p90 when empty.
	QuantileLevels []float64

	// RevenueRankPercentile is the SKU's cross-item cumulative revenue
	// position, supplied by the caller (see classifier.Classify).
	RevenueRankPercentile float64
}

// Orchestrator runs classification, routes to forecast methods, executes
// them concurrently and reconciles the results into one outcome.
type Orchestrator struct {
	registry *forecast.Registry
	logger   zerolog.Logger
}

// New builds an orchestrator over an explicitly injected registry.
func New(registry *forecast.Registry) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		logger:   logger.With("orchestrator"),
	}
}

// Run executes one forecast orchestration. Every selected method result is
// retained in the outcome; only total failure or malformed input fail the
// call itself.
func (o *Orchestrator) Run(ctx context.Context, series []domain.TimeSeriesPoint, req Request) (*domain.ForecastOutcome, error) {
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	if req.Horizon < 1 || req.Horizon > domain.MaxHorizon {
		return nil, fmt.Errorf("%w: horizon %d outside [1,%d]",
			domain.ErrInvalidInput, req.Horizon, domain.MaxHorizon)
	}

	// Gap policy: a missing calendar day inside the span is a day with
	// zero sales, filled in explicitly before anything looks at the data.
	series = domain.FillGaps(series)

	quantiles := req.QuantileLevels
	if len(quantiles) == 0 {
		quantiles = []float64{0.1, 0.5, 0.9}
	}

	classification, err := classifier.Classify(series, req.RevenueRankPercentile)
	if err != nil {
		return nil, err
	}

	methods := selectMethods(req.Method, classification.RecommendedMethod, req.WithBaseline)

	o.logger.Debug().
		Int("periods", len(series)).
		Int("horizon", req.Horizon).
		Str("pattern", string(classification.DemandPattern)).
		Str("routed", string(classification.RecommendedMethod)).
		Int("methods", len(methods)).
		Msg("starting forecast run")

	results := o.execute(ctx, series, req.Horizon, quantiles, methods)

	recommended, err := pickRecommended(results, req.Method, classification.RecommendedMethod)
	if err != nil {
		return nil, err
	}

	outcome := &domain.ForecastOutcome{
		PerMethod:         results,
		RecommendedMethod: recommended,
		Classification:    classification,
	}
	for _, r := range results {
		if r.Method == recommended {
			outcome.Recommended = r.Predictions
			break
		}
	}

	return outcome, nil
}

// execute runs every method concurrently over the shared immutable series.
// Each method's failure is isolated into its own MethodResult; one slow or
// broken model never aborts its siblings.
func (o *Orchestrator) execute(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantiles []float64, methods []domain.MethodID) []domain.MethodResult {
	results := make([]domain.MethodResult, len(methods))

	var wg sync.WaitGroup
	for i, id := range methods {
		wg.Add(1)
		go func(slot int, id domain.MethodID) {
			defer wg.Done()
			results[slot] = o.runMethod(ctx, series, horizon, quantiles, id)
		}(i, id)
	}
	wg.Wait()

	return results
}

func (o *Orchestrator) runMethod(ctx context.Context, series []domain.TimeSeriesPoint, horizon int, quantiles []float64, id domain.MethodID) domain.MethodResult {
	model, err := o.registry.Resolve(id)
	if err != nil {
		o.logger.Warn().Str("method", string(id)).Err(err).Msg("method not registered")
		return domain.MethodResult{Method: id, Status: domain.StatusFailed, Error: err.Error()}
	}

	predictions, err := model.Predict(ctx, series, horizon, quantiles)
	if err != nil {
		o.logger.Warn().Str("method", string(id)).Err(err).Msg("forecast method failed")
		return domain.MethodResult{Method: id, Status: domain.StatusFailed, Error: err.Error()}
	}

	return domain.MethodResult{Method: id, Status: domain.StatusSuccess, Predictions: predictions}
}

// validateSeries enforces the call-level input contract: enough history,
// strictly increasing dates, no negative quantities.
func validateSeries(series []domain.TimeSeriesPoint) error {
	if len(series) < domain.MinHistoryPeriods {
		return fmt.Errorf("%w: need %d periods, got %d",
			domain.ErrInsufficientHistory, domain.MinHistoryPeriods, len(series))
	}
	for i, p := range series {
		if p.Quantity < 0 {
			return fmt.Errorf("%w: negative quantity %.2f at period %d",
				domain.ErrInvalidInput, p.Quantity, i)
		}
		if i > 0 && !series[i-1].Date.Before(p.Date) {
			return fmt.Errorf("%w: dates not strictly increasing at period %d",
				domain.ErrInvalidInput, i)
		}
	}
	return nil
}

// selectMethods builds the execution set in priority order, collapsing
// duplicates: explicit override first, then the routed method, then the
// baseline when requested.
func selectMethods(explicit, routed domain.MethodID, withBaseline bool) []domain.MethodID {
	seen := make(map[domain.MethodID]bool, 3)
	var out []domain.MethodID

	add := func(id domain.MethodID) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	add(explicit)
	add(routed)
	if withBaseline {
		add(domain.MethodMovingAverage)
	}

	return out
}
