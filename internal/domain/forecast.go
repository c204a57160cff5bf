// internal/domain/forecast.go
package domain

import "time"

// MethodStatus is the terminal state of one model invocation.
type MethodStatus string

const (
	StatusSuccess MethodStatus = "success"
	StatusFailed  MethodStatus = "failed"
)

// PredictionPoint is one forecast day: a point forecast plus quantile bands.
type PredictionPoint struct {
	Date          time.Time           `json:"date"`
	PointForecast float64             `json:"point_forecast"`
	Quantiles     map[float64]float64 `json:"quantiles"`
}

// MethodResult records one model invocation, success or failure.
// Failed results keep their error text so downstream storage can
// explain why a method produced nothing.
type MethodResult struct {
	Method      MethodID          `json:"method"`
	Status      MethodStatus      `json:"status"`
	Predictions []PredictionPoint `json:"predictions,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// ForecastOutcome is the aggregate of one orchestration call: every method
// result is retained for storage and analysis while Recommended exposes the
// single series immediate consumers should use.
type ForecastOutcome struct {
	PerMethod         []MethodResult    `json:"per_method"`
	RecommendedMethod MethodID          `json:"recommended_method"`
	Recommended       []PredictionPoint `json:"recommended"`
	Classification    SKUClassification `json:"classification"`
}

// Summary reduces the recommended series to the two numbers the inventory
// calculator consumes.
func (o *ForecastOutcome) Summary() ForecastSummary {
	var total float64
	for _, p := range o.Recommended {
		total += p.PointForecast
	}
	s := ForecastSummary{HorizonTotalDemand: total}
	if n := len(o.Recommended); n > 0 {
		s.AvgDailyDemand = total / float64(n)
	}
	return s
}

// ForecastSummary is the demand view the inventory calculator works from.
type ForecastSummary struct {
	AvgDailyDemand     float64 `json:"avg_daily_demand"`
	HorizonTotalDemand float64 `json:"horizon_total_demand"`
}
