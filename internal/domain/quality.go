// internal/domain/quality.go
package domain

// QualityMetrics are historical forecast accuracy measures over aligned
// (actual, forecast) pairs. MAPE skips zero-actual pairs; SampleCount is
// the number of pairs that survived the skip.
type QualityMetrics struct {
	MAPE        float64 `json:"mape"`
	MAE         float64 `json:"mae"`
	RMSE        float64 `json:"rmse"`
	Bias        float64 `json:"bias"`
	SampleCount int     `json:"sample_count"`
}
