// internal/domain/errors.go
package domain

import "errors"

// Error taxonomy for the forecasting core. Call sites wrap these with
// context via fmt.Errorf("...: %w", err); callers branch with errors.Is.
var (
	// ErrInsufficientHistory: fewer than MinHistoryPeriods of history.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrInvalidInput: negative quantities, unordered dates, out-of-range
	// parameters. Always a hard failure, never clamped.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateSeries: all-zero history. Warning-level; classification
	// still succeeds with the Degenerate flag set.
	ErrDegenerateSeries = errors.New("degenerate series")

	// ErrUnknownMethod: method id not present in the registry.
	ErrUnknownMethod = errors.New("unknown forecast method")

	// ErrModelExecution: a model failed at prediction time (including ML
	// service timeouts and malformed responses).
	ErrModelExecution = errors.New("model execution failed")

	// ErrAllMethodsFailed: no selected method produced a usable forecast.
	ErrAllMethodsFailed = errors.New("all forecast methods failed")

	// ErrInsufficientSamples: no valid pairs left for accuracy metrics.
	ErrInsufficientSamples = errors.New("insufficient samples")
)

// MinHistoryPeriods is the minimum series length every model and the
// classifier require.
const MinHistoryPeriods = 7

// MaxHorizon bounds the prediction length accepted by every model.
const MaxHorizon = 365
