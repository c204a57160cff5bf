// internal/orchestrator/selection.go
package orchestrator

import (
	"fmt"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// pickRecommended chooses the recommended method over a snapshot of results:
// the explicit override if it succeeded, else the classifier-routed method
// if it succeeded, else the first success in execution order. When nothing
// succeeded the whole run is an error; a recommendation is never fabricated
// from a failed result.
func pickRecommended(results []domain.MethodResult, explicit, routed domain.MethodID) (domain.MethodID, error) {
	succeeded := func(id domain.MethodID) bool {
		for _, r := range results {
			if r.Method == id && r.Status == domain.StatusSuccess {
				return true
			}
		}
		return false
	}

	if explicit != "" && succeeded(explicit) {
		return explicit, nil
	}
	if succeeded(routed) {
		return routed, nil
	}
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			return r.Method, nil
		}
	}

	return "", fmt.Errorf("%w: %d methods attempted", domain.ErrAllMethodsFailed, len(results))
}
