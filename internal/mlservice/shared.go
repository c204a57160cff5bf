// internal/mlservice/shared.go
package mlservice

import (
	"sync"
	"time"
)

var (
	sharedOnce   sync.Once
	sharedClient *Client
)

// Shared returns the process-wide client handle. The first caller
// initializes it, concurrent callers wait on the once barrier, later
// callers reuse the same handle. This is the only shared mutable state in
// the forecasting core.
func Shared(baseURL string, timeout time.Duration) *Client {
	sharedOnce.Do(func() {
		sharedClient = NewClient(baseURL, timeout)
	})
	return sharedClient
}
