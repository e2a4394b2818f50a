package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	applog "github.com/janisto/portfolio-site/internal/platform/logging"
)

// probeTimeout bounds a single readiness probe.
const probeTimeout = 2 * time.Second

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Probe checks a dependency the service cannot work without.
type Probe func(ctx context.Context) error

// Handler reports "healthy" when every probe passes and "unhealthy" with
// 503 otherwise.
func Handler(probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		status, code := "healthy", http.StatusOK
		for _, probe := range probes {
			if err := probe(ctx); err != nil {
				applog.LogError(ctx, "health probe failed", err)
				status, code = "unhealthy", http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(Response{Status: status})
	}
}
