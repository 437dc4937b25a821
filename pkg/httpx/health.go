package httpx

import (
	"context"
	"net/http"
	"time"
)

// healthProbeTimeout bounds how long the health endpoint waits on each
// dependency before declaring it unreachable.
const healthProbeTimeout = 2 * time.Second

// HealthChecker is the probe surface shared by the infrastructure clients
// (database pool, Redis client, event bus).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks names the dependencies the health endpoint probes.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

// HealthHandler probes every dependency and reports per-dependency state.
// Any failed probe degrades the overall status and turns the response
// into a 503 so load balancers stop routing here.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	probes := []struct {
		key     string
		checker HealthChecker
	}{
		{"database", checks.Database},
		{"redis", checks.Redis},
		{"event_bus", checks.EventBus},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		body := make(map[string]string, len(probes)+1)
		body["status"] = "ok"
		for _, p := range probes {
			if err := p.checker.Ping(ctx); err != nil {
				body[p.key] = "unreachable"
				body["status"] = "degraded"
				continue
			}
			body[p.key] = "ok"
		}

		status := http.StatusOK
		if body["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, body)
	}
}
